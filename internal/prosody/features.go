// SPDX-License-Identifier: MIT
/*
Package prosody implements pitch-contour transfer between two speech
recordings. The heavy signal processing (F0 estimation, spectral envelope,
aperiodicity, synthesis) is owned by an external vocoder behind the Vocoder
interface; this package owns the feature model, the contour alignment and
the run orchestration.
*/
package prosody

// Features is the parameter set one vocoder analysis pass produces for a
// single waveform. F0, Spectrogram and Aperiodicity always carry the same
// number of frames; the vocoder guarantees that invariant.
type Features struct {
	F0           []float64   // Per-frame fundamental frequency (Hz, 0 = unvoiced)
	TimeAxis     []float64   // Per-frame timestamps (s)
	Spectrogram  [][]float64 // Per-frame spectral envelope, fftSize/2+1 bins
	Aperiodicity [][]float64 // Per-frame band aperiodicity ratios
	FramePeriod  float64     // Analysis frame period (ms)
	FFTSize      int         // FFT size the envelope was estimated with
}

// Frames returns the number of analysis frames in the feature set.
func (f *Features) Frames() int {
	return len(f.F0)
}

// Vocoder decomposes a waveform into Features and renders Features back
// into a waveform. Synthesize requires equal frame counts across F0,
// Spectrogram and Aperiodicity, which TransferProsody guarantees.
type Vocoder interface {
	Analyze(samples []float64, sampleRate int) (*Features, error)
	Synthesize(f *Features, sampleRate int) ([]float64, error)
}
