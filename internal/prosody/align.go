// SPDX-License-Identifier: MIT
package prosody

// AlignContour produces an F0 contour with the neutral contour's frame
// count, sourced from the emotional contour's values. The first
// min(len(neutral), len(emotional)) frames take the emotional values; any
// remaining tail keeps the neutral values, so the result always lines up
// with the neutral spectral envelope and aperiodicity at synthesis time.
// Neither input is mutated.
func AlignContour(neutral, emotional []float64) []float64 {
	aligned := make([]float64, len(neutral))
	copy(aligned, neutral)
	// copy stops at the shorter contour, leaving the neutral tail intact.
	copy(aligned, emotional)
	return aligned
}

// TransferProsody merges the emotional recording's pitch contour with the
// neutral recording's timbre. The result carries the neutral frame count
// throughout, satisfying the vocoder's equal-length synthesis contract.
func TransferProsody(neutral, emotional *Features) *Features {
	return &Features{
		F0:           AlignContour(neutral.F0, emotional.F0),
		TimeAxis:     neutral.TimeAxis,
		Spectrogram:  neutral.Spectrogram,
		Aperiodicity: neutral.Aperiodicity,
		FramePeriod:  neutral.FramePeriod,
		FFTSize:      neutral.FFTSize,
	}
}
