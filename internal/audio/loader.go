// SPDX-License-Identifier: MIT
/*
Package audio handles the waveform boundary of the pipeline:
- WAV decoding with mono downmix and float64 normalization
- Rational resampling to the analysis rate
- WAV encoding of the synthesized result
- PortAudio playback of the converted buffer
*/
package audio

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-dsp/dsp/resample"
	"github.com/go-audio/wav"
)

// LoadWAV reads a WAV file, downmixes it to mono, normalizes samples to
// float64 in [-1, 1] and resamples to targetRate when the file rate
// differs. The returned waveform is immutable as far as the pipeline is
// concerned; nothing downstream writes into it.
func LoadWAV(path string, targetRate int) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if buf.Format == nil || buf.Format.NumChannels < 1 {
		return nil, fmt.Errorf("decode %s: missing format information", path)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth == 0 {
		bitDepth = buf.SourceBitDepth
	}
	if bitDepth <= 0 || bitDepth > 32 {
		return nil, fmt.Errorf("decode %s: unsupported bit depth %d", path, bitDepth)
	}
	scale := float64(int64(1) << (bitDepth - 1))

	channels := buf.Format.NumChannels
	frames := len(buf.Data) / channels
	mono := make([]float64, frames)
	for i := range frames {
		var sum float64
		for ch := range channels {
			sum += float64(buf.Data[i*channels+ch])
		}
		mono[i] = sum / (float64(channels) * scale)
	}

	if buf.Format.SampleRate != targetRate {
		mono, err = resampleTo(mono, buf.Format.SampleRate, targetRate)
		if err != nil {
			return nil, fmt.Errorf("resample %s: %w", path, err)
		}
	}

	return mono, nil
}

// resampleTo converts samples from inRate to outRate using polyphase
// rational resampling with the strongest anti-aliasing profile.
func resampleTo(samples []float64, inRate, outRate int) ([]float64, error) {
	r, err := resample.NewForRates(float64(inRate), float64(outRate),
		resample.WithQuality(resample.QualityBest))
	if err != nil {
		return nil, err
	}
	up, down := r.Ratio()
	return resample.Resample(samples, up, down,
		resample.WithQuality(resample.QualityBest))
}
