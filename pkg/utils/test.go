package utils

import "math"

// GenerateSineWave returns n samples of a sine wave at the given frequency,
// scaled to 90% of full range to leave encoding headroom.
func GenerateSineWave(n int, sampleRate, frequency float64) []float64 {
	buffer := make([]float64, n)
	for i := range buffer {
		t := float64(i) / sampleRate
		buffer[i] = math.Sin(2*math.Pi*frequency*t) * 0.9
	}
	return buffer
}

// GenerateComplexWave returns n samples of a 440Hz fundamental plus two
// harmonics, useful as a speech-like broadband test signal.
func GenerateComplexWave(n int, sampleRate float64) []float64 {
	buffer := make([]float64, n)
	for i := range buffer {
		t := float64(i) / sampleRate
		buffer[i] = math.Sin(2*math.Pi*440*t)*0.5 +
			math.Sin(2*math.Pi*880*t)*0.3 +
			math.Sin(2*math.Pi*1320*t)*0.2
	}
	return buffer
}

// GenerateVibratoContour returns an F0 contour oscillating around center
// with the given depth, with every unvoicedEvery-th frame forced to 0.
// Frames are per-contour-index, not per-sample.
func GenerateVibratoContour(frames int, center, depth float64, unvoicedEvery int) []float64 {
	contour := make([]float64, frames)
	for i := range contour {
		if unvoicedEvery > 0 && i%unvoicedEvery == 0 {
			continue
		}
		contour[i] = center + depth*math.Sin(float64(i)/8)
	}
	return contour
}
