package utils

import (
	"math"
	"testing"
)

func TestGenerateSineWave(t *testing.T) {
	const sampleRate = 22050.0
	wave := GenerateSineWave(22050, sampleRate, 100)

	if len(wave) != 22050 {
		t.Fatalf("expected 22050 samples, got %d", len(wave))
	}
	if wave[0] != 0 {
		t.Errorf("sine wave should start at zero, got %v", wave[0])
	}

	var peak float64
	for _, s := range wave {
		if math.Abs(s) > peak {
			peak = math.Abs(s)
		}
	}
	if peak > 0.9+1e-9 || peak < 0.85 {
		t.Errorf("expected peak near 0.9, got %v", peak)
	}
}

func TestGenerateVibratoContour(t *testing.T) {
	contour := GenerateVibratoContour(100, 200, 20, 10)

	if len(contour) != 100 {
		t.Fatalf("expected 100 frames, got %d", len(contour))
	}
	for i, f0 := range contour {
		if i%10 == 0 {
			if f0 != 0 {
				t.Errorf("frame %d should be unvoiced, got %v", i, f0)
			}
			continue
		}
		if f0 < 180 || f0 > 220 {
			t.Errorf("frame %d outside vibrato range: %v", i, f0)
		}
	}
}
