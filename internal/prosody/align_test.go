// SPDX-License-Identifier: MIT
package prosody

import (
	"math"
	"testing"
)

func equalContours(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAlignContour(t *testing.T) {
	tests := []struct {
		desc      string
		neutral   []float64
		emotional []float64
		want      []float64
	}{
		{
			"emotional shorter keeps neutral tail",
			[]float64{100, 100, 100, 100, 100},
			[]float64{200, 210, 205},
			[]float64{200, 210, 205, 100, 100},
		},
		{
			"emotional longer is truncated",
			[]float64{100, 100},
			[]float64{200, 210, 205, 190},
			[]float64{200, 210},
		},
		{
			"empty neutral yields empty contour",
			[]float64{},
			[]float64{200},
			[]float64{},
		},
		{
			"empty emotional yields unchanged neutral",
			[]float64{100, 100, 100},
			[]float64{},
			[]float64{100, 100, 100},
		},
		{
			"equal lengths take all emotional values",
			[]float64{100, 0, 100},
			[]float64{180, 0, 190},
			[]float64{180, 0, 190},
		},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := AlignContour(tt.neutral, tt.emotional)
			if len(got) != len(tt.neutral) {
				t.Fatalf("output length: got %d, want %d", len(got), len(tt.neutral))
			}
			if !equalContours(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAlignContourDoesNotMutateInputs(t *testing.T) {
	neutral := []float64{100, 110, 120}
	emotional := []float64{200, 210}
	neutralCopy := append([]float64(nil), neutral...)
	emotionalCopy := append([]float64(nil), emotional...)

	_ = AlignContour(neutral, emotional)

	if !equalContours(neutral, neutralCopy) {
		t.Errorf("neutral contour mutated: %v", neutral)
	}
	if !equalContours(emotional, emotionalCopy) {
		t.Errorf("emotional contour mutated: %v", emotional)
	}
}

func TestAlignContourDeterministic(t *testing.T) {
	neutral := make([]float64, 512)
	emotional := make([]float64, 300)
	for i := range neutral {
		neutral[i] = 100 + 20*math.Sin(float64(i)/16)
	}
	for i := range emotional {
		emotional[i] = 220 + 40*math.Sin(float64(i)/9)
	}

	first := AlignContour(neutral, emotional)
	second := AlignContour(neutral, emotional)
	if !equalContours(first, second) {
		t.Error("repeated invocations disagree")
	}
}

func TestTransferProsodyKeepsNeutralFrameCount(t *testing.T) {
	neutral := &Features{
		F0:           []float64{100, 100, 100, 100},
		TimeAxis:     []float64{0, 0.005, 0.010, 0.015},
		Spectrogram:  [][]float64{{1}, {1}, {1}, {1}},
		Aperiodicity: [][]float64{{0.1}, {0.1}, {0.1}, {0.1}},
		FramePeriod:  5.0,
		FFTSize:      1024,
	}
	emotional := &Features{
		F0:          []float64{210, 215},
		FramePeriod: 5.0,
		FFTSize:     1024,
	}

	merged := TransferProsody(neutral, emotional)

	if merged.Frames() != neutral.Frames() {
		t.Fatalf("merged frame count: got %d, want %d", merged.Frames(), neutral.Frames())
	}
	if len(merged.Spectrogram) != merged.Frames() || len(merged.Aperiodicity) != merged.Frames() {
		t.Error("envelope/aperiodicity frame counts must match the merged F0")
	}
	want := []float64{210, 215, 100, 100}
	if !equalContours(merged.F0, want) {
		t.Errorf("merged F0: got %v, want %v", merged.F0, want)
	}
	if merged.FFTSize != neutral.FFTSize || merged.FramePeriod != neutral.FramePeriod {
		t.Error("synthesis parameters must come from the neutral set")
	}
}

func BenchmarkAlignContour(b *testing.B) {
	neutral := make([]float64, 4096)
	emotional := make([]float64, 3000)
	for i := range neutral {
		neutral[i] = 100
	}
	for i := range emotional {
		emotional[i] = 200
	}

	b.ReportAllocs()

	for b.Loop() {
		_ = AlignContour(neutral, emotional)
	}
}
