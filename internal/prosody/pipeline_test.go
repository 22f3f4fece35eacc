// SPDX-License-Identifier: MIT
package prosody

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"prosody/internal/audio"
	"prosody/internal/config"
	"prosody/pkg/utils"
)

// fakeVocoder stands in for the WORLD binding: one frame per framePeriod
// worth of samples, constant F0, unit envelope. Synthesis emits a quiet
// constant buffer of the frame-derived length.
type fakeVocoder struct {
	f0          float64
	framePeriod float64 // ms
	synthesized *Features
}

func (v *fakeVocoder) Analyze(samples []float64, sampleRate int) (*Features, error) {
	samplesPerFrame := float64(sampleRate) * v.framePeriod / 1000.0
	frames := int(float64(len(samples))/samplesPerFrame) + 1

	f := &Features{
		F0:           make([]float64, frames),
		TimeAxis:     make([]float64, frames),
		Spectrogram:  make([][]float64, frames),
		Aperiodicity: make([][]float64, frames),
		FramePeriod:  v.framePeriod,
		FFTSize:      1024,
	}
	for i := range frames {
		f.F0[i] = v.f0
		f.TimeAxis[i] = float64(i) * v.framePeriod / 1000.0
		f.Spectrogram[i] = []float64{1}
		f.Aperiodicity[i] = []float64{0.1}
	}
	return f, nil
}

func (v *fakeVocoder) Synthesize(f *Features, sampleRate int) ([]float64, error) {
	v.synthesized = f
	n := int(float64(f.Frames()-1)*f.FramePeriod/1000.0*float64(sampleRate)) + 1
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.1
	}
	return out, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := config.NewConfig()
	cfg.EmotionFile = filepath.Join(dir, "emotion.wav")
	cfg.NeutralFile = filepath.Join(dir, "neutral.wav")
	cfg.OutputFile = filepath.Join(dir, "converted.wav")
	cfg.PlotFile = filepath.Join(dir, "f0_comparison.png")

	// Emotional clip shorter than neutral: exercises the neutral tail.
	rate := float64(cfg.SampleRate)
	emotion := utils.GenerateSineWave(cfg.SampleRate/4, rate, 220)
	neutral := utils.GenerateSineWave(cfg.SampleRate/2, rate, 110)

	if err := audio.WriteWAV(cfg.EmotionFile, emotion, cfg.SampleRate); err != nil {
		t.Fatalf("write emotion input: %v", err)
	}
	if err := audio.WriteWAV(cfg.NeutralFile, neutral, cfg.SampleRate); err != nil {
		t.Fatalf("write neutral input: %v", err)
	}
	return cfg
}

func TestPipelineRun(t *testing.T) {
	cfg := testConfig(t)
	voc := &fakeVocoder{f0: 220, framePeriod: cfg.FramePeriod}

	if err := NewPipeline(cfg, voc).Run(); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	// The synthesized feature set must carry the neutral frame count with
	// the emotional contour substituted up front.
	if voc.synthesized == nil {
		t.Fatal("synthesis was never invoked")
	}
	neutralFrames := int(float64(cfg.SampleRate/2)/(float64(cfg.SampleRate)*cfg.FramePeriod/1000.0)) + 1
	if voc.synthesized.Frames() != neutralFrames {
		t.Errorf("synthesized frame count: got %d, want %d", voc.synthesized.Frames(), neutralFrames)
	}
	if len(voc.synthesized.Spectrogram) != voc.synthesized.Frames() {
		t.Error("envelope frame count must match the merged F0")
	}

	out, err := audio.LoadWAV(cfg.OutputFile, cfg.SampleRate)
	if err != nil {
		t.Fatalf("converted file unreadable: %v", err)
	}
	wantSamples := int(float64(neutralFrames-1)*cfg.FramePeriod/1000.0*float64(cfg.SampleRate)) + 1
	if len(out) != wantSamples {
		t.Errorf("converted sample count: got %d, want %d", len(out), wantSamples)
	}

	if info, err := os.Stat(cfg.PlotFile); err != nil || info.Size() == 0 {
		t.Errorf("plot file missing or empty: %v", err)
	}
}

func TestPipelineSkipsPlotWhenDisabled(t *testing.T) {
	cfg := testConfig(t)
	plotPath := cfg.PlotFile
	cfg.PlotFile = ""
	voc := &fakeVocoder{f0: 200, framePeriod: cfg.FramePeriod}

	if err := NewPipeline(cfg, voc).Run(); err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if _, err := os.Stat(plotPath); !os.IsNotExist(err) {
		t.Errorf("plot should not have been written, stat err=%v", err)
	}
}

func TestPipelineMissingInput(t *testing.T) {
	cfg := testConfig(t)
	cfg.EmotionFile = filepath.Join(t.TempDir(), "absent.wav")
	voc := &fakeVocoder{f0: 200, framePeriod: cfg.FramePeriod}

	err := NewPipeline(cfg, voc).Run()
	if err == nil {
		t.Fatal("expected error for missing input, got nil")
	}
}

func TestMeanVoicedF0(t *testing.T) {
	if got := meanVoicedF0(nil); got != 0 {
		t.Errorf("empty contour: got %v, want 0", got)
	}
	if got := meanVoicedF0([]float64{0, 0}); got != 0 {
		t.Errorf("unvoiced contour: got %v, want 0", got)
	}
	got := meanVoicedF0([]float64{100, 0, 200})
	if math.Abs(got-150) > 1e-12 {
		t.Errorf("voiced mean: got %v, want 150", got)
	}
}
