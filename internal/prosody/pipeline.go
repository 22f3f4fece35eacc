// SPDX-License-Identifier: MIT
package prosody

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"prosody/internal/audio"
	"prosody/internal/config"
	"prosody/internal/log"
	"prosody/internal/viz"
)

// Pipeline runs one prosody transfer: load both recordings, analyze them,
// substitute the pitch contour, synthesize, write the result and render
// the comparison plot. Fully synchronous; each phase completes before the
// next begins.
type Pipeline struct {
	cfg     *config.Config
	vocoder Vocoder
}

// NewPipeline wires a pipeline for one run.
func NewPipeline(cfg *config.Config, vocoder Vocoder) *Pipeline {
	return &Pipeline{cfg: cfg, vocoder: vocoder}
}

// Run executes the transfer. Collaborator failures are wrapped with the
// failing phase and propagated; nothing is retried and no partial output
// is cleaned up.
func (p *Pipeline) Run() error {
	cfg := p.cfg

	log.Infof("loading %s and %s at %d Hz", cfg.EmotionFile, cfg.NeutralFile, cfg.SampleRate)
	emotionWave, err := audio.LoadWAV(cfg.EmotionFile, cfg.SampleRate)
	if err != nil {
		return fmt.Errorf("load emotional recording: %w", err)
	}
	neutralWave, err := audio.LoadWAV(cfg.NeutralFile, cfg.SampleRate)
	if err != nil {
		return fmt.Errorf("load neutral recording: %w", err)
	}

	log.Infof("analyzing speech (frame period %.1f ms)", cfg.FramePeriod)
	emotional, err := p.vocoder.Analyze(emotionWave, cfg.SampleRate)
	if err != nil {
		return fmt.Errorf("analyze emotional recording: %w", err)
	}
	neutral, err := p.vocoder.Analyze(neutralWave, cfg.SampleRate)
	if err != nil {
		return fmt.Errorf("analyze neutral recording: %w", err)
	}
	log.Debugf("frame counts: emotional=%d neutral=%d", emotional.Frames(), neutral.Frames())

	merged := TransferProsody(neutral, emotional)
	log.Infof("transferred pitch contour: mean voiced F0 %.1f Hz -> %.1f Hz",
		meanVoicedF0(neutral.F0), meanVoicedF0(merged.F0))

	converted, err := p.vocoder.Synthesize(merged, cfg.SampleRate)
	if err != nil {
		return fmt.Errorf("synthesize converted speech: %w", err)
	}
	if len(converted) > 0 {
		log.Debugf("synthesized %d samples, peak %.3f / %.3f",
			len(converted), floats.Max(converted), floats.Min(converted))
	}

	if err := audio.WriteWAV(cfg.OutputFile, converted, cfg.SampleRate); err != nil {
		return fmt.Errorf("write converted audio: %w", err)
	}
	log.Infof("converted audio saved to %s", cfg.OutputFile)

	if cfg.PlotFile != "" {
		if err := viz.SaveF0Comparison(cfg.PlotFile, neutral.F0, emotional.F0, merged.F0, cfg.FramePeriod); err != nil {
			return fmt.Errorf("render F0 plot: %w", err)
		}
		log.Infof("F0 plot saved to %s", cfg.PlotFile)
	}

	if cfg.Play {
		log.Infof("playing converted audio")
		if err := audio.Play(converted, cfg.SampleRate, cfg.DeviceID); err != nil {
			return fmt.Errorf("play converted audio: %w", err)
		}
	}

	return nil
}

// meanVoicedF0 averages the voiced (non-zero) frames of a contour.
// Returns 0 for a fully unvoiced or empty contour.
func meanVoicedF0(f0 []float64) float64 {
	voiced := make([]float64, 0, len(f0))
	for _, v := range f0 {
		if v > 0 {
			voiced = append(voiced, v)
		}
	}
	if len(voiced) == 0 {
		return 0
	}
	return stat.Mean(voiced, nil)
}
