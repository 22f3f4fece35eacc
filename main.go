package main

import (
	"prosody/cmd"
	"prosody/internal/audio"
	"prosody/internal/build"
	"prosody/internal/config"
	"prosody/internal/log"
	"prosody/internal/prosody"
	"prosody/internal/world"
)

// main sequences one prosody transfer run:
//
// 1. Startup Phase:
//   - Initialize build information
//   - Parse configuration (file, environment, flags)
//   - Initialize PortAudio when playback or device listing is requested
//
// 2. Run Phase:
//   - Execute the one-off command, or
//   - Run the transfer pipeline (load, analyze, align, synthesize, write,
//     plot, optionally play)
//
// 3. Shutdown Phase:
//   - Terminate PortAudio
//
// Any collaborator failure terminates the process with a non-zero status
// and the failing library's diagnostic; nothing is caught or retried.
func main() {
	build.Initialize()

	cfg, err := cmd.ParseArgs()
	if err != nil {
		log.Fatalf("%v", err)
	}
	if cfg == nil {
		return // help or version was shown
	}

	if cfg.Verbose {
		log.SetLevel(log.LevelDebug)
	} else if level, ok := log.ParseLevel(cfg.LogLevel); ok {
		log.SetLevel(level)
	}

	usesAudio := cfg.Command == "devices" || cfg.Play
	if usesAudio {
		if err := audio.Initialize(); err != nil {
			log.Fatalf("%v", err)
		}
		defer audio.Terminate()
	}

	if cfg.Command == "devices" {
		if err := audio.ListDevices(); err != nil {
			log.Errorf("%v", err)
		}
		return
	}

	if err := run(cfg); err != nil {
		if usesAudio {
			audio.Terminate() // Fatalf skips the deferred call
		}
		log.Fatalf("prosody transfer failed: %v", err)
	}
}

func run(cfg *config.Config) error {
	pipeline := prosody.NewPipeline(cfg, world.New(cfg.FramePeriod))
	return pipeline.Run()
}
