package config

// Core configuration constants that define the boundaries and defaults
// for a single prosody transfer run.
const (
	// Default values for the transfer pipeline configuration
	DefaultEmotionFile = "emotion.wav"       // Pitch donor recording
	DefaultNeutralFile = "neutral.wav"       // Timbre donor recording
	DefaultOutputFile  = "converted.wav"     // Synthesized result
	DefaultPlotFile    = "f0_comparison.png" // F0 comparison plot ("" disables)
	DefaultSampleRate  = 22050               // Analysis/synthesis rate (Hz)
	DefaultFramePeriod = 5.0                 // Analysis frame period (ms)
	DefaultDeviceID    = MinDeviceID         // Default playback device
	DefaultPlay        = false               // Don't play the result by default
	DefaultCommand     = ""                  // No command by default
	DefaultVerbosity   = false               // Quiet operation

	// Hardware and processing limits
	MinDeviceID   = -1     // -1 represents system default device
	MinSampleRate = 8000   // Minimum usable sample rate (Hz)
	MaxSampleRate = 192000 // Maximum supported sample rate (Hz)

	// Frame period bounds accepted by the vocoder (ms)
	MinFramePeriod = 1.0
	MaxFramePeriod = 20.0
)

// Config holds all runtime options for one prosody transfer run.
// It is constructed from defaults, an optional YAML file, environment
// overrides and finally command line flags, and is scoped to a single
// invocation rather than held as process-wide globals.
type Config struct {
	// Input/output files
	EmotionFile string `yaml:"emotion_file"` // Recording whose pitch contour is transferred
	NeutralFile string `yaml:"neutral_file"` // Recording whose envelope/aperiodicity are kept
	OutputFile  string `yaml:"output_file"`  // Converted waveform destination
	PlotFile    string `yaml:"plot_file"`    // F0 comparison plot destination, "" disables

	// Analysis settings
	SampleRate  int     `yaml:"sample_rate"`  // Rate both inputs are resampled to (Hz)
	FramePeriod float64 `yaml:"frame_period"` // Vocoder analysis frame period (ms)

	// Playback options
	Play     bool `yaml:"play"`   // Play the converted audio after writing it
	DeviceID int  `yaml:"device"` // Playback device ID (-1 = system default)

	// Debug options
	LogLevel string `yaml:"log_level"` // Logging level ("debug", "info", ...)
	Verbose  bool   `yaml:"verbose"`   // Force debug-level logging
	Command  string `yaml:"-"`         // One-off command to execute ("devices")
}

// NewConfig creates a Config with default values. This is the base
// configuration before the YAML file, environment and flags are applied.
func NewConfig() *Config {
	return &Config{
		EmotionFile: DefaultEmotionFile,
		NeutralFile: DefaultNeutralFile,
		OutputFile:  DefaultOutputFile,
		PlotFile:    DefaultPlotFile,
		SampleRate:  DefaultSampleRate,
		FramePeriod: DefaultFramePeriod,
		Play:        DefaultPlay,
		DeviceID:    DefaultDeviceID,
		LogLevel:    "info",
		Verbose:     DefaultVerbosity,
		Command:     DefaultCommand,
	}
}
