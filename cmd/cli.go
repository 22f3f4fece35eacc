package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"prosody/internal/build"
	"prosody/internal/config"
)

// ParseArgs builds the run configuration from defaults, an optional YAML
// config file, environment overrides and command line flags, in that
// order. A nil Config with nil error means a terminal action (help,
// version) already ran.
func ParseArgs() (*config.Config, error) {
	buildInfo := build.GetBuildFlags()

	// Locate --config before cobra runs so flag defaults reflect the file.
	configPath := ""
	for i, arg := range os.Args[1:] {
		if arg == "--config" && i+2 < len(os.Args) {
			configPath = os.Args[i+2]
		} else if after, ok := strings.CutPrefix(arg, "--config="); ok {
			configPath = after
		}
	}
	options, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	rootCmd := &cobra.Command{
		Use:           buildInfo.Name,
		Short:         "Transfer the pitch contour of one speech recording onto another",
		Version:       buildInfo.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableDescriptions: true,
			DisableNoDescFlag:   true,
			HiddenDefaultCmd:    true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			options.Command = "transfer"
			return options.Validate()
		},
	}

	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Devices command
	devicesCmd := &cobra.Command{
		Use:   "devices",
		Short: "List available audio playback devices",
		Run: func(cmd *cobra.Command, args []string) {
			options.Command = "devices"
		},
	}
	rootCmd.AddCommand(devicesCmd)

	// Input/output files
	rootCmd.PersistentFlags().StringVarP(&options.EmotionFile, "emotion", "e", options.EmotionFile,
		"Recording whose pitch contour is transferred")
	rootCmd.PersistentFlags().StringVarP(&options.NeutralFile, "neutral", "n", options.NeutralFile,
		"Recording whose spectral envelope and aperiodicity are kept")
	rootCmd.PersistentFlags().StringVarP(&options.OutputFile, "output", "o", options.OutputFile,
		"Output file for the converted audio")
	rootCmd.PersistentFlags().StringVar(&options.PlotFile, "plot", options.PlotFile,
		"Output file for the F0 comparison plot (empty disables plotting)")

	// Analysis configuration
	rootCmd.PersistentFlags().IntVarP(&options.SampleRate, "sample-rate", "s", options.SampleRate,
		"Analysis and synthesis sample rate, measured in Hertz (Hz)")
	rootCmd.PersistentFlags().Float64VarP(&options.FramePeriod, "frame-period", "f", options.FramePeriod,
		"Vocoder analysis frame period in milliseconds")

	// Playback configuration
	rootCmd.PersistentFlags().BoolVarP(&options.Play, "play", "p", options.Play,
		"Play the converted audio after writing it")
	rootCmd.PersistentFlags().IntVarP(&options.DeviceID, "device", "d", options.DeviceID,
		"Playback device ID. Use 'devices' command to see available devices.")

	// Debug configuration
	rootCmd.PersistentFlags().BoolVarP(&options.Verbose, "verbose", "v", options.Verbose,
		"Show verbose output")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")

	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		return nil, err
	}

	// Help or version ran; nothing further to do.
	if options.Command == "" {
		return nil, nil
	}

	return options, nil
}
