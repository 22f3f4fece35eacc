// SPDX-License-Identifier: MIT
package audio

import (
	"fmt"

	"github.com/gordonklaus/portaudio"
)

// playbackFrames is the blocking-write chunk size. Latency is irrelevant
// for an offline preview, so a large buffer keeps the write loop cheap.
const playbackFrames = 2048

// Play renders samples through the selected output device using a blocking
// PortAudio stream and returns once the whole buffer has been written.
// Initialize must have been called.
func Play(samples []float64, sampleRate int, deviceID int) error {
	device, err := OutputDevice(deviceID)
	if err != nil {
		return err
	}

	out := make([]float32, playbackFrames)
	params := portaudio.StreamParameters{
		Output: portaudio.StreamDeviceParameters{
			Channels: 1,
			Device:   device,
			Latency:  device.DefaultHighOutputLatency,
		},
		FramesPerBuffer: playbackFrames,
		SampleRate:      float64(sampleRate),
	}

	stream, err := portaudio.OpenStream(params, &out)
	if err != nil {
		return fmt.Errorf("open output stream: %w", err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return fmt.Errorf("start output stream: %w", err)
	}

	for offset := 0; offset < len(samples); offset += playbackFrames {
		chunk := samples[offset:]
		for i := range out {
			if i < len(chunk) {
				out[i] = float32(chunk[i])
			} else {
				out[i] = 0 // zero-pad the final chunk
			}
		}
		if err := stream.Write(); err != nil {
			stream.Stop()
			return fmt.Errorf("write output stream: %w", err)
		}
	}

	return stream.Stop()
}
