// SPDX-License-Identifier: MIT
/*
Package world binds the WORLD vocoder C library. Analysis chains
DIO F0 estimation, StoneMask refinement, CheapTrick spectral envelope
estimation and D4C aperiodicity estimation; synthesis renders a feature
set back into a waveform. All estimation quality concerns live in the
library; this package only marshals buffers across the cgo boundary.

Requires libworld headers and library, e.g. `apt install libworld-dev`
or a build from https://github.com/mmorise/World.
*/
package world

/*
#cgo LDFLAGS: -lworld -lm
#include <stdlib.h>
#include <world/dio.h>
#include <world/stonemask.h>
#include <world/cheaptrick.h>
#include <world/d4c.h>
#include <world/synthesis.h>
*/
import "C"

import (
	"fmt"
	"unsafe"

	"prosody/internal/prosody"
)

// World implements prosody.Vocoder on top of the WORLD C API.
type World struct {
	framePeriod float64 // ms
}

var _ prosody.Vocoder = (*World)(nil)

// New returns a vocoder analyzing and synthesizing at the given frame
// period in milliseconds.
func New(framePeriod float64) *World {
	return &World{framePeriod: framePeriod}
}

// Analyze decomposes samples into F0, spectral envelope and aperiodicity.
// The three outputs share one frame count, as the synthesis call requires.
func (w *World) Analyze(samples []float64, sampleRate int) (*prosody.Features, error) {
	n := len(samples)
	if n == 0 {
		return nil, fmt.Errorf("world: empty waveform")
	}

	x := cDoubles(n)
	defer C.free(unsafe.Pointer(x))
	copy(unsafe.Slice((*float64)(unsafe.Pointer(x)), n), samples)

	var dioOpt C.DioOption
	C.InitializeDioOption(&dioOpt)
	dioOpt.frame_period = C.double(w.framePeriod)

	frames := int(C.GetSamplesForDIO(C.int(sampleRate), C.int(n), C.double(w.framePeriod)))
	timeAxis := cDoubles(frames)
	defer C.free(unsafe.Pointer(timeAxis))
	rawF0 := cDoubles(frames)
	defer C.free(unsafe.Pointer(rawF0))
	f0 := cDoubles(frames)
	defer C.free(unsafe.Pointer(f0))

	C.Dio(x, C.int(n), C.int(sampleRate), &dioOpt, timeAxis, rawF0)
	C.StoneMask(x, C.int(n), C.int(sampleRate), timeAxis, rawF0, C.int(frames), f0)

	var ctOpt C.CheapTrickOption
	C.InitializeCheapTrickOption(C.int(sampleRate), &ctOpt)
	fftSize := int(ctOpt.fft_size)
	bins := fftSize/2 + 1

	spectrogram := cMatrix(frames, bins)
	defer freeMatrix(spectrogram, frames)
	C.CheapTrick(x, C.int(n), C.int(sampleRate), timeAxis, f0, C.int(frames), &ctOpt, spectrogram)

	var d4cOpt C.D4COption
	C.InitializeD4COption(&d4cOpt)

	aperiodicity := cMatrix(frames, bins)
	defer freeMatrix(aperiodicity, frames)
	C.D4C(x, C.int(n), C.int(sampleRate), timeAxis, f0, C.int(frames), C.int(fftSize), &d4cOpt, aperiodicity)

	return &prosody.Features{
		F0:           goDoubles(f0, frames),
		TimeAxis:     goDoubles(timeAxis, frames),
		Spectrogram:  goMatrix(spectrogram, frames, bins),
		Aperiodicity: goMatrix(aperiodicity, frames, bins),
		FramePeriod:  w.framePeriod,
		FFTSize:      fftSize,
	}, nil
}

// Synthesize renders a feature set into a waveform. F0, Spectrogram and
// Aperiodicity must carry the same frame count.
func (w *World) Synthesize(f *prosody.Features, sampleRate int) ([]float64, error) {
	frames := f.Frames()
	if frames == 0 {
		return nil, fmt.Errorf("world: empty feature set")
	}
	if len(f.Spectrogram) != frames || len(f.Aperiodicity) != frames {
		return nil, fmt.Errorf("world: frame count mismatch: f0=%d envelope=%d aperiodicity=%d",
			frames, len(f.Spectrogram), len(f.Aperiodicity))
	}

	bins := f.FFTSize/2 + 1

	f0 := cDoubles(frames)
	defer C.free(unsafe.Pointer(f0))
	copy(unsafe.Slice((*float64)(unsafe.Pointer(f0)), frames), f.F0)

	spectrogram := cMatrixFrom(f.Spectrogram, bins)
	defer freeMatrix(spectrogram, frames)
	aperiodicity := cMatrixFrom(f.Aperiodicity, bins)
	defer freeMatrix(aperiodicity, frames)

	outLen := int(float64(frames-1)*f.FramePeriod/1000.0*float64(sampleRate)) + 1
	y := cDoubles(outLen)
	defer C.free(unsafe.Pointer(y))

	C.Synthesis(f0, C.int(frames), spectrogram, aperiodicity,
		C.int(f.FFTSize), C.double(f.FramePeriod), C.int(sampleRate),
		C.int(outLen), y)

	return goDoubles(y, outLen), nil
}

// cDoubles allocates a zeroed C double buffer of length n.
func cDoubles(n int) *C.double {
	return (*C.double)(C.calloc(C.size_t(n), C.size_t(unsafe.Sizeof(C.double(0)))))
}

// goDoubles copies n values out of a C double buffer.
func goDoubles(p *C.double, n int) []float64 {
	out := make([]float64, n)
	copy(out, unsafe.Slice((*float64)(unsafe.Pointer(p)), n))
	return out
}

// cMatrix allocates a rows x cols C double matrix in WORLD's row-pointer
// layout. All memory is C-owned; cgo pointer rules forbid handing WORLD a
// Go-allocated pointer table.
func cMatrix(rows, cols int) **C.double {
	table := (**C.double)(C.malloc(C.size_t(rows) * C.size_t(unsafe.Sizeof(uintptr(0)))))
	rowPtrs := unsafe.Slice(table, rows)
	for i := range rowPtrs {
		rowPtrs[i] = cDoubles(cols)
	}
	return table
}

// cMatrixFrom allocates a C matrix and fills it from src, zero-padding or
// truncating each row to cols values.
func cMatrixFrom(src [][]float64, cols int) **C.double {
	table := cMatrix(len(src), cols)
	rowPtrs := unsafe.Slice(table, len(src))
	for i, row := range src {
		dst := unsafe.Slice((*float64)(unsafe.Pointer(rowPtrs[i])), cols)
		copy(dst, row)
	}
	return table
}

// goMatrix copies a C matrix into a Go slice of rows.
func goMatrix(table **C.double, rows, cols int) [][]float64 {
	rowPtrs := unsafe.Slice(table, rows)
	out := make([][]float64, rows)
	for i := range out {
		out[i] = goDoubles(rowPtrs[i], cols)
	}
	return out
}

func freeMatrix(table **C.double, rows int) {
	rowPtrs := unsafe.Slice(table, rows)
	for i := range rowPtrs {
		C.free(unsafe.Pointer(rowPtrs[i]))
	}
	C.free(unsafe.Pointer(table))
}
