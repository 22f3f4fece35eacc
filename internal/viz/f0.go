// SPDX-License-Identifier: MIT
// Package viz renders the F0 comparison plot for a transfer run.
package viz

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// SaveF0Comparison writes a plot of the neutral, emotional and converted F0
// contours against time to path (format chosen by extension, typically
// PNG). Unvoiced frames (F0 = 0) are drawn as gaps, not as zero-valued
// points, so the voiced contour shape stays readable.
func SaveF0Comparison(path string, neutral, emotional, converted []float64, framePeriod float64) error {
	p := plot.New()
	p.Title.Text = "Fundamental Frequency (F0) Contour Comparison"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Frequency (Hz)"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	series := []struct {
		label   string
		contour []float64
		style   draw.LineStyle
	}{
		{
			label:   "Original Neutral F0",
			contour: neutral,
			style: draw.LineStyle{
				Color: color.RGBA{B: 255, A: 255},
				Width: vg.Points(1.5),
			},
		},
		{
			label:   "Original Emotional F0",
			contour: emotional,
			style: draw.LineStyle{
				Color:  color.RGBA{R: 255, A: 255},
				Width:  vg.Points(1.5),
				Dashes: []vg.Length{vg.Points(5), vg.Points(3)},
			},
		},
		{
			label:   "Converted F0",
			contour: converted,
			style: draw.LineStyle{
				Color:  color.RGBA{G: 160, A: 255},
				Width:  vg.Points(2.5),
				Dashes: []vg.Length{vg.Points(1), vg.Points(3)},
			},
		},
	}

	for _, s := range series {
		if err := addContour(p, s.contour, framePeriod, s.label, s.style); err != nil {
			return err
		}
	}

	return p.Save(12*vg.Inch, 6*vg.Inch, path)
}

// addContour adds one F0 contour as a set of voiced line segments sharing
// a style, with a single legend entry.
func addContour(p *plot.Plot, f0 []float64, framePeriod float64, label string, style draw.LineStyle) error {
	labeled := false
	for _, seg := range voicedSegments(f0) {
		pts := make(plotter.XYs, seg[1]-seg[0])
		for i := range pts {
			frame := seg[0] + i
			pts[i].X = float64(frame) * framePeriod / 1000.0
			pts[i].Y = f0[frame]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.LineStyle = style
		p.Add(line)

		if !labeled {
			p.Legend.Add(label, line)
			labeled = true
		}
	}
	return nil
}

// voicedSegments returns [start, end) index pairs of consecutive voiced
// (non-zero) frames.
func voicedSegments(f0 []float64) [][2]int {
	var segments [][2]int
	start := -1
	for i, v := range f0 {
		switch {
		case v > 0 && start < 0:
			start = i
		case v == 0 && start >= 0:
			segments = append(segments, [2]int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		segments = append(segments, [2]int{start, len(f0)})
	}
	return segments
}
