// Package chart renders ranked listening charts as JPEG bar charts.
package chart

import (
	"fmt"
	"io"
	"math"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/djotaku/lastfmeoystats/internal/stats"
)

// Params describe the labeling of a single chart.
type Params struct {
	Title  string
	XLabel string
	YLabel string
}

const (
	titleFontSize vg.Length = 20
	labelFontSize vg.Length = 17
	tickFontSize  vg.Length = 14

	// Category names can be long, so tick labels are angled and
	// right-aligned to keep neighbors from colliding.
	tickRotation = 50 * math.Pi / 180
)

// Renderer draws ranked lists as bar charts. The output policy is fixed:
// large square images suited to embedding in a year-end blog post.
type Renderer struct {
	width  vg.Length
	height vg.Length
	dpi    int
}

// New returns a Renderer producing 25x25 inch JPEG images at 80 DPI
// (2000x2000 pixels).
func New() *Renderer {
	return &Renderer{
		width:  25 * vg.Inch,
		height: 25 * vg.Inch,
		dpi:    80,
	}
}

// Render draws the list as a bar chart and writes the encoded JPEG to w.
// Bars appear in list order with the item names along the x-axis. An empty
// list renders as a valid image with no bars.
func (r *Renderer) Render(w io.Writer, list stats.RankedList, params Params) error {
	p := plot.New()
	p.Title.Text = params.Title
	p.Title.TextStyle.Font.Size = titleFontSize
	p.Title.Padding = r.height / 20
	p.BackgroundColor = Background

	p.X.Label.Text = params.XLabel
	p.Y.Label.Text = params.YLabel
	p.X.Label.TextStyle.Font.Size = labelFontSize
	p.Y.Label.TextStyle.Font.Size = labelFontSize
	p.X.Tick.Label.Font.Size = tickFontSize
	p.Y.Tick.Label.Font.Size = tickFontSize

	// The grid carries the visual structure; hide the axis frame and
	// tick marks.
	p.X.LineStyle.Width = 0
	p.Y.LineStyle.Width = 0
	p.X.Tick.LineStyle.Width = 0
	p.Y.Tick.LineStyle.Width = 0
	p.X.Tick.Length = 0
	p.Y.Tick.Length = 0

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = GridLine
	grid.Horizontal.Width = vg.Points(1)
	p.Add(grid)

	values := make(plotter.Values, len(list))
	names := make([]string, len(list))
	for i, item := range list {
		values[i] = float64(item.PlayCount)
		names[i] = item.Name
	}

	bars, err := plotter.NewBarChart(values, r.barWidth(len(list)))
	if err != nil {
		return fmt.Errorf("failed to build bar chart: %w", err)
	}
	bars.Color = BarFill
	bars.LineStyle.Width = 0
	p.Add(bars)

	if len(names) > 0 {
		p.NominalX(names...)
		p.X.Tick.Label.Rotation = tickRotation
		p.X.Tick.Label.XAlign = draw.XRight
		p.X.Tick.Label.YAlign = draw.YCenter
	}

	canvas := vgimg.NewWith(
		vgimg.UseWH(r.width, r.height),
		vgimg.UseDPI(r.dpi),
		vgimg.UseBackgroundColor(Background),
	)
	p.Draw(draw.New(canvas))

	if _, err := (vgimg.JpegCanvas{Canvas: canvas}).WriteTo(w); err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	return nil
}

// RenderFile renders the chart to the file at path, creating it if needed
// and overwriting any previous contents.
func (r *Renderer) RenderFile(path string, list stats.RankedList, params Params) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}

	if err := r.Render(f, list, params); err != nil {
		f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close chart file: %w", err)
	}
	return nil
}

// barWidth sizes bars so that each category slot is roughly 70% filled
// however many entries the chart carries.
func (r *Renderer) barWidth(n int) vg.Length {
	if n < 1 {
		n = 1
	}
	return r.width * 0.7 / vg.Length(n)
}
