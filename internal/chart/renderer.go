package chart

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/mazznoer/colorgrad"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/bioscope-labs/pathway-agent/internal/core/domain"
	"github.com/bioscope-labs/pathway-agent/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.ChartRenderer = (*Renderer)(nil)

const (
	dpi           = 150
	widthInches   = 12.0
	minHeightIn   = 6.0
	heightPerTerm = 0.5

	maxNameLen   = 45
	truncateAt   = 42
	defaultFile  = "enrichment_plot.png"
	axisLabel    = "-log10(P-value)"
	barEdgeHex   = "#A9A9A9"
	annotationHx = "#808080"
)

var (
	regularFont = mustFont(goregular.TTF)
	boldFont    = mustFont(gobold.TTF)
)

func mustFont(ttf []byte) *truetype.Font {
	f, err := truetype.Parse(ttf)
	if err != nil {
		panic(err)
	}
	return f
}

func newFace(f *truetype.Font, points float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: points, DPI: dpi})
}

// Renderer draws enrichment bar charts onto a raster canvas and saves
// them as PNG files.
type Renderer struct {
	grad colorgrad.Gradient
}

// New creates a bar-chart renderer.
func New() *Renderer {
	return &Renderer{grad: colorgrad.RdYlBu()}
}

// RenderBarChart draws one horizontal bar per term, first term at the
// top, and saves the canvas to outputPath (or a default file in the
// working directory when empty). It returns the absolute path of the
// written file. An empty term sequence produces no file; the sentinel
// NoTermsMessage is returned instead.
func (r *Renderer) RenderBarChart(terms []domain.EnrichmentTerm, title, outputPath string) (string, error) {
	if len(terms) == 0 {
		return driven.NoTermsMessage, nil
	}

	labels := make([]string, len(terms))
	sigs := make([]float64, len(terms))
	counts := make([]int, len(terms))
	maxSig := 0.0
	for i, term := range terms {
		labels[i] = displayName(term.Name)
		sigs[i] = significance(term.PValue)
		counts[i] = len(term.Genes)
		if sigs[i] > maxSig {
			maxSig = sigs[i]
		}
	}
	if maxSig <= 0 {
		maxSig = 1
	}

	heightIn := math.Max(minHeightIn, float64(len(terms))*heightPerTerm)
	width := int(widthInches * dpi)
	height := int(heightIn * dpi)

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	labelFace := newFace(regularFont, 9)
	annotationFace := newFace(regularFont, 8)
	axisFace := newFace(regularFont, 11)
	titleFace := newFace(boldFont, 13)

	// Size the left margin to the longest term label.
	dc.SetFontFace(labelFace)
	maxLabelW := 0.0
	for _, l := range labels {
		if w, _ := dc.MeasureString(l); w > maxLabelW {
			maxLabelW = w
		}
	}

	marginLeft := maxLabelW + 30
	marginRight := 120.0
	marginTop := 70.0
	marginBottom := 90.0

	plotW := float64(width) - marginLeft - marginRight
	plotH := float64(height) - marginTop - marginBottom
	scaleX := plotW / (maxSig * 1.05)

	slot := plotH / float64(len(terms))
	barH := slot * 0.8

	for i := range terms {
		y := marginTop + float64(i)*slot + (slot-barH)/2
		barW := sigs[i] * scaleX

		// Warm end of the scale marks the most significant term.
		dc.SetColor(r.grad.At(1 - sigs[i]/maxSig))
		dc.DrawRectangle(marginLeft, y, barW, barH)
		dc.FillPreserve()
		dc.SetHexColor(barEdgeHex)
		dc.SetLineWidth(1)
		dc.Stroke()

		dc.SetFontFace(labelFace)
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(labels[i], marginLeft-10, y+barH/2, 1, 0.5)

		dc.SetFontFace(annotationFace)
		dc.SetHexColor(annotationHx)
		dc.DrawStringAnchored(fmt.Sprintf("%d genes", counts[i]), marginLeft+barW+8, y+barH/2, 0, 0.5)
	}

	axisY := marginTop + plotH
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(marginLeft, axisY, marginLeft+plotW, axisY)
	dc.DrawLine(marginLeft, marginTop, marginLeft, axisY)
	dc.Stroke()

	dc.SetFontFace(labelFace)
	for _, tick := range ticks(maxSig * 1.05) {
		x := marginLeft + tick*scaleX
		dc.DrawLine(x, axisY, x, axisY+6)
		dc.Stroke()
		dc.DrawStringAnchored(formatTick(tick), x, axisY+12, 0.5, 1)
	}

	dc.SetFontFace(axisFace)
	dc.DrawStringAnchored(axisLabel, marginLeft+plotW/2, float64(height)-25, 0.5, 0.5)

	dc.SetFontFace(titleFace)
	dc.DrawStringAnchored(title, marginLeft+plotW/2, marginTop/2, 0.5, 0.5)

	path := outputPath
	if path == "" {
		path = defaultFile
	} else if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create plot directory: %w", err)
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return "", fmt.Errorf("save plot: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve plot path: %w", err)
	}
	return abs, nil
}

// displayName shortens long term names so labels stay on one line.
func displayName(name string) string {
	if len(name) > maxNameLen {
		return name[:truncateAt] + "..."
	}
	return name
}

// significance is -log10(p), clamped to zero when p is zero so a
// perfect p-value cannot blow up the axis.
func significance(p float64) float64 {
	if p > 0 {
		return -math.Log10(p)
	}
	return 0
}

// ticks returns rounded axis positions from zero up to max.
func ticks(max float64) []float64 {
	if max <= 0 {
		return []float64{0}
	}
	rough := max / 6
	mag := math.Pow(10, math.Floor(math.Log10(rough)))
	step := mag
	switch {
	case rough/mag >= 5:
		step = 5 * mag
	case rough/mag >= 2:
		step = 2 * mag
	}

	var out []float64
	for v := 0.0; v <= max*(1+1e-9); v += step {
		out = append(out, v)
	}
	return out
}

func formatTick(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" {
		return "0"
	}
	return s
}
