package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/footprint-tools/scopes/internal/ui/style"
)

const progressWidth = 30

// Progress is a bar drawn into a History, followed by one "... label" line
// per item being worked on.
type Progress struct {
	h     *History
	bar   progress.Model
	line  *Line
	items []*Line
}

// NewProgress draws a bar at the initial fraction (0-1).
func NewProgress(h *History, initial float64) *Progress {
	fill := style.GetColors().Success
	if fill == "" {
		fill = "10"
	}

	p := &Progress{
		h: h,
		bar: progress.New(
			progress.WithWidth(progressWidth),
			progress.WithoutPercentage(),
			progress.WithFillCharacters('=', '-'),
			progress.WithSolidFill(fill),
			progress.WithColorProfile(style.Profile()),
		),
	}
	p.line = h.Log("%s", p.render(initial))
	return p
}

// Set redraws the bar at fraction and replaces the item lines with labels.
// The bar is clamped to 0-1; the percentage shows the raw value.
func (p *Progress) Set(fraction float64, labels ...string) {
	p.line.Delete()
	for _, item := range p.items {
		item.Delete()
	}

	p.line = p.h.Log("%s", p.render(fraction))
	p.items = p.items[:0]
	for _, label := range labels {
		p.items = append(p.items, p.h.Log("... %s", label))
	}
}

func (p *Progress) render(fraction float64) string {
	bounded := max(0, min(fraction, 1))
	return fmt.Sprintf("|%s| %d%%", p.bar.ViewAs(bounded), int(math.Floor(100*fraction)))
}
