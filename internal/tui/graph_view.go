package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rusenback/dockerdash/internal/history"
	"github.com/rusenback/dockerdash/internal/model"
)

const (
	// chartHeight is the number of plot rows above the zero line.
	chartHeight = 6
	// axisWidth is the y-axis label plus the axis line.
	axisWidth = 6
)

var (
	graphTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B4BEFE"))
	graphAxisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
	cpuGraphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
	memGraphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
	gpuGraphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
)

func graphStyle(r model.Resource) lipgloss.Style {
	switch r {
	case model.Memory:
		return memGraphStyle
	case model.GPU:
		return gpuGraphStyle
	default:
		return cpuGraphStyle
	}
}

// chartTitle names the resource and shows its latest value.
func chartTitle(w history.Window, r model.Resource) string {
	last, ok := w.Last()
	if !ok {
		return fmt.Sprintf("%s Usage: no data", r)
	}
	return fmt.Sprintf("%s Usage: %.1f%%", r, last.Value)
}

// renderChart draws one resource window as a filled line chart. The y-axis is
// fixed to 0..100 and the x-axis spans the window's first to last timestamp.
func renderChart(w history.Window, r model.Resource, width int) string {
	var s strings.Builder
	s.WriteString(graphTitleStyle.Render(truncate(chartTitle(w, r), width)) + "\n")

	plotWidth := width - axisWidth
	if plotWidth < 1 {
		plotWidth = 1
	}
	cols := plotColumns(w.Points(), plotWidth)
	color := graphStyle(r)

	for row := chartHeight; row >= 0; row-- {
		var line strings.Builder

		switch row {
		case chartHeight:
			line.WriteString(graphAxisStyle.Render("100% "))
		case chartHeight / 2:
			line.WriteString(graphAxisStyle.Render(" 50% "))
		case 0:
			line.WriteString(graphAxisStyle.Render("  0% "))
		default:
			line.WriteString("     ")
		}
		line.WriteString(graphAxisStyle.Render("│"))

		threshold := float64(row) / float64(chartHeight) * 100
		isGridLine := row == chartHeight || row == chartHeight/2 || row == 0

		for _, v := range cols {
			switch {
			case !math.IsNaN(v) && v >= threshold && (row > 0 || v > 0):
				line.WriteString(color.Render("█"))
			case isGridLine:
				line.WriteString(graphAxisStyle.Render("·"))
			default:
				line.WriteString(" ")
			}
		}

		s.WriteString(line.String() + "\n")
	}

	s.WriteString(strings.Repeat(" ", axisWidth-1) + graphAxisStyle.Render("└"+strings.Repeat("─", plotWidth)))
	return s.String()
}

// plotColumns maps points onto width columns by timestamp. Each column holds
// the newest value that falls into it; columns between points repeat the
// previous value and columns before the first point are NaN.
func plotColumns(points []model.DerivedMetric, width int) []float64 {
	cols := make([]float64, width)
	for i := range cols {
		cols[i] = math.NaN()
	}
	if len(points) == 0 || width == 0 {
		return cols
	}

	first := points[0].Timestamp
	span := points[len(points)-1].Timestamp - first

	for _, p := range points {
		x := width - 1
		if span > 0 {
			x = int(math.Round((p.Timestamp - first) / span * float64(width-1)))
		}
		cols[x] = clampPercent(p.Value)
	}

	prev := math.NaN()
	for i, v := range cols {
		if math.IsNaN(v) {
			cols[i] = prev
			continue
		}
		prev = v
	}

	return cols
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
