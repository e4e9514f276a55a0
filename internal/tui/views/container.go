// Package views holds the container formatting shared by the dashboard and
// the plain list output.
package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/rusenback/dockerdash/internal/model"
)

var (
	ColorHealthy = lipgloss.Color("#A6E3A1")
	ColorFailing = lipgloss.Color("#F38BA8")
	ColorUnknown = lipgloss.Color("#F9E2AF")

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6ADC8"))
	nameStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CDD6F4"))
	errorStyle = lipgloss.NewStyle().Foreground(ColorFailing)
)

// StatusColor returns the status dot color: green for healthy or running
// without a health check, red for unhealthy or not running, yellow for any
// other health status.
func StatusColor(c model.Container) lipgloss.Color {
	if !c.Running() {
		return ColorFailing
	}
	if c.Health == nil {
		return ColorHealthy
	}
	switch c.Health.Status {
	case model.HealthHealthy:
		return ColorHealthy
	case model.HealthUnhealthy:
		return ColorFailing
	default:
		return ColorUnknown
	}
}

// StatusDot renders the colored status dot.
func StatusDot(c model.Container) string {
	return lipgloss.NewStyle().Foreground(StatusColor(c)).Render("●")
}

// Title returns "name, alias (shortid)".
func Title(c model.Container) string {
	return fmt.Sprintf("%s (%s)", strings.Join(c.Names, ", "), c.ShortID())
}

// FormatPorts formats published ports as "[ip:][public:]private/proto",
// comma separated, or "None".
func FormatPorts(ports []model.Port) string {
	if len(ports) == 0 {
		return "None"
	}

	formatted := make([]string, 0, len(ports))
	for _, p := range ports {
		parts := make([]string, 0, 3)
		if p.IP != "" {
			parts = append(parts, p.IP)
		}
		if p.Public != 0 {
			parts = append(parts, strconv.Itoa(p.Public))
		}
		parts = append(parts, strconv.Itoa(p.Private))

		formatted = append(formatted, strings.Join(parts, ":")+"/"+strings.ToLower(p.Protocol))
	}
	return strings.Join(formatted, ", ")
}

// FormatAge returns how long ago the container was created, e.g. "3 hours ago".
func FormatAge(c model.Container, now time.Time) string {
	return humanize.RelTime(c.CreatedAt(), now, "ago", "from now")
}

// Details returns the card body lines: image, command, age, status, ports.
func Details(c model.Container, now time.Time) []string {
	return []string{
		c.Image,
		c.Command,
		FormatAge(c, now),
		c.Status,
		"Ports: " + FormatPorts(c.Ports),
	}
}

// FailedHealthCheck returns the last health check output of a running,
// unhealthy container.
func FailedHealthCheck(c model.Container) (string, bool) {
	if !c.Running() || c.Health == nil || c.Health.Status != model.HealthUnhealthy {
		return "", false
	}
	out := strings.Join(strings.Fields(c.LastHealthOutput()), " ")
	return out, out != ""
}

// RenderContainer renders one container as a plain text block.
func RenderContainer(c model.Container, now time.Time) string {
	var s strings.Builder

	s.WriteString(StatusDot(c) + " " + nameStyle.Render(Title(c)) + "\n")
	labels := []string{"Image:  ", "Cmd:    ", "Created:", "Status: ", ""}
	for i, line := range Details(c, now) {
		if labels[i] != "" {
			s.WriteString("  " + labelStyle.Render(labels[i]) + " " + line + "\n")
		} else {
			s.WriteString("  " + line + "\n")
		}
	}

	if out, ok := FailedHealthCheck(c); ok {
		s.WriteString("  Last health check failed: " + errorStyle.Render(out) + "\n")
	}

	return s.String()
}

// RenderList renders running containers, then stopped ones.
func RenderList(containers []model.Container, now time.Time) string {
	var running, stopped []model.Container
	for _, c := range containers {
		if c.Running() {
			running = append(running, c)
		} else {
			stopped = append(stopped, c)
		}
	}

	var s strings.Builder
	if len(running) == 0 {
		s.WriteString("No running containers\n")
	}
	for _, c := range running {
		s.WriteString("\n" + RenderContainer(c, now))
	}

	if len(stopped) == 0 {
		s.WriteString("\nNo stopped containers\n")
	}
	for _, c := range stopped {
		s.WriteString("\n" + RenderContainer(c, now))
	}

	return s.String()
}
