package model

import "time"

// StateRunning is the engine state string for a running container.
const StateRunning = "running"

// Health check statuses reported by the engine.
const (
	HealthHealthy   = "healthy"
	HealthUnhealthy = "unhealthy"
)

// Container edustaa Docker containeria
type Container struct {
	ID      string
	Names   []string
	Image   string
	Command string
	Created int64 // unix seconds
	State   string
	Status  string
	Health  *Health
	Ports   []Port
}

// Health is the most recent health check result of a container.
type Health struct {
	Status string
	Log    []string // newest last
}

// Port edustaa container porttia
type Port struct {
	IP       string // empty when not bound to a specific address
	Private  int
	Public   int // 0 when not published
	Protocol string
}

// Running reports whether the container is in the running state.
func (c Container) Running() bool {
	return c.State == StateRunning
}

// FirstName returns the first display name, or "" when the container has none.
func (c Container) FirstName() string {
	if len(c.Names) == 0 {
		return ""
	}
	return c.Names[0]
}

// ShortID returns the 12 character id prefix the docker CLI shows.
func (c Container) ShortID() string {
	if len(c.ID) > 12 {
		return c.ID[:12]
	}
	return c.ID
}

// CreatedAt returns the creation time.
func (c Container) CreatedAt() time.Time {
	return time.Unix(c.Created, 0)
}

// LastHealthOutput returns the output of the newest health check, if any.
func (c Container) LastHealthOutput() string {
	if c.Health == nil || len(c.Health.Log) == 0 {
		return ""
	}
	return c.Health.Log[len(c.Health.Log)-1]
}
