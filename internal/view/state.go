// Package view holds the dashboard's input-driven display state.
package view

import "github.com/rusenback/dockerdash/internal/model"

// Event is a discrete input event.
type Event int

const (
	EventQuit Event = iota
	EventToggleGraphs
	EventLeft
	EventRight
)

func (e Event) String() string {
	switch e {
	case EventQuit:
		return "quit"
	case EventToggleGraphs:
		return "toggle-graphs"
	case EventLeft:
		return "view-left"
	case EventRight:
		return "view-right"
	default:
		return "unknown"
	}
}

// resources is the cycle order of the resource views. Right moves forward,
// left moves backward, so the two are inverses.
var resources = []model.Resource{model.CPU, model.Memory, model.GPU}

// adjacency maps each resource view to its {left, right} neighbours.
var adjacency = buildAdjacency(resources)

type neighbours struct {
	left, right model.Resource
}

func buildAdjacency(order []model.Resource) map[model.Resource]neighbours {
	n := len(order)
	adj := make(map[model.Resource]neighbours, n)
	for i, r := range order {
		adj[r] = neighbours{
			left:  order[(i+n-1)%n],
			right: order[(i+1)%n],
		}
	}
	return adj
}

// Left returns the view left of r.
func Left(r model.Resource) model.Resource {
	if nb, ok := adjacency[r]; ok {
		return nb.left
	}
	return model.CPU
}

// Right returns the view right of r.
func Right(r model.Resource) model.Resource {
	if nb, ok := adjacency[r]; ok {
		return nb.right
	}
	return model.CPU
}

// Resources returns the views in cycle order.
func Resources() []model.Resource {
	out := make([]model.Resource, len(resources))
	copy(out, resources)
	return out
}

// State is the current view selection and flags.
type State struct {
	Resource   model.Resource
	ShowGraphs bool
	ShouldQuit bool
}

// Initial returns the start state: CPU view, graphs shown.
func Initial() State {
	return State{Resource: model.CPU, ShowGraphs: true}
}

// Apply returns the state after ev.
func (s State) Apply(ev Event) State {
	switch ev {
	case EventQuit:
		s.ShouldQuit = true
	case EventToggleGraphs:
		s.ShowGraphs = !s.ShowGraphs
	case EventLeft:
		s.Resource = Left(s.Resource)
	case EventRight:
		s.Resource = Right(s.Resource)
	}
	return s
}
