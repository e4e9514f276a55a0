package history

import "github.com/rusenback/dockerdash/internal/model"

// Capacity is the number of samples retained per resource window
// (one minute at the default 1s stats interval).
const Capacity = 60

// Window is a bounded, time ordered series of samples for one resource.
// The zero value is an empty window.
type Window struct {
	points []model.DerivedMetric
}

// push appends m, evicting the oldest sample when the window is full.
// Samples not newer than the last one are rejected.
func (w *Window) push(m model.DerivedMetric) bool {
	if n := len(w.points); n > 0 && m.Timestamp <= w.points[n-1].Timestamp {
		return false
	}

	if len(w.points) >= Capacity {
		copy(w.points, w.points[1:])
		w.points[len(w.points)-1] = m
		return true
	}

	w.points = append(w.points, m)
	return true
}

// Len returns the number of samples in the window.
func (w Window) Len() int {
	return len(w.points)
}

// Points returns the samples oldest first. The slice must not be modified.
func (w Window) Points() []model.DerivedMetric {
	return w.points
}

// Values returns the sample values oldest first.
func (w Window) Values() []float64 {
	values := make([]float64, len(w.points))
	for i, p := range w.points {
		values[i] = p.Value
	}
	return values
}

// Last returns the newest sample.
func (w Window) Last() (model.DerivedMetric, bool) {
	if len(w.points) == 0 {
		return model.DerivedMetric{}, false
	}
	return w.points[len(w.points)-1], true
}

// clone returns a deep copy.
func (w Window) clone() Window {
	if len(w.points) == 0 {
		return Window{}
	}
	points := make([]model.DerivedMetric, len(w.points))
	copy(points, w.points)
	return Window{points: points}
}

// Set holds the three independent resource windows of one container.
type Set struct {
	CPU    Window
	Memory Window
	GPU    Window
}

// Window returns the window for resource r.
func (s Set) Window(r model.Resource) Window {
	switch r {
	case model.Memory:
		return s.Memory
	case model.GPU:
		return s.GPU
	default:
		return s.CPU
	}
}

func (s *Set) window(r model.Resource) *Window {
	switch r {
	case model.CPU:
		return &s.CPU
	case model.Memory:
		return &s.Memory
	case model.GPU:
		return &s.GPU
	default:
		return nil
	}
}

func (s *Set) clone() Set {
	return Set{
		CPU:    s.CPU.clone(),
		Memory: s.Memory.clone(),
		GPU:    s.GPU.clone(),
	}
}
