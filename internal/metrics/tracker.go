package metrics

import "github.com/rusenback/dockerdash/internal/model"

// Tracker remembers the last raw sample of every container so that CPU
// counters can be turned into rates. It is not safe for concurrent use; the
// stats loop owns it.
type Tracker struct {
	last map[string]model.StatsSample
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{last: make(map[string]model.StatsSample)}
}

// Observe derives metrics for sample against the previous sample of the same
// container and then stores sample as the new previous one.
func (t *Tracker) Observe(sample model.StatsSample) []model.DerivedMetric {
	var prev *model.StatsSample
	if p, ok := t.last[sample.ContainerID]; ok {
		prev = &p
	}
	t.last[sample.ContainerID] = sample
	return Derive(prev, sample)
}

// Retain forgets the samples of containers not in ids.
func (t *Tracker) Retain(ids []string) {
	keep := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
	}
	for id := range t.last {
		if _, ok := keep[id]; !ok {
			delete(t.last, id)
		}
	}
}

// Len returns the number of containers with a stored sample.
func (t *Tracker) Len() int {
	return len(t.last)
}
