// Package snapshot assembles the per-frame view of containers and their
// history that the renderer draws.
package snapshot

import (
	"github.com/rusenback/dockerdash/internal/history"
	"github.com/rusenback/dockerdash/internal/model"
	"github.com/rusenback/dockerdash/internal/poller"
)

// Snapshot is an immutable, consistent view for one frame.
type Snapshot struct {
	Containers []model.Container
	History    map[string]history.Set
}

// Running returns the number of running containers.
func (s Snapshot) Running() int {
	n := 0
	for _, c := range s.Containers {
		if c.Running() {
			n++
		}
	}
	return n
}

// Builder owns the current container list and turns it plus the history
// store into snapshots. It is used from the render loop only.
type Builder struct {
	lists      *poller.Slot[[]model.Container]
	store      *history.Store
	containers []model.Container
}

// NewBuilder creates a builder reading list updates from lists.
func NewBuilder(lists *poller.Slot[[]model.Container], store *history.Store) *Builder {
	return &Builder{lists: lists, store: store}
}

// Seed installs an initial sorted list, e.g. the one fetched at startup.
func (b *Builder) Seed(containers []model.Container) {
	b.replace(containers)
}

// Build picks up a pending list update, if any, and returns a snapshot of the
// current list with copies of its history.
func (b *Builder) Build() Snapshot {
	if list, ok := b.lists.TryReceive(); ok {
		b.replace(list)
	}

	containers := make([]model.Container, len(b.containers))
	copy(containers, b.containers)

	return Snapshot{
		Containers: containers,
		History:    b.store.Copy(poller.IDs(containers)),
	}
}

func (b *Builder) replace(containers []model.Container) {
	b.containers = containers
	b.store.Reconcile(poller.IDs(containers))
}
