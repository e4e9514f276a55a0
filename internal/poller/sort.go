package poller

import (
	"sort"

	"github.com/rusenback/dockerdash/internal/model"
)

// Sort orders containers in place: running ones first, then by first display
// name. Containers without a name sort before named ones in their group.
func Sort(containers []model.Container) {
	sort.SliceStable(containers, func(i, j int) bool {
		a, b := containers[i], containers[j]
		if a.Running() != b.Running() {
			return a.Running()
		}
		return a.FirstName() < b.FirstName()
	})
}

// IDs returns the ids of containers in order.
func IDs(containers []model.Container) []string {
	ids := make([]string, len(containers))
	for i, c := range containers {
		ids[i] = c.ID
	}
	return ids
}
