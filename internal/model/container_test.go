package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainerShortID(t *testing.T) {
	c := Container{ID: "0123456789abcdef0123"}
	assert.Equal(t, "0123456789ab", c.ShortID())

	c.ID = "abc"
	assert.Equal(t, "abc", c.ShortID())
}

func TestContainerFirstName(t *testing.T) {
	assert.Equal(t, "", Container{}.FirstName())
	assert.Equal(t, "web", Container{Names: []string{"web", "alias"}}.FirstName())
}

func TestContainerLastHealthOutput(t *testing.T) {
	c := Container{}
	assert.Equal(t, "", c.LastHealthOutput())

	c.Health = &Health{Status: HealthUnhealthy, Log: []string{"first", "curl: (7) refused"}}
	assert.Equal(t, "curl: (7) refused", c.LastHealthOutput())
}

func TestResourceString(t *testing.T) {
	tests := []struct {
		r      Resource
		expect string
	}{
		{CPU, "CPU"},
		{Memory, "Memory"},
		{GPU, "GPU"},
		{Resource(42), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expect, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.r.String())
		})
	}
}
