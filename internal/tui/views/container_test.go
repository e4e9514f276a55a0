package views

import (
	"strings"
	"testing"
	"time"

	"github.com/rusenback/dockerdash/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatPorts(t *testing.T) {
	tests := []struct {
		name  string
		ports []model.Port
		want  string
	}{
		{"none", nil, "None"},
		{"private only", []model.Port{{Private: 6379, Protocol: "tcp"}}, "6379/tcp"},
		{"published", []model.Port{{IP: "0.0.0.0", Public: 8080, Private: 80, Protocol: "TCP"}}, "0.0.0.0:8080:80/tcp"},
		{"public without ip", []model.Port{{Public: 53, Private: 53, Protocol: "udp"}}, "53:53/udp"},
		{"several", []model.Port{
			{IP: "::", Public: 443, Private: 443, Protocol: "tcp"},
			{Private: 9000, Protocol: "tcp"},
		}, ":::443:443/tcp, 9000/tcp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPorts(tt.ports))
		})
	}
}

func TestStatusColor(t *testing.T) {
	running := model.Container{State: model.StateRunning}
	assert.Equal(t, ColorHealthy, StatusColor(running))

	running.Health = &model.Health{Status: model.HealthHealthy}
	assert.Equal(t, ColorHealthy, StatusColor(running))

	running.Health = &model.Health{Status: model.HealthUnhealthy}
	assert.Equal(t, ColorFailing, StatusColor(running))

	running.Health = &model.Health{Status: "starting"}
	assert.Equal(t, ColorUnknown, StatusColor(running))

	stopped := model.Container{State: "exited", Health: &model.Health{Status: model.HealthHealthy}}
	assert.Equal(t, ColorFailing, StatusColor(stopped))
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	c := model.Container{Created: now.Add(-3 * 24 * time.Hour).Unix()}
	assert.Equal(t, "3 days ago", FormatAge(c, now))
}

func TestFailedHealthCheck(t *testing.T) {
	c := model.Container{
		State:  model.StateRunning,
		Health: &model.Health{Status: model.HealthUnhealthy, Log: []string{"first", "  curl: (7)\nrefused  "}},
	}
	out, ok := FailedHealthCheck(c)
	assert.True(t, ok)
	assert.Equal(t, "curl: (7) refused", out)

	c.Health.Status = model.HealthHealthy
	_, ok = FailedHealthCheck(c)
	assert.False(t, ok)

	c.Health.Status = model.HealthUnhealthy
	c.State = "exited"
	_, ok = FailedHealthCheck(c)
	assert.False(t, ok)
}

func TestRenderList(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	containers := []model.Container{
		{ID: "aaaaaaaaaaaaaaaa", Names: []string{"api"}, State: model.StateRunning, Image: "api:1", Created: now.Unix()},
		{ID: "bbbbbbbbbbbbbbbb", Names: []string{"batch"}, State: "exited", Image: "batch:1", Created: now.Unix()},
	}

	out := RenderList(containers, now)
	assert.Less(t, strings.Index(out, "api (aaaaaaaaaaaa)"), strings.Index(out, "batch (bbbbbbbbbbbb)"))
	assert.Contains(t, out, "Ports: None")
	assert.NotContains(t, out, "No running containers")

	out = RenderList(containers[1:], now)
	assert.Contains(t, out, "No running containers")

	out = RenderList(nil, now)
	assert.Contains(t, out, "No running containers")
	assert.Contains(t, out, "No stopped containers")
}
