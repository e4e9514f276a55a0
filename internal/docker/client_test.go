package docker

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/rusenback/dockerdash/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	pingErr    error
	containers []types.Container
	listErr    error
	inspect    map[string]types.ContainerJSON
	inspectErr error
	stats      map[string]string
	statsErr   error
	closed     bool
}

func (f *fakeAPI) Ping(ctx context.Context) (types.Ping, error) {
	return types.Ping{}, f.pingErr
}

func (f *fakeAPI) ContainerList(ctx context.Context, options container.ListOptions) ([]types.Container, error) {
	if !options.All {
		return nil, errors.New("expected All to be set")
	}
	return f.containers, f.listErr
}

func (f *fakeAPI) ContainerInspect(ctx context.Context, id string) (types.ContainerJSON, error) {
	if f.inspectErr != nil {
		return types.ContainerJSON{}, f.inspectErr
	}
	return f.inspect[id], nil
}

func (f *fakeAPI) ContainerStatsOneShot(ctx context.Context, id string) (types.ContainerStats, error) {
	if f.statsErr != nil {
		return types.ContainerStats{}, f.statsErr
	}
	return types.ContainerStats{
		Body:   io.NopCloser(strings.NewReader(f.stats[id])),
		OSType: "linux",
	}, nil
}

func (f *fakeAPI) Close() error {
	f.closed = true
	return nil
}

func TestClientPing(t *testing.T) {
	api := &fakeAPI{pingErr: errors.New("connection refused")}
	c := newClient(api, time.Second, nil)

	err := c.Ping(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	require.NoError(t, c.Close())
	assert.True(t, api.closed)
}

func TestClientList(t *testing.T) {
	api := &fakeAPI{
		containers: []types.Container{
			{
				ID:      "aaaaaaaaaaaaaaaaaaaa",
				Names:   []string{"/web", "/web-alias"},
				Image:   "nginx:latest",
				Command: "nginx -g 'daemon off;'",
				Created: 1700000000,
				State:   "running",
				Status:  "Up 5 minutes (unhealthy)",
				Ports: []types.Port{
					{IP: "0.0.0.0", PrivatePort: 80, PublicPort: 8080, Type: "tcp"},
				},
			},
			{
				ID:     "bbbbbbbbbbbbbbbbbbbb",
				Names:  []string{"/db"},
				State:  "exited",
				Status: "Exited (0) 2 hours ago",
			},
		},
		inspect: map[string]types.ContainerJSON{
			"aaaaaaaaaaaaaaaaaaaa": {
				ContainerJSONBase: &types.ContainerJSONBase{
					State: &types.ContainerState{
						Health: &types.Health{
							Status: "unhealthy",
							Log: []*types.HealthcheckResult{
								{Output: "ok\n"},
								{Output: "curl: (7) Failed to connect\n"},
							},
						},
					},
				},
			},
		},
	}
	c := newClient(api, time.Second, nil)

	list, err := c.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	web := list[0]
	assert.Equal(t, []string{"web", "web-alias"}, web.Names)
	assert.Equal(t, "nginx:latest", web.Image)
	assert.True(t, web.Running())
	require.NotNil(t, web.Health)
	assert.Equal(t, model.HealthUnhealthy, web.Health.Status)
	assert.Equal(t, "curl: (7) Failed to connect", web.LastHealthOutput())
	assert.Equal(t, []model.Port{{IP: "0.0.0.0", Private: 80, Public: 8080, Protocol: "tcp"}}, web.Ports)

	db := list[1]
	assert.False(t, db.Running())
	assert.Nil(t, db.Health)
	assert.Empty(t, db.Ports)
}

func TestClientListInspectFailureKeepsStatusHealth(t *testing.T) {
	api := &fakeAPI{
		containers: []types.Container{
			{ID: "a", Names: []string{"/api"}, State: "running", Status: "Up 1 second (health: starting)"},
		},
		inspectErr: errors.New("no such container"),
	}
	c := newClient(api, time.Second, nil)

	list, err := c.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list[0].Health)
	assert.Equal(t, "starting", list[0].Health.Status)
}

func TestClientListError(t *testing.T) {
	c := newClient(&fakeAPI{listErr: errors.New("boom")}, time.Second, nil)

	_, err := c.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list containers")
}

func TestHealthFromStatus(t *testing.T) {
	tests := []struct {
		status string
		expect string
	}{
		{"Up 3 minutes (healthy)", model.HealthHealthy},
		{"Up 3 minutes (unhealthy)", model.HealthUnhealthy},
		{"Up 2 seconds (health: starting)", "starting"},
		{"Up 3 minutes", ""},
		{"Exited (1) 3 minutes ago", ""},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			h := healthFromStatus(tt.status)
			if tt.expect == "" {
				assert.Nil(t, h)
				return
			}
			require.NotNil(t, h)
			assert.Equal(t, tt.expect, h.Status)
		})
	}
}

const statsJSON = `{
	"read": "2024-01-15T10:30:45.123456789Z",
	"id": "abc",
	"cpu_stats": {
		"cpu_usage": {"total_usage": 150, "usage_in_kernelmode": 50, "usage_in_usermode": 100, "percpu_usage": [75, 75]},
		"system_cpu_usage": 1200,
		"online_cpus": 4
	},
	"precpu_stats": {
		"cpu_usage": {"total_usage": 100},
		"system_cpu_usage": 1000
	},
	"memory_stats": {"usage": 500000000, "limit": 1000000000},
	"gpu_stats": {"devices": [{"utilization": 42.5, "memory_used": 1024, "memory_total": 4096}]}
}`

func TestClientStats(t *testing.T) {
	c := newClient(&fakeAPI{stats: map[string]string{"abc": statsJSON}}, time.Second, nil)

	s, err := c.Stats(context.Background(), "abc")
	require.NoError(t, err)

	assert.Equal(t, "abc", s.ContainerID)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 45, 123456789, time.UTC), s.Read.UTC())
	assert.Equal(t, uint64(150), s.CPUTotal)
	assert.Equal(t, uint64(50), s.CPUKernel)
	assert.Equal(t, uint64(100), s.CPUUser)
	assert.Equal(t, uint64(1200), s.SystemCPU)
	assert.Equal(t, uint32(4), s.OnlineCPUs)
	require.NotNil(t, s.Memory)
	assert.Equal(t, uint64(500000000), s.Memory.Usage)
	assert.Equal(t, uint64(1000000000), s.Memory.Limit)
	require.Len(t, s.GPUs, 1)
	assert.Equal(t, 42.5, s.GPUs[0].Utilization)
}

func TestClientStatsErrors(t *testing.T) {
	c := newClient(&fakeAPI{statsErr: errors.New("gone")}, time.Second, nil)
	_, err := c.Stats(context.Background(), "abc")
	assert.Error(t, err)

	c = newClient(&fakeAPI{stats: map[string]string{"abc": "{not json"}}, time.Second, nil)
	_, err = c.Stats(context.Background(), "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode stats")
}

func TestDecodeStatsDefaults(t *testing.T) {
	fixed := time.Unix(1700000000, 0)
	doc := `{"cpu_stats": {"cpu_usage": {"total_usage": 10, "percpu_usage": [5, 5, 0]}, "system_cpu_usage": 20}, "memory_stats": {}}`

	s, err := decodeStats(strings.NewReader(doc), func() time.Time { return fixed })
	require.NoError(t, err)

	assert.Equal(t, fixed, s.Read, "missing read time falls back to the local clock")
	assert.Equal(t, uint32(3), s.OnlineCPUs, "online cpus falls back to the per-cpu count")
	assert.Nil(t, s.Memory)
	assert.Empty(t, s.GPUs)
}
