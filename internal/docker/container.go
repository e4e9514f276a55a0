package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/rusenback/dockerdash/internal/model"
	"go.uber.org/zap"
)

// List palauttaa kaikki containerit (running + stopped)
func (c *Client) List(ctx context.Context) ([]model.Container, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	containers, err := c.cli.ContainerList(ctx, container.ListOptions{
		All: true, // Näytä myös pysäytetyt
	})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	result := make([]model.Container, 0, len(containers))
	for _, cont := range containers {
		mc := convertContainer(cont)
		if mc.Health != nil {
			c.fillHealthLog(ctx, &mc)
		}
		result = append(result, mc)
	}

	return result, nil
}

// fillHealthLog replaces the status-derived health with the engine's full
// health record. Failures keep the status-derived value.
func (c *Client) fillHealthLog(ctx context.Context, mc *model.Container) {
	info, err := c.cli.ContainerInspect(ctx, mc.ID)
	if err != nil {
		c.log.Debug("inspect health", zap.String("container", mc.ShortID()), zap.Error(err))
		return
	}
	if h := convertHealth(info); h != nil {
		mc.Health = h
	}
}

func convertContainer(cont types.Container) model.Container {
	names := make([]string, 0, len(cont.Names))
	for _, name := range cont.Names {
		// Poista "/" container nimen alusta
		names = append(names, strings.TrimPrefix(name, "/"))
	}

	// Muunna portit
	ports := make([]model.Port, 0, len(cont.Ports))
	for _, p := range cont.Ports {
		ports = append(ports, model.Port{
			IP:       p.IP,
			Private:  int(p.PrivatePort),
			Public:   int(p.PublicPort),
			Protocol: p.Type,
		})
	}

	return model.Container{
		ID:      cont.ID,
		Names:   names,
		Image:   cont.Image,
		Command: cont.Command,
		Created: cont.Created,
		State:   cont.State,
		Status:  cont.Status,
		Health:  healthFromStatus(cont.Status),
		Ports:   ports,
	}
}

// healthFromStatus reads the health suffix the engine appends to the status
// text, e.g. "Up 3 minutes (healthy)".
func healthFromStatus(status string) *model.Health {
	switch {
	case strings.Contains(status, "(unhealthy)"):
		return &model.Health{Status: model.HealthUnhealthy}
	case strings.Contains(status, "(healthy)"):
		return &model.Health{Status: model.HealthHealthy}
	case strings.Contains(status, "(health: "):
		start := strings.Index(status, "(health: ") + len("(health: ")
		end := strings.Index(status[start:], ")")
		if end < 0 {
			return &model.Health{Status: strings.TrimSpace(status[start:])}
		}
		return &model.Health{Status: status[start : start+end]}
	default:
		return nil
	}
}

func convertHealth(info types.ContainerJSON) *model.Health {
	if info.ContainerJSONBase == nil || info.State == nil || info.State.Health == nil {
		return nil
	}

	h := info.State.Health
	logs := make([]string, 0, len(h.Log))
	for _, entry := range h.Log {
		if entry == nil {
			continue
		}
		logs = append(logs, strings.TrimSpace(entry.Output))
	}

	return &model.Health{Status: h.Status, Log: logs}
}
