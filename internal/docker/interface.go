package docker

import (
	"context"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/container"
	"github.com/rusenback/dockerdash/internal/model"
)

// Inspector interface mahdollistaa mockauksen testeissä
type Inspector interface {
	List(ctx context.Context) ([]model.Container, error)
	Stats(ctx context.Context, id string) (model.StatsSample, error)
	Close() error
}

// apiClient is the part of the Docker SDK client the inspector uses.
type apiClient interface {
	Ping(ctx context.Context) (types.Ping, error)
	ContainerList(ctx context.Context, options container.ListOptions) ([]types.Container, error)
	ContainerInspect(ctx context.Context, containerID string) (types.ContainerJSON, error)
	ContainerStatsOneShot(ctx context.Context, containerID string) (types.ContainerStats, error)
	Close() error
}

// Varmista että Client toteuttaa interfacen
var _ Inspector = (*Client)(nil)
