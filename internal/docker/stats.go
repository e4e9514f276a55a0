package docker

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/docker/docker/api/types"
	"github.com/rusenback/dockerdash/internal/model"
)

// statsPayload is the engine stats document plus the optional GPU section
// some runtimes add.
type statsPayload struct {
	types.StatsJSON
	GPUStats *gpuStats `json:"gpu_stats,omitempty"`
}

type gpuStats struct {
	Devices []gpuDevice `json:"devices"`
}

type gpuDevice struct {
	Utilization float64 `json:"utilization"`
	MemoryUsed  uint64  `json:"memory_used"`
	MemoryTotal uint64  `json:"memory_total"`
}

// Stats hakee containerin resurssitiedot
func (c *Client) Stats(ctx context.Context, id string) (model.StatsSample, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.cli.ContainerStatsOneShot(ctx, id)
	if err != nil {
		return model.StatsSample{}, fmt.Errorf("stats %s: %w", id, err)
	}
	defer resp.Body.Close()

	sample, err := decodeStats(resp.Body, time.Now)
	if err != nil {
		return model.StatsSample{}, fmt.Errorf("decode stats %s: %w", id, err)
	}
	sample.ContainerID = id
	return sample, nil
}

// decodeStats parses a single stats document. now supplies the collection
// time when the engine leaves "read" empty.
func decodeStats(r io.Reader, now func() time.Time) (model.StatsSample, error) {
	var payload statsPayload
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return model.StatsSample{}, err
	}
	return convertStats(payload, now), nil
}

func convertStats(p statsPayload, now func() time.Time) model.StatsSample {
	read := p.Read
	if read.IsZero() {
		read = now()
	}

	cpu := p.CPUStats
	online := cpu.OnlineCPUs
	if online == 0 {
		online = uint32(len(cpu.CPUUsage.PercpuUsage))
	}

	sample := model.StatsSample{
		ContainerID: p.ID,
		Read:        read,
		CPUTotal:    cpu.CPUUsage.TotalUsage,
		CPUKernel:   cpu.CPUUsage.UsageInKernelmode,
		CPUUser:     cpu.CPUUsage.UsageInUsermode,
		SystemCPU:   cpu.SystemUsage,
		OnlineCPUs:  online,
	}

	// Stopped containers report a zero limit; treat that as "no memory data".
	if p.MemoryStats.Limit > 0 {
		sample.Memory = &model.MemoryUsage{
			Usage: p.MemoryStats.Usage,
			Limit: p.MemoryStats.Limit,
		}
	}

	if p.GPUStats != nil {
		for _, d := range p.GPUStats.Devices {
			sample.GPUs = append(sample.GPUs, model.GPUDevice{
				Utilization: d.Utilization,
				MemoryUsed:  d.MemoryUsed,
				MemoryTotal: d.MemoryTotal,
			})
		}
	}

	return sample
}
