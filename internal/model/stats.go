package model

import "time"

// StatsSample is a raw stats snapshot of one container. CPU fields are
// cumulative counters and need a previous sample to become a rate.
type StatsSample struct {
	ContainerID string
	Read        time.Time

	// CPU, nanoseconds
	CPUTotal   uint64
	CPUKernel  uint64
	CPUUser    uint64
	SystemCPU  uint64
	OnlineCPUs uint32

	// Memory gauges, nil when the engine did not report them
	Memory *MemoryUsage

	GPUs []GPUDevice
}

// MemoryUsage holds the memory gauges of a sample.
type MemoryUsage struct {
	Usage uint64
	Limit uint64
}

// GPUDevice is the reported state of a single GPU.
type GPUDevice struct {
	Utilization float64 // percent
	MemoryUsed  uint64
	MemoryTotal uint64
}

// Resource identifies one of the tracked resource kinds.
type Resource int

const (
	CPU Resource = iota
	Memory
	GPU
)

func (r Resource) String() string {
	switch r {
	case CPU:
		return "CPU"
	case Memory:
		return "Memory"
	case GPU:
		return "GPU"
	default:
		return "unknown"
	}
}

// DerivedMetric is a single percentage sample for one resource.
type DerivedMetric struct {
	Resource  Resource
	Timestamp float64 // unix seconds
	Value     float64 // percent
}

// Timestamp converts t to the float seconds used by DerivedMetric.
func Timestamp(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
