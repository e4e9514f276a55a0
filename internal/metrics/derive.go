// Package metrics turns raw container stats into percentage samples.
package metrics

import "github.com/rusenback/dockerdash/internal/model"

// Derive computes the percentage samples for cur. prev is the previous raw
// sample of the same container, nil on first observation. CPU needs prev;
// memory and GPU are gauges and are derived from cur alone.
func Derive(prev *model.StatsSample, cur model.StatsSample) []model.DerivedMetric {
	ts := model.Timestamp(cur.Read)
	var out []model.DerivedMetric

	if cpu, ok := cpuPercent(prev, cur); ok {
		out = append(out, model.DerivedMetric{Resource: model.CPU, Timestamp: ts, Value: cpu})
	}
	if mem, ok := memoryPercent(cur); ok {
		out = append(out, model.DerivedMetric{Resource: model.Memory, Timestamp: ts, Value: mem})
	}
	if gpu, ok := gpuPercent(cur); ok {
		out = append(out, model.DerivedMetric{Resource: model.GPU, Timestamp: ts, Value: gpu})
	}

	return out
}

// cpuPercent laskee CPU käytön prosentteina
func cpuPercent(prev *model.StatsSample, cur model.StatsSample) (float64, bool) {
	if prev == nil {
		return 0, false
	}

	systemDelta := float64(cur.SystemCPU) - float64(prev.SystemCPU)
	if systemDelta <= 0 {
		return 0, false
	}

	// Counter went backwards: the container restarted between samples.
	if cur.CPUTotal < prev.CPUTotal {
		return 0, false
	}
	cpuDelta := float64(cur.CPUTotal - prev.CPUTotal)

	cpus := float64(cur.OnlineCPUs)
	if cpus == 0 {
		cpus = 1
	}

	percent := (cpuDelta / systemDelta) * 100.0 * cpus
	if limit := 100.0 * cpus; percent > limit {
		percent = limit
	}
	return percent, true
}

func memoryPercent(cur model.StatsSample) (float64, bool) {
	if cur.Memory == nil || cur.Memory.Limit == 0 {
		return 0, false
	}
	return float64(cur.Memory.Usage) / float64(cur.Memory.Limit) * 100.0, true
}

// gpuPercent uses the first device only.
func gpuPercent(cur model.StatsSample) (float64, bool) {
	if len(cur.GPUs) == 0 {
		return 0, false
	}
	return cur.GPUs[0].Utilization, true
}
