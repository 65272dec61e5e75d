// Package sysmon samples system-wide CPU and memory usage for the detailed
// run report.
package sysmon

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
	MemTotal   uint64  // bytes, 0 when unknown
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Fields stay zero on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemTotal = vmem.Total
	}
	return s
}

// String renders the snapshot as "CPU 12.5%, memory 40.0%".
func (s Stats) String() string {
	return fmt.Sprintf("CPU %.1f%%, memory %.1f%%", s.CPUPercent, s.MemPercent)
}

// FitsInMemory reports whether an allocation of n bytes fits in the
// available system memory. It answers true when total memory is unknown.
func (s Stats) FitsInMemory(n uint64) bool {
	if s.MemTotal == 0 {
		return true
	}
	free := float64(s.MemTotal) * (100 - s.MemPercent) / 100
	return float64(n) <= free
}
