package main

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	"github.com/spf13/cobra"
)

// systemInfo is a snapshot of the machine the solvers run on. Probes that
// fail leave their fields empty.
type systemInfo struct {
	Hostname        string `json:"hostname,omitempty"`
	Platform        string `json:"platform,omitempty"`
	PlatformVersion string `json:"platform_version,omitempty"`
	KernelVersion   string `json:"kernel_version,omitempty"`
	CPUModel        string `json:"cpu_model,omitempty"`
	LogicalCPUs     int    `json:"logical_cpus"`
	MemoryTotal     uint64 `json:"memory_total_bytes,omitempty"`
	MemoryAvailable uint64 `json:"memory_available_bytes,omitempty"`
	MaxTableCells   int64  `json:"max_table_cells,omitempty"`
	GoVersion       string `json:"go_version"`
}

func collectSystemInfo() systemInfo {
	info := systemInfo{LogicalCPUs: runtime.NumCPU(), GoVersion: runtime.Version()}

	if hostStat, err := host.Info(); err == nil {
		info.Hostname = hostStat.Hostname
		info.Platform = hostStat.Platform
		info.PlatformVersion = hostStat.PlatformVersion
		info.KernelVersion = hostStat.KernelVersion
	}
	if cpuStat, err := cpu.Info(); err == nil && len(cpuStat) > 0 {
		info.CPUModel = cpuStat[0].ModelName
	}
	if vmStat, err := mem.VirtualMemory(); err == nil {
		info.MemoryTotal = vmStat.Total
		info.MemoryAvailable = vmStat.Available
		info.MaxTableCells = int64(vmStat.Available / tableCellBytes / 2)
	}

	return info
}

func newSysinfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sysinfo",
		Short: "Show host, CPU and memory information",
		Long: `Sysinfo prints the host, CPU and memory figures the solver sizes its tables by.

max_table_cells is the DP/FPTAS table cap the memory preflight would apply.`,
		Args: exactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			info := collectSystemInfo()
			if a.resolvedFormat() == formatJSON {
				return writeJSON(a.stdout, info)
			}

			_, err := fmt.Fprintf(a.stdout,
				"host      %s\nplatform  %s %s (kernel %s)\ncpu       %s x%d\nmemory    %d MiB total, %d MiB available\ntables    %d cells max\ngo        %s\n",
				info.Hostname, info.Platform, info.PlatformVersion, info.KernelVersion,
				info.CPUModel, info.LogicalCPUs,
				info.MemoryTotal>>20, info.MemoryAvailable>>20,
				info.MaxTableCells, info.GoVersion)

			return err
		},
	}
}
