package main

import (
	"log/slog"

	"github.com/shirou/gopsutil/mem"

	"github.com/katalvlaran/knapsack/solver"
)

// tableCellBytes is the size of one DP/FPTAS table cell.
const tableCellBytes = 8

// availableMemory reports the available system memory in bytes. It is a
// variable so tests can pin it.
var availableMemory = func() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}

	return vm.Available, nil
}

// capTables lowers the DP and FPTAS table caps to half of the available
// memory when that is smaller than the configured caps. A failed probe
// leaves the caps untouched.
func capTables(opts *solver.Options, logger *slog.Logger) {
	avail, err := availableMemory()
	if err != nil || avail == 0 {
		logger.Debug("memory preflight skipped", "error", err)
		return
	}
	limit := int64(avail / tableCellBytes / 2)
	if limit <= 0 {
		return
	}

	if opts.Exact.MaxTableCells == 0 || opts.Exact.MaxTableCells > limit {
		opts.Exact.MaxTableCells = limit
		logger.Debug("exact table cap lowered", "max_table_cells", limit, "available_bytes", avail)
	}
	if opts.FPTAS.MaxTableCells == 0 || opts.FPTAS.MaxTableCells > limit {
		opts.FPTAS.MaxTableCells = limit
		logger.Debug("fptas table cap lowered", "max_table_cells", limit, "available_bytes", avail)
	}
}
