//go:build linux

package cmd

import (
	perf "github.com/hodgesds/perf-utils"
)

type perfCounter struct {
	Name  string
	Value uint64
}

// countFit runs fit once per hardware counter, fits are deterministic so
// the result of the last run stands for all of them
func countFit(fit func() error) (counters []perfCounter, err error) {
	for _, c := range []struct {
		name    string
		profile func(func() error) (*perf.ProfileValue, error)
	}{
		{"CPU cycles", perf.CPUCycles},
		{"instructions", perf.CPUInstructions},
	} {
		var pv *perf.ProfileValue
		if pv, err = c.profile(fit); err != nil {
			return
		}
		counters = append(counters, perfCounter{c.name, pv.Value})
	}
	return
}
