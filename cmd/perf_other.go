//go:build !linux

package cmd

import "errors"

type perfCounter struct {
	Name  string
	Value uint64
}

func countFit(fit func() error) (counters []perfCounter, err error) {
	return nil, errors.New("hardware performance counters need linux")
}
