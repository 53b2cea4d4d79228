//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals stop batch and watch runs.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
