//go:build windows

package main

import "os"

// shutdownSignals stop batch and watch runs. SIGTERM is not delivered on Windows.
var shutdownSignals = []os.Signal{os.Interrupt}
