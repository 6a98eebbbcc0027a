package main

import (
	"fmt"
	"io"

	"scanfmt/internal/observ"
)

func printTimings(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	if _, err := timer.Report().WriteTo(out); err != nil {
		fmt.Fprintf(out, "failed to write timings: %v\n", err)
	}
}
