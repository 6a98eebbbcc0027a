package main

import (
	"fmt"
	"os"
	"strings"
)

// switchMode is the value of an auto|on|off flag such as --ui or --color.
type switchMode string

const (
	switchAuto switchMode = "auto"
	switchOn   switchMode = "on"
	switchOff  switchMode = "off"
)

func parseSwitch(flag, value string) (switchMode, error) {
	m := switchMode(strings.ToLower(strings.TrimSpace(value)))
	switch m {
	case "":
		return switchAuto, nil
	case switchAuto, switchOn, switchOff:
		return m, nil
	}
	return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
}

// on resolves the switch; auto defers to detect.
func (m switchMode) on(detect func() bool) bool {
	switch m {
	case switchOn:
		return true
	case switchOff:
		return false
	}
	return detect()
}

func shouldUseTUI(mode switchMode) bool {
	return mode.on(func() bool { return isTerminal(os.Stdout) })
}

// useColor decides colouring for output written to f. Invalid values
// turn colour off; settings are validated before this is reached.
func useColor(value string, f *os.File) bool {
	mode, err := parseSwitch("color", value)
	if err != nil {
		return false
	}
	return mode.on(func() bool {
		return f != nil && isTerminal(f) && os.Getenv("NO_COLOR") == ""
	})
}
