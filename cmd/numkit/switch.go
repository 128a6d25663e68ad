package main

import (
	"fmt"
	"os"
	"strings"
)

// autoSwitch is the auto|on|off value shared by --color and --ui.
type autoSwitch string

const (
	switchAuto autoSwitch = "auto"
	switchOn   autoSwitch = "on"
	switchOff  autoSwitch = "off"
)

func parseSwitch(flag, value string) (autoSwitch, error) {
	switch s := autoSwitch(strings.ToLower(strings.TrimSpace(value))); s {
	case "":
		return switchAuto, nil
	case switchAuto, switchOn, switchOff:
		return s, nil
	}
	return "", fmt.Errorf("invalid --%s value %q (expected auto|on|off)", flag, value)
}

// resolve reports whether the feature is enabled; auto defers to detect.
func (s autoSwitch) resolve(detect func() bool) bool {
	if s == switchAuto {
		return detect()
	}
	return s == switchOn
}

func stdoutIsTerminal() bool { return isTerminal(os.Stdout) }

// interactive is the auto rule for --ui: the progress view reads keys.
func interactive() bool { return isTerminal(os.Stdout) && isTerminal(os.Stdin) }
