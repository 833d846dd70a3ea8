//go:build windows

package terminal

import (
	"os"

	"golang.org/x/sys/windows"
)

const (
	enableVirtualTerminalProcessing = 0x0004
	backgroundBlue                  = 0x0010
)

// EnableANSI turns on escape sequence processing for the console on stdout.
func EnableANSI() {
	handle := windows.Handle(os.Stdout.Fd())

	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return
	}
	_ = windows.SetConsoleMode(handle, mode|enableVirtualTerminalProcessing)
}

// BlueBackground reports whether the console on stdout has a blue background.
// COLORFGBG wins when set, as in terminals emulated on top of the console.
func BlueBackground() bool {
	if raw := os.Getenv("COLORFGBG"); raw != "" {
		return blueBackground(raw)
	}

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(windows.Handle(os.Stdout.Fd()), &info); err != nil {
		return false
	}
	return info.Attributes&backgroundBlue != 0
}
