//go:build !windows

package terminal

import "os"

// EnableANSI is a no-op outside Windows.
func EnableANSI() {}

// BlueBackground reports whether the terminal declares a blue background.
func BlueBackground() bool {
	return blueBackground(os.Getenv("COLORFGBG"))
}
