//go:build !windows

package action

import "os"

// Beep writes the terminal bell. Best effort; display servers without a
// configured bell stay silent.
func Beep() {
	_, _ = os.Stdout.Write([]byte{0x07})
}
