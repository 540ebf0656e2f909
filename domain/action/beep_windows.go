//go:build windows

package action

import (
	"golang.org/x/sys/windows"
)

// Beep plays the system exclamation sound to accompany a new alert.
// Windows implementation using MessageBeep; the call is asynchronous.
func Beep() {
	user32 := windows.NewLazySystemDLL("user32.dll")
	messageBeep := user32.NewProc("MessageBeep")
	const MB_ICONEXCLAMATION = 0x00000030
	_, _, _ = messageBeep.Call(MB_ICONEXCLAMATION)
}
