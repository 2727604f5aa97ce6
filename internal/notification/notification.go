// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/Salman1205/M-bot/internal/logger"
)

// notifyFunc matches beeep.Notify's signature; injectable for tests.
type notifyFunc func(title, message string, icon any) error

var notifier notifyFunc = beeep.Notify

// SetNotifier replaces the notification backend. For testing.
func SetNotifier(fn func(title, message string, icon any) error) {
	notifier = fn
}

// ResetNotifier restores the default beeep backend.
func ResetNotifier() {
	notifier = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	logger.Log("Notification: Sending notification - title=%q, message=%q", title, message)
	// Empty icon path - beeep falls back to platform defaults
	err := notifier(title, message, "")
	if err != nil {
		logger.Log("Notification: Failed to send notification: %v", err)
	}
	return err
}

// ReplyArrived sends a notification that M has replied while the terminal
// was in the background.
func ReplyArrived() error {
	return Send("M", "M has replied to you")
}

// SessionEnded sends a notification that a session summary is ready.
func SessionEnded(title string) error {
	if title == "" {
		title = "Your session"
	}
	return Send("M", title+" summary is ready")
}
