package ports

import "context"

// NoticeLevel classifies a user-facing notice.
type NoticeLevel int

const (
	// NoticeInfo is an informational toast (e.g. new delivery assigned).
	NoticeInfo NoticeLevel = iota

	// NoticeSuccess announces a completed operation.
	NoticeSuccess

	// NoticeError announces a failed operation.
	NoticeError
)

// Notice is a single toast-style message shown to the user.
type Notice struct {
	Level   NoticeLevel
	Message string
}

// Notifier is the outbound port for user-facing notifications.
//
// Notify never fails: a notice that cannot be shown is dropped. PlayAlert may
// fail (e.g. audio playback blocked) and callers are expected to ignore the
// failure. Push must be a safe no-op when the platform has not granted
// permission or does not support push at all.
type Notifier interface {
	Notify(ctx context.Context, notice Notice)
	PlayAlert(ctx context.Context) error
	Push(ctx context.Context, title, body string)
}
