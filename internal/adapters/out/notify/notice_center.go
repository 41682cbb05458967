package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"hortifruti/internal/core/ports"
)

// Capabilities describes what the host environment can actually do.
// Anything disabled turns the matching Notifier method into a no-op.
type Capabilities struct {
	Audio          bool
	PushPermission bool
}

// AlertPlayer plays the new-delivery alert sound.
type AlertPlayer interface {
	Play(ctx context.Context) error
}

// PushSender delivers an out-of-page push message.
type PushSender interface {
	Send(ctx context.Context, title, body string)
}

// StoredNotice is a notice retained by the center, with the time it arrived.
type StoredNotice struct {
	Notice ports.Notice
	At     time.Time
}

// NoticeCenter implements the Notifier port. Notices land in a bounded ring
// the panel reads back; older entries are evicted first. Audio and push are
// capability checked: without the capability the call silently does nothing.
type NoticeCenter struct {
	capabilities Capabilities
	player       AlertPlayer
	sender       PushSender
	logger       *slog.Logger
	now          func() time.Time

	mu      sync.Mutex
	notices []StoredNotice
	limit   int
}

// NewNoticeCenter creates a notice center retaining at most limit notices.
// Player and sender may be nil when the matching capability is off.
func NewNoticeCenter(
	capabilities Capabilities,
	player AlertPlayer,
	sender PushSender,
	limit int,
	logger *slog.Logger,
) *NoticeCenter {
	if limit <= 0 {
		limit = 50
	}

	return &NoticeCenter{
		capabilities: capabilities,
		player:       player,
		sender:       sender,
		limit:        limit,
		logger:       logger.With("component", "notify"),
		now:          time.Now,
	}
}

// Notify records the notice and logs it. It never fails.
func (c *NoticeCenter) Notify(ctx context.Context, notice ports.Notice) {
	c.mu.Lock()
	c.notices = append(c.notices, StoredNotice{Notice: notice, At: c.now()})
	if len(c.notices) > c.limit {
		c.notices = c.notices[len(c.notices)-c.limit:]
	}
	c.mu.Unlock()

	switch notice.Level {
	case ports.NoticeError:
		c.logger.Warn("notice", "message", notice.Message)
	default:
		c.logger.Info("notice", "message", notice.Message)
	}
}

// PlayAlert plays the alert sound when audio is available.
func (c *NoticeCenter) PlayAlert(ctx context.Context) error {
	if !c.capabilities.Audio || c.player == nil {
		return nil
	}
	return c.player.Play(ctx)
}

// Push sends a push message when permission was granted. Without permission
// it is a safe no-op.
func (c *NoticeCenter) Push(ctx context.Context, title, body string) {
	if !c.capabilities.PushPermission || c.sender == nil {
		return
	}
	c.sender.Send(ctx, title, body)
}

// Recent returns the retained notices, newest last.
func (c *NoticeCenter) Recent() []StoredNotice {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]StoredNotice, len(c.notices))
	copy(out, c.notices)
	return out
}
