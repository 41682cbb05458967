package notify_test

import (
	"context"
	"log/slog"
	"testing"

	"hortifruti/internal/adapters/out/notify"
	"hortifruti/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAlertPlayer struct {
	mock.Mock
}

func (m *MockAlertPlayer) Play(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPushSender struct {
	mock.Mock
}

func (m *MockPushSender) Send(ctx context.Context, title, body string) {
	m.Called(ctx, title, body)
}

func Test_NoticeCenter_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("should retain notices newest last", func(t *testing.T) {
		// Arrange
		center := notify.NewNoticeCenter(notify.Capabilities{}, nil, nil, 10, slog.Default())

		// Act
		center.Notify(ctx, ports.Notice{Level: ports.NoticeInfo, Message: "you have a new delivery"})
		center.Notify(ctx, ports.Notice{Level: ports.NoticeSuccess, Message: "delivery is now EnRoute"})

		// Assert
		recent := center.Recent()
		require.Len(t, recent, 2)
		assert.Equal(t, "you have a new delivery", recent[0].Notice.Message)
		assert.Equal(t, "delivery is now EnRoute", recent[1].Notice.Message)
	})

	t.Run("should evict the oldest notices past the limit", func(t *testing.T) {
		center := notify.NewNoticeCenter(notify.Capabilities{}, nil, nil, 2, slog.Default())

		center.Notify(ctx, ports.Notice{Message: "first"})
		center.Notify(ctx, ports.Notice{Message: "second"})
		center.Notify(ctx, ports.Notice{Message: "third"})

		recent := center.Recent()
		require.Len(t, recent, 2)
		assert.Equal(t, "second", recent[0].Notice.Message)
		assert.Equal(t, "third", recent[1].Notice.Message)
	})
}

func Test_NoticeCenter_PlayAlert(t *testing.T) {
	ctx := context.Background()

	t.Run("should play the alert when audio is available", func(t *testing.T) {
		player := &MockAlertPlayer{}
		player.On("Play", ctx).Return(nil).Once()

		center := notify.NewNoticeCenter(notify.Capabilities{Audio: true}, player, nil, 10, slog.Default())

		require.NoError(t, center.PlayAlert(ctx))
		player.AssertExpectations(t)
	})

	t.Run("should do nothing without the audio capability", func(t *testing.T) {
		player := &MockAlertPlayer{}

		center := notify.NewNoticeCenter(notify.Capabilities{Audio: false}, player, nil, 10, slog.Default())

		require.NoError(t, center.PlayAlert(ctx))
		player.AssertNotCalled(t, "Play", mock.Anything)
	})

	t.Run("should surface a playback failure to the caller", func(t *testing.T) {
		player := &MockAlertPlayer{}
		player.On("Play", ctx).Return(assert.AnError).Once()

		center := notify.NewNoticeCenter(notify.Capabilities{Audio: true}, player, nil, 10, slog.Default())

		assert.Error(t, center.PlayAlert(ctx))
	})
}

func Test_NoticeCenter_Push(t *testing.T) {
	ctx := context.Background()

	t.Run("should send the push when permission was granted", func(t *testing.T) {
		sender := &MockPushSender{}
		sender.On("Send", ctx, "HortiFruti deliveries", "you have a new delivery").Once()

		center := notify.NewNoticeCenter(
			notify.Capabilities{PushPermission: true}, nil, sender, 10, slog.Default())

		center.Push(ctx, "HortiFruti deliveries", "you have a new delivery")
		sender.AssertExpectations(t)
	})

	t.Run("should be a no-op without permission", func(t *testing.T) {
		sender := &MockPushSender{}

		center := notify.NewNoticeCenter(
			notify.Capabilities{PushPermission: false}, nil, sender, 10, slog.Default())

		center.Push(ctx, "HortiFruti deliveries", "you have a new delivery")
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
	})
}
