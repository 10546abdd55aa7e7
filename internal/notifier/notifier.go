// Package notifier dispatches formatted notifications to Telegram.
package notifier

import (
	"context"
	"errors"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/user/githookbot/internal/relay"
	"github.com/user/githookbot/pkg/logger"
)

// TelegramNotifier sends messages through the Telegram Bot API. It
// implements relay.Notifier: one outbound message per successful call, no
// retry on failure.
type TelegramNotifier struct {
	api *tgbotapi.BotAPI
}

// NewTelegramNotifier creates a notifier backed by the given bot API.
func NewTelegramNotifier(api *tgbotapi.BotAPI) *TelegramNotifier {
	return &TelegramNotifier{api: api}
}

// Send delivers the text to the destination, bounded by ctx. Web page
// previews are always disabled for relayed notifications. The thread is
// applied only when the destination carries one.
func (n *TelegramNotifier) Send(ctx context.Context, dest relay.Destination, text string) error {
	msg := tgbotapi.NewMessage(dest.ChatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true
	if dest.HasThread() {
		// Forum topics postdate this library's last release; replying to
		// the topic's root message posts into the thread.
		msg.ReplyToMessageID = int(dest.ThreadID)
	}

	// The library's send takes no context, so run it on its own goroutine
	// and hold the delivery bound here. An abandoned send may still reach
	// Telegram; that stays within the at-most-one-attempt policy.
	errCh := make(chan error, 1)
	go func() {
		_, err := n.api.Send(msg)
		errCh <- err
	}()

	select {
	case <-ctx.Done():
		logger.Error().Err(ctx.Err()).Int64("chat_id", dest.ChatID).Msg("Delivery deadline exceeded")
		return &relay.DeliveryError{Description: "delivery deadline exceeded", Err: ctx.Err()}
	case err := <-errCh:
		if err != nil {
			return classify(dest, err)
		}
	}

	logger.Debug().
		Int64("chat_id", dest.ChatID).
		Int64("thread_id", dest.ThreadID).
		Msg("Notification dispatched")
	return nil
}

// classify separates an explicit Telegram API rejection from a transport
// failure, keeping the backend diagnostic for the caller.
func classify(dest relay.Destination, err error) error {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		logger.Error().
			Int64("chat_id", dest.ChatID).
			Int("code", apiErr.Code).
			Str("description", apiErr.Message).
			Msg("Telegram rejected message")
		return &relay.DeliveryError{Description: apiErr.Message, Rejected: true, Err: err}
	}

	logger.Error().Err(err).Int64("chat_id", dest.ChatID).Msg("Failed to reach Telegram")
	return &relay.DeliveryError{Description: "telegram unreachable", Err: err}
}
