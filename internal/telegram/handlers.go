package telegram

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/user/githookbot/internal/storage"
	"github.com/user/githookbot/pkg/logger"
)

// storeTimeout bounds every registry operation issued from a handler.
const storeTimeout = 5 * time.Second

// Handlers manages command, text and callback handling for the bot.
type Handlers struct {
	api     *tgbotapi.BotAPI
	store   *storage.WebhookStore
	wizard  *Wizard
	baseURL string
}

// NewHandlers creates a new handlers instance. baseURL is the public
// address shown to users when a webhook is created.
func NewHandlers(api *tgbotapi.BotAPI, store *storage.WebhookStore, baseURL string) *Handlers {
	return &Handlers{
		api:     api,
		store:   store,
		wizard:  NewWizard(),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// HandleCommand routes commands to appropriate handlers.
func (h *Handlers) HandleCommand(msg *tgbotapi.Message) {
	command := msg.Command()

	logger.Debug().
		Str("command", command).
		Int64("chat_id", msg.Chat.ID).
		Msg("Received command")

	switch command {
	case "start":
		h.wizard.Cancel(msg.From.ID)
		h.sendMenu(msg.Chat.ID)
	case "id":
		h.sendReply(msg.Chat.ID, fmt.Sprintf("您的聊天 ID: `%d`", msg.Chat.ID))
	case "threadid":
		// The library predates forum topics; inside a topic every message
		// carries a reply to the topic's root, whose id is the thread id.
		threadID := "无"
		if msg.ReplyToMessage != nil {
			threadID = fmt.Sprintf("%d", msg.ReplyToMessage.MessageID)
		}
		h.sendReply(msg.Chat.ID, fmt.Sprintf("话题 ID: `%s`", threadID))
	case "cancel":
		h.wizard.Cancel(msg.From.ID)
		h.sendReply(msg.Chat.ID, msgWizardAborted)
	default:
		h.sendReply(msg.Chat.ID, "未知命令。使用 /start 打开菜单。")
	}
}

// HandleText feeds plain messages into the registration wizard.
func (h *Handlers) HandleText(msg *tgbotapi.Message) {
	result, active := h.wizard.Advance(msg.From.ID, msg.Text)
	if !active {
		return
	}

	if !result.Done {
		h.sendReply(msg.Chat.ID, result.Reply)
		return
	}

	h.completeRegistration(msg.Chat.ID, msg.From.ID, result.Registration)
}

// HandleCallback handles inline keyboard callbacks.
func (h *Handlers) HandleCallback(callback *tgbotapi.CallbackQuery) {
	// Acknowledge the callback
	callbackCfg := tgbotapi.NewCallback(callback.ID, "")
	h.api.Send(callbackCfg)

	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID
	userID := callback.From.ID
	data := callback.Data

	switch {
	case data == "main_menu":
		h.editToMenu(chatID, messageID)
	case data == "create_webhook":
		prompt := h.wizard.Start(userID)
		h.sendReply(chatID, prompt)
	case data == "view_webhooks":
		h.showWebhookList(chatID, messageID, userID)
	case strings.HasPrefix(data, "webhookdelete_"):
		h.deleteWebhook(chatID, messageID, userID, strings.TrimPrefix(data, "webhookdelete_"))
	case strings.HasPrefix(data, "webhook_"):
		h.showWebhookInfo(chatID, messageID, userID, strings.TrimPrefix(data, "webhook_"))
	}
}

// completeRegistration persists the wizard output and replies with the
// webhook URL. Same-name registrations are replaced with a fresh id.
func (h *Handlers) completeRegistration(chatID, userID int64, reg Registration) {
	id, err := storage.GenerateID()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to generate webhook id")
		h.sendReply(chatID, msgCreateFailed)
		return
	}

	webhook := &storage.Webhook{
		Name:      reg.Name,
		URL:       id,
		AuthorID:  userID,
		ChannelID: reg.ChannelID,
	}
	if reg.ThreadID != 0 {
		webhook.ThreadID = sql.NullInt64{Int64: reg.ThreadID, Valid: true}
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := h.store.Create(ctx, webhook); err != nil {
		logger.Error().Err(err).Str("name", reg.Name).Msg("Failed to create webhook")
		h.sendReply(chatID, msgCreateFailed)
		return
	}

	webhookURL := fmt.Sprintf("%s/github-webhook/%s", h.baseURL, id)
	h.sendMarkdown(chatID, BuildCreatedMessage(webhookURL))
	logger.Info().Int64("user_id", userID).Str("name", reg.Name).Msg("Webhook created")
}

// showWebhookList edits the menu message into the user's webhook list.
func (h *Handlers) showWebhookList(chatID int64, messageID int, userID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	hooks, err := h.store.ListByAuthor(ctx, userID)
	if err != nil {
		logger.Error().Err(err).Int64("user_id", userID).Msg("Failed to list webhooks")
		h.editWithKeyboard(chatID, messageID, msgListFailed, BackKeyboard("main_menu"))
		return
	}

	if len(hooks) == 0 {
		h.editWithKeyboard(chatID, messageID, msgNoWebhooks, BackKeyboard("main_menu"))
		return
	}

	text := fmt.Sprintf("您的 Webhook（%d 个）：", len(hooks))
	h.editWithKeyboard(chatID, messageID, text, ListKeyboard(hooks))
}

// showWebhookInfo edits the list message into a single webhook's details.
func (h *Handlers) showWebhookInfo(chatID int64, messageID int, userID int64, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	webhook, err := h.store.GetByName(ctx, userID, name)
	if err != nil {
		if !errors.Is(err, storage.ErrWebhookNotFound) {
			logger.Error().Err(err).Str("name", name).Msg("Failed to get webhook")
		}
		h.editWithKeyboard(chatID, messageID, msgInfoNotFound, BackKeyboard("view_webhooks"))
		return
	}

	edit := tgbotapi.NewEditMessageText(chatID, messageID, BuildInfoMessage(webhook))
	edit.ParseMode = tgbotapi.ModeMarkdown
	keyboard := InfoKeyboard(name)
	edit.ReplyMarkup = &keyboard
	if _, err := h.api.Send(edit); err != nil {
		logger.Error().Err(err).Msg("Failed to edit message")
	}
}

// deleteWebhook removes the registration and confirms.
func (h *Handlers) deleteWebhook(chatID int64, messageID int, userID int64, name string) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := h.store.DeleteByName(ctx, userID, name); err != nil {
		if errors.Is(err, storage.ErrWebhookNotFound) {
			h.editWithKeyboard(chatID, messageID, msgInfoNotFound, BackKeyboard("view_webhooks"))
			return
		}
		logger.Error().Err(err).Str("name", name).Msg("Failed to delete webhook")
		h.editWithKeyboard(chatID, messageID, msgDeleteFailed, BackKeyboard("view_webhooks"))
		return
	}

	text := fmt.Sprintf("✅ Webhook '%s' 已删除", name)
	h.editWithKeyboard(chatID, messageID, text, BackKeyboard("view_webhooks"))
	logger.Info().Int64("user_id", userID).Str("name", name).Msg("Webhook deleted")
}

func (h *Handlers) sendMenu(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, msgMenu)
	msg.ReplyMarkup = MenuKeyboard()
	if _, err := h.api.Send(msg); err != nil {
		logger.Error().Err(err).Msg("Failed to send menu")
	}
}

func (h *Handlers) editToMenu(chatID int64, messageID int) {
	h.editWithKeyboard(chatID, messageID, msgMenu, MenuKeyboard())
}

func (h *Handlers) editWithKeyboard(chatID int64, messageID int, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, text, keyboard)
	if _, err := h.api.Send(edit); err != nil {
		logger.Error().Err(err).Msg("Failed to edit message")
	}
}

// sendReply sends a simple markdown reply.
func (h *Handlers) sendReply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := h.api.Send(msg); err != nil {
		logger.Error().Err(err).Msg("Failed to send reply")
	}
}

// sendMarkdown sends a markdown-formatted message without link previews.
func (h *Handlers) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.DisableWebPagePreview = true
	if _, err := h.api.Send(msg); err != nil {
		logger.Error().Err(err).Msg("Failed to send markdown message")
	}
}
