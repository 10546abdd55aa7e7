package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/user/githookbot/internal/storage"
)

// Wizard prompts and validation replies.
const (
	msgAskName        = "请输入 Webhook 的名称"
	msgNameEmpty      = "❌ 名称不能为空，请重新输入"
	msgNameTooLong    = "❌ 名称过长（最多 100 个字符），请重新输入"
	msgAskChannel     = "请输入目标 Telegram 聊天的 ID\n可以发送 /id 查询"
	msgChannelInvalid = "❌ 聊天 ID 必须是数字，请重新输入"
	msgAskThread      = "如果目标聊天是论坛，请输入话题 ID（可发送 /threadid 查询）\n\n没有论坛请输入：`None`"
	msgThreadInvalid  = "❌ 话题 ID 必须是数字或 `None`，请重新输入"

	msgMenu          = "请选择操作："
	msgNoWebhooks    = "当前没有任何 Webhook，创建第一个吧！"
	msgCreateFailed  = "❌ 创建 Webhook 失败，请稍后重试"
	msgListFailed    = "❌ 获取 Webhook 列表失败"
	msgInfoNotFound  = "❌ 未找到该 Webhook"
	msgDeleteFailed  = "❌ 删除 Webhook 失败"
	msgWizardAborted = "已取消当前操作"
)

// MenuKeyboard builds the main menu shown on /start.
func MenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("➕ 创建 Webhook", "create_webhook"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👁️ 查看 Webhook", "view_webhooks"),
		),
	)
}

// BackKeyboard builds a single back button to the given callback target.
func BackKeyboard(target string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ 返回", target),
		),
	)
}

// ListKeyboard builds one button per webhook plus a back button.
func ListKeyboard(hooks []storage.Webhook) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(hooks)+1)
	for _, h := range hooks {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📌 "+h.Name, "webhook_"+h.Name),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ 返回", "main_menu"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// InfoKeyboard builds the detail-view buttons for one webhook.
func InfoKeyboard(name string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑️ 删除 Webhook", "webhookdelete_"+name),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⬅️ 返回", "view_webhooks"),
		),
	)
}

// BuildCreatedMessage renders the confirmation shown after registration,
// including the GitHub setup steps.
func BuildCreatedMessage(webhookURL string) string {
	return fmt.Sprintf(`✅ *Webhook 已创建！*

*URL:* `+"`%s`"+`

在 GitHub 仓库中启用：
1. 打开 Settings → Webhooks
2. 点击 "Add webhook"
3. 粘贴上面的 URL
4. Content type 选择 `+"`application/json`"+`
5. 点击 "Add webhook"`, webhookURL)
}

// BuildInfoMessage renders the detail view of one webhook.
func BuildInfoMessage(w *storage.Webhook) string {
	threadID := "无"
	if w.ThreadID.Valid {
		threadID = fmt.Sprintf("%d", w.ThreadID.Int64)
	}
	return fmt.Sprintf("Webhook 名称: %s\nWebhook ID: `%s`\n聊天 ID: `%d`\n话题 ID: `%s`",
		w.Name, w.URL, w.ChannelID, threadID)
}
