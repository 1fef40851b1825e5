package notify

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramSender delivers notifications as Telegram messages.
type TelegramSender struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewTelegramSender creates a TelegramSender for the given bot token and chat.
func NewTelegramSender(token string, chatID int64) (*TelegramSender, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	return &TelegramSender{bot: bot, chatID: chatID}, nil
}

// Send delivers one notification as a plain-text message.
func (s *TelegramSender) Send(_ context.Context, msg Message) error {
	m := tgbotapi.NewMessage(s.chatID, msg.Subject+"\n\n"+msg.Text)
	m.DisableWebPagePreview = true
	if _, err := s.bot.Send(m); err != nil {
		return fmt.Errorf("send telegram message: %w", err)
	}
	return nil
}
