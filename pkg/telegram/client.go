package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Notifier delivers alert messages.
type Notifier interface {
	SendMessage(text string) error
}

type client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewClient creates a Telegram notifier for chatID.
func NewClient(botToken string, chatID int64) (Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return &client{
		bot:    bot,
		chatID: chatID,
	}, nil
}

func (c *client) SendMessage(text string) error {
	msg := tgbotapi.NewMessage(c.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	_, err := c.bot.Send(msg)
	return err
}

// SendAll sends each message in order and stops at the first failure.
func SendAll(n Notifier, messages []string) error {
	for i, m := range messages {
		if err := n.SendMessage(m); err != nil {
			return fmt.Errorf("failed to send message %d/%d: %w", i+1, len(messages), err)
		}
	}
	return nil
}

type nopNotifier struct{}

// NewNopNotifier returns a Notifier that drops every message, used when alerts are disabled.
func NewNopNotifier() Notifier { return nopNotifier{} }

func (nopNotifier) SendMessage(string) error { return nil }
