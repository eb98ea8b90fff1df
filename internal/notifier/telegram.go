package notifier

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// TelegramNotifier delivers review reminders to a learner's linked chat.
type TelegramNotifier struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramNotifier(token string) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("new bot api: %w", err)
	}

	return &TelegramNotifier{bot: bot}, nil
}

// NotifyDueLessons sends a "lessons waiting for review" message.
func (n *TelegramNotifier) NotifyDueLessons(chatID int64, count int) error {
	text := fmt.Sprintf("Пора повторить! Уроков на повторение: %d", count)

	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	return nil
}
