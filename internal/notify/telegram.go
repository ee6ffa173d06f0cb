// Package notify delivers review reminders to learners.
package notify

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the part of the Telegram API the notifier needs
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Telegram sends reminders as Telegram messages
type Telegram struct {
	api           Sender
	defaultChatID int64
}

// NewTelegram connects to the Bot API with token. Reminders for learners whose
// name is not a chat id go to defaultChatID.
func NewTelegram(token string, defaultChatID int64) (*Telegram, error) {
	botAPI, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("unable to create bot: %w", err)
	}
	log.Printf("Authorized on account %s", botAPI.Self.UserName)
	return NewTelegramWithSender(botAPI, defaultChatID), nil
}

// NewTelegramWithSender creates a notifier over an existing API client
func NewTelegramWithSender(api Sender, defaultChatID int64) *Telegram {
	return &Telegram{api: api, defaultChatID: defaultChatID}
}

// SendReminder tells learner that count cards are waiting
func (t *Telegram) SendReminder(learner string, count int) error {
	chatID := t.chatID(learner)
	if chatID == 0 {
		return fmt.Errorf("no chat for learner %q", learner)
	}

	msg := tgbotapi.NewMessage(chatID, ReminderText(count))
	if _, err := t.api.Send(msg); err != nil {
		log.Printf("Error sending reminder to %s: %v", learner, err)
		return err
	}
	log.Printf("Successfully sent reminder to %s for %d cards", learner, count)
	return nil
}

func (t *Telegram) chatID(learner string) int64 {
	if id, err := strconv.ParseInt(learner, 10, 64); err == nil && id != 0 {
		return id
	}
	return t.defaultChatID
}

// ReminderText formats the reminder message
func ReminderText(count int) string {
	cards := "cards"
	if count == 1 {
		cards = "card"
	}
	return fmt.Sprintf("Vous avez %d %s à réviser ! You have %d French %s due for review. Run `frenchie study` to start.",
		count, cards, count, cards)
}
