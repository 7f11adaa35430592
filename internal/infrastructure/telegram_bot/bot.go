package telegram_bot

import (
	"context"
	"errors"
	"strings"

	tele "gopkg.in/telebot.v4"
)

type Messenger struct {
	bot *tele.Bot
}

// chat is a tele.Recipient for both numeric ids and @channel names.
type chat string

func (c chat) Recipient() string { return string(c) }

// New creates an offline bot: no getMe round trip happens until the first
// message is sent. An empty apiURL means the public Bot API.
func New(token, apiURL string) (*Messenger, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("telegram token is empty")
	}

	b, err := tele.NewBot(tele.Settings{
		Token:   token,
		URL:     apiURL,
		Offline: true,
	})
	if err != nil {
		return nil, err
	}

	return &Messenger{bot: b}, nil
}

func (m *Messenger) Send(ctx context.Context, chatID, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(chatID) == "" {
		return errors.New("telegram chat id is empty")
	}

	_, err := m.bot.Send(chat(chatID), text)
	return err
}
