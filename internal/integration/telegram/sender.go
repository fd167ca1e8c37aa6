// Package telegram sends notifications through the Telegram bot API.
package telegram

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"gopkg.in/telebot.v3"
)

// chat is a telebot recipient addressed by a raw chat id or @channel name.
type chat string

func (c chat) Recipient() string { return string(c) }

// Sender posts text messages to a single chat.
type Sender struct {
	bot  *telebot.Bot
	chat chat
}

// Options configures a Sender.
type Options struct {
	APIURL  string
	Token   string
	ChatID  string
	Timeout time.Duration
}

// New creates a Sender. No request is made until the first Send.
func New(opts Options) (*Sender, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		URL:     opts.APIURL,
		Token:   opts.Token,
		Client:  &http.Client{Timeout: opts.Timeout},
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &Sender{bot: bot, chat: chat(opts.ChatID)}, nil
}

// Send posts text to the configured chat. telebot has no per-call context,
// so an already cancelled ctx short-circuits and the HTTP client timeout
// bounds the request.
func (s *Sender) Send(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := s.bot.Send(s.chat, text); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}
