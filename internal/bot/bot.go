// Package bot adapts the purchase flow to the Telegram Bot API: it routes
// incoming updates to flow operations and renders the returned views as
// message edits with inline keyboards.
package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog/log"

	"github.com/worldwidesim/esim-store/internal/dto"
	"github.com/worldwidesim/esim-store/internal/service"
)

type Bot struct {
	api       *tgbotapi.BotAPI
	purchases *service.PurchaseService
}

func New(token string, purchases *service.PurchaseService) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	return &Bot{api: api, purchases: purchases}, nil
}

// Run consumes the update stream until the context is cancelled. Each
// update is handled in its own goroutine so one user's slow upstream
// call never blocks another's.
func (b *Bot) Run(ctx context.Context) error {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	log.Info().Str("username", b.api.Self.UserName).Msg("bot started")

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			go b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("update handler panicked")
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		b.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		if msg.Command() == "start" {
			b.send(msg.Chat.ID, mainMenuView())
		}
		return
	}

	// Free text while a country list is open is treated as a country name.
	reply := b.purchases.SelectCountryText(ctx, msg.From.ID, msg.Text)
	if reply.View != nil {
		b.send(msg.Chat.ID, *reply.View)
	}
}

func (b *Bot) render(cb *tgbotapi.CallbackQuery, reply dto.Reply) {
	if reply.View != nil {
		b.edit(cb.Message.Chat.ID, cb.Message.MessageID, *reply.View)
	}
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, reply.Toast)); err != nil {
		log.Warn().Err(err).Msg("callback answer failed")
	}
}

func (b *Bot) edit(chatID int64, messageID int, view dto.View) {
	var edit tgbotapi.EditMessageTextConfig
	if len(view.Keyboard) > 0 {
		edit = tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, view.Text, markup(view.Keyboard))
	} else {
		edit = tgbotapi.NewEditMessageText(chatID, messageID, view.Text)
	}
	if _, err := b.api.Send(edit); err != nil {
		// Media messages cannot be edited into text; replace instead.
		log.Warn().Err(err).Msg("message edit failed, sending new")
		del := tgbotapi.NewDeleteMessage(chatID, messageID)
		if _, err := b.api.Request(del); err != nil {
			log.Warn().Err(err).Msg("message delete failed")
		}
		b.send(chatID, view)
	}
}

func (b *Bot) send(chatID int64, view dto.View) {
	msg := tgbotapi.NewMessage(chatID, view.Text)
	if len(view.Keyboard) > 0 {
		msg.ReplyMarkup = markup(view.Keyboard)
	}
	if _, err := b.api.Send(msg); err != nil {
		log.Error().Err(err).Int64("chat_id", chatID).Msg("message send failed")
	}
}

func markup(rows [][]dto.Button) tgbotapi.InlineKeyboardMarkup {
	keyboard := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(btn.Text, btn.Data))
		}
		keyboard = append(keyboard, buttons)
	}
	return tgbotapi.NewInlineKeyboardMarkup(keyboard...)
}
