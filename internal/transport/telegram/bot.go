package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/csvterm/internal/core"
	"github.com/sandevgo/csvterm/internal/service/command"
	"github.com/sandevgo/csvterm/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// Bot forwards the owner's messages to the dispatcher and replies with the
// rendered entry. Other senders are ignored.
type Bot struct {
	bot        *tele.Bot
	dispatcher core.CmdDispatcher
	sender     *sender
	formatter  *command.ResponseFormatter
	ownerID    int64
}

func NewBot(
	ctx context.Context,
	cfg core.TelegramConfig,
	dispatcher core.CmdDispatcher,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.GetTelegramToken(),
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:        b,
		dispatcher: dispatcher,
		sender:     newSender(b),
		formatter:  command.NewResponseFormatter(),
		ownerID:    cfg.GetTelegramOwnerID(),
	}

	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil || c.Sender().ID != bot.ownerID {
				return nil
			}
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)
	_ = c.Notify(tele.Typing)

	res := b.dispatcher.Dispatch(ctx, c.Text())
	log.FromCtx(ctx).Debug().Str("label", res.Label).Msg("telegram command")

	return b.sender.sendMarkdown(ctx, c.Recipient(), b.formatter.Entry(res))
}
