// Package telegram delivers wellness nudges to a team chat. Entirely
// optional: the service runs without it when no bot token is configured.
package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/selivandex/team-pulse/internal/adapters/config"
	"github.com/selivandex/team-pulse/pkg/logger"
)

// Notifier posts wellness nudges to a configured chat
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier creates new Telegram notifier
func NewNotifier(cfg *config.TelegramConfig) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	logger.Info("telegram notifier initialized",
		zap.String("bot", bot.Self.UserName),
		zap.Int64("chat_id", cfg.ChatID),
	)

	return &Notifier{bot: bot, chatID: cfg.ChatID}, nil
}

// NotifyNudge sends one wellness nudge for a team
func (n *Notifier) NotifyNudge(teamID, nudge string) error {
	text := fmt.Sprintf("Team %s wellness check:\n%s", teamID, nudge)

	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("failed to send telegram nudge: %w", err)
	}

	return nil
}
