package notification

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/SeaBoo73/definitiveversion-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier pushes booking confirmations to the operations chat. It
// subscribes to the domain event bus and never touches calendar or hold
// state.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

// HandleBookingConfirmed is the bus handler for booking.confirmed events.
func (n *TelegramNotifier) HandleBookingConfirmed(e domain.Event) {
	confirmed, ok := e.(domain.BookingConfirmed)
	if !ok {
		return
	}

	text := fmt.Sprintf(
		"*Booking confirmed*\n\n"+
			"Resource: %s\n"+
			"Dates: %s to %s\n"+
			"Total: %.2f",
		confirmed.ResourceID,
		confirmed.Range.Start.Format(domain.DateLayout),
		confirmed.Range.End.Format(domain.DateLayout),
		float64(confirmed.PriceCents)/100,
	)
	n.send(text)
}

func (n *TelegramNotifier) send(text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}
	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
