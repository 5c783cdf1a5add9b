package notify

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/freelancehub/marketplace-system/internal/core/domain"
)

// LogNotifier records notifications to the structured log. It stands in for
// a real delivery channel (email, push, websocket) behind the same port.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Notify(_ context.Context, notification domain.Notification) error {
	n.log.Info().
		Str("project_id", notification.ProjectID).
		Str("message_id", notification.MessageID).
		Str("sender_id", notification.SenderID).
		Str("receiver_id", notification.ReceiverID).
		Time("sent_at", notification.SentAt).
		Msg("message notification")
	return nil
}
