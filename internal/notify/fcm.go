package notify

import (
	"context"
	"fmt"

	"firebase.google.com/go/messaging"
)

type MessageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type TokenLookup interface {
	TokensFor(ctx context.Context, userID string) ([]string, error)
}

// FCMSender delivers events as Firebase Cloud Messaging notifications to every
// device token registered for the user.
type FCMSender struct {
	Client MessageSender
	Tokens TokenLookup
	Logger Logger
}

func (s *FCMSender) Send(ctx context.Context, userID string, ev Event) error {
	tokens, err := s.Tokens.TokensFor(ctx, userID)
	if err != nil {
		return fmt.Errorf("load device tokens for %s: %w", userID, err)
	}
	for _, token := range tokens {
		msg := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: ev.Title(),
				Body:  ev.ListingTitle,
			},
			Data: map[string]string{
				"type":      ev.Type,
				"rental_id": ev.RentalID,
				"status":    string(ev.Status),
			},
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
		}
		if _, err := s.Client.Send(ctx, msg); err != nil {
			s.Logger.Errorf("push %s to %s failed: %v", ev.Type, userID, err)
		}
	}
	return nil
}
