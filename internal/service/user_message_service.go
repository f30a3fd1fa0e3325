package service

import (
	"log/slog"
	"time"

	"messages/internal/entity"
	"messages/internal/repository"
)

// UserMessageService is the channel feed logic specialized to a
// recipient's private inbox.
type UserMessageService interface {
	// ListPersonalMessages requires an authenticated caller; the
	// transport layer rejects unauthenticated reads before getting here.
	ListPersonalMessages(caller Identity) ([]MessageView, error)
	SendPersonalMessage(recipientUsername, text string, caller *Identity) (*PostReceipt, error)
}

type userMessageService struct {
	messages repository.UserMessageRepository
	users    repository.UserRepository
	logger   *slog.Logger
}

func NewUserMessageService(
	messages repository.UserMessageRepository,
	users repository.UserRepository,
	logger *slog.Logger,
) UserMessageService {
	return &userMessageService{
		messages: messages,
		users:    users,
		logger:   logger,
	}
}

func (s *userMessageService) ListPersonalMessages(caller Identity) ([]MessageView, error) {
	messages, err := s.messages.InboxByRecipient(caller.UserID)
	if err != nil {
		return nil, err
	}

	views := make([]MessageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, MessageView{
			ID:     message.ID,
			Text:   message.Text,
			SentAt: message.SentAt,
			Sender: senderName(message.Sender),
		})
	}
	return views, nil
}

func (s *userMessageService) SendPersonalMessage(recipientUsername, text string, caller *Identity) (*PostReceipt, error) {
	if text == "" {
		return nil, validationf("Missing message text.")
	}
	if recipientUsername == "" {
		return nil, validationf("Missing message recipient.")
	}

	// An unknown recipient is a validation failure, not a not-found:
	// the recipient is part of the payload, not the address of the
	// resource.
	recipient, err := s.users.GetByUsername(recipientUsername)
	if err != nil {
		return nil, err
	}
	if recipient == nil {
		return nil, validationf("Recipient user %s does not exist.", recipientUsername)
	}

	sender, err := resolveSender(s.users, caller)
	if err != nil {
		return nil, err
	}

	message := &entity.UserMessage{
		RecipientID: recipient.ID,
		SenderID:    sender.ref(),
		Text:        text,
		SentAt:      time.Now(),
	}
	if err := s.messages.Create(message); err != nil {
		return nil, err
	}

	s.logger.Info("personal message sent",
		"id", message.ID, "recipient", recipient.Username, "anonymous", sender.Anonymous())
	return &PostReceipt{ID: message.ID, Sender: sender}, nil
}
