package service

import (
	"log/slog"
	"strconv"
	"time"

	"messages/internal/entity"
	"messages/internal/repository"
)

const (
	minFeedLimit = 1
	maxFeedLimit = 1000
)

// MessageView is the projection a feed read returns. Sender is empty
// for anonymous messages and omitted on the wire.
type MessageView struct {
	ID     uint      `json:"id"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sentAt"`
	Sender string    `json:"sender,omitempty"`
}

// PostReceipt reports a successfully recorded message together with the
// sender it was attributed to.
type PostReceipt struct {
	ID     uint
	Sender Sender
}

// ChannelMessageService builds the ordered, bounded message feed of a
// channel and records new channel messages.
type ChannelMessageService interface {
	// ListMessages returns the channel's feed, newest first. A nil limit
	// means unbounded; a supplied limit must parse as an integer in
	// [1, 1000].
	ListMessages(channelName string, limit *string) ([]MessageView, error)
	PostMessage(channelName, text string, caller *Identity) (*PostReceipt, error)
}

type channelMessageService struct {
	channels repository.ChannelRepository
	messages repository.ChannelMessageRepository
	users    repository.UserRepository
	logger   *slog.Logger
}

func NewChannelMessageService(
	channels repository.ChannelRepository,
	messages repository.ChannelMessageRepository,
	users repository.UserRepository,
	logger *slog.Logger,
) ChannelMessageService {
	return &channelMessageService{
		channels: channels,
		messages: messages,
		users:    users,
		logger:   logger,
	}
}

func (s *channelMessageService) ListMessages(channelName string, limit *string) ([]MessageView, error) {
	channel, err := s.channels.GetByName(channelName)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, notFoundf("Channel %s was not found.", channelName)
	}

	limitCount, err := parseFeedLimit(limit)
	if err != nil {
		return nil, err
	}

	messages, err := s.messages.FeedByChannel(channel.ID, limitCount)
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

func (s *channelMessageService) PostMessage(channelName, text string, caller *Identity) (*PostReceipt, error) {
	if text == "" {
		return nil, validationf("Missing message text.")
	}

	channel, err := s.channels.GetByName(channelName)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, notFoundf("Channel %s was not found.", channelName)
	}

	sender, err := resolveSender(s.users, caller)
	if err != nil {
		return nil, err
	}

	message := &entity.ChannelMessage{
		ChannelID: channel.ID,
		SenderID:  sender.ref(),
		Text:      text,
		SentAt:    time.Now(),
	}
	if err := s.messages.Create(message); err != nil {
		return nil, err
	}

	s.logger.Info("channel message posted",
		"id", message.ID, "channel", channel.Name, "anonymous", sender.Anonymous())
	return &PostReceipt{ID: message.ID, Sender: sender}, nil
}

func parseFeedLimit(limit *string) (int, error) {
	if limit == nil {
		return 0, nil
	}
	count, err := strconv.Atoi(*limit)
	if err != nil || count < minFeedLimit || count > maxFeedLimit {
		return 0, validationf("Limit should be integer in range [1..1000].")
	}
	return count, nil
}

func senderName(sender *entity.User) string {
	if sender == nil {
		return ""
	}
	return sender.Username
}
