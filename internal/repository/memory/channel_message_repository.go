package memory

import (
	"sort"
	"sync"

	"messages/internal/entity"
)

type ChannelMessageRepository struct {
	mu       sync.Mutex
	messages map[uint]entity.ChannelMessage
	nextID   uint

	users *UserRepository
}

func NewChannelMessageRepository(users *UserRepository) *ChannelMessageRepository {
	return &ChannelMessageRepository{
		messages: make(map[uint]entity.ChannelMessage),
		nextID:   1,
		users:    users,
	}
}

func (repo *ChannelMessageRepository) FeedByChannel(channelID uint, limit int) ([]entity.ChannelMessage, error) {
	repo.mu.Lock()
	var messages []entity.ChannelMessage
	for _, message := range repo.messages {
		if message.ChannelID == channelID {
			messages = append(messages, message)
		}
	}
	repo.mu.Unlock()

	sortFeed(messages)
	if limit > 0 && limit < len(messages) {
		messages = messages[:limit]
	}
	for i := range messages {
		messages[i].Sender = repo.users.hydrate(messages[i].SenderID)
	}
	return messages, nil
}

func (repo *ChannelMessageRepository) CountByChannel(channelID uint) (int64, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var count int64
	for _, message := range repo.messages {
		if message.ChannelID == channelID {
			count++
		}
	}
	return count, nil
}

func (repo *ChannelMessageRepository) Create(message *entity.ChannelMessage) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	message.ID = repo.nextID
	repo.nextID++
	repo.messages[message.ID] = *message
	return nil
}

// sortFeed orders newest first: sent_at descending, ties broken by id
// descending so the ordering stays a strict total order even when
// timestamps collide.
func sortFeed(messages []entity.ChannelMessage) {
	sort.Slice(messages, func(i, j int) bool {
		if !messages[i].SentAt.Equal(messages[j].SentAt) {
			return messages[i].SentAt.After(messages[j].SentAt)
		}
		return messages[i].ID > messages[j].ID
	})
}
