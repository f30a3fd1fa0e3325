package memory

import (
	"sort"
	"sync"

	"messages/internal/entity"
)

type UserMessageRepository struct {
	mu       sync.Mutex
	messages map[uint]entity.UserMessage
	nextID   uint

	users *UserRepository
}

func NewUserMessageRepository(users *UserRepository) *UserMessageRepository {
	return &UserMessageRepository{
		messages: make(map[uint]entity.UserMessage),
		nextID:   1,
		users:    users,
	}
}

func (repo *UserMessageRepository) InboxByRecipient(recipientID uint) ([]entity.UserMessage, error) {
	repo.mu.Lock()
	var messages []entity.UserMessage
	for _, message := range repo.messages {
		if message.RecipientID == recipientID {
			messages = append(messages, message)
		}
	}
	repo.mu.Unlock()

	sort.Slice(messages, func(i, j int) bool {
		if !messages[i].SentAt.Equal(messages[j].SentAt) {
			return messages[i].SentAt.After(messages[j].SentAt)
		}
		return messages[i].ID > messages[j].ID
	})
	for i := range messages {
		messages[i].Sender = repo.users.hydrate(messages[i].SenderID)
	}
	return messages, nil
}

func (repo *UserMessageRepository) Create(message *entity.UserMessage) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	message.ID = repo.nextID
	repo.nextID++
	repo.messages[message.ID] = *message
	return nil
}
