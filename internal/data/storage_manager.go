package data

import (
	"gorm.io/gorm"

	"messages/internal/entity"
	"messages/internal/repository"
)

// StorageManager gathers the typed repositories over a single database
// handle. Services receive exactly the handles they need at
// construction; there is no runtime repository lookup.
type StorageManager struct {
	db *gorm.DB

	users           repository.UserRepository
	channels        repository.ChannelRepository
	channelMessages repository.ChannelMessageRepository
	userMessages    repository.UserMessageRepository
}

func NewStorageManager(db *gorm.DB) (*StorageManager, error) {
	err := db.AutoMigrate(
		&entity.User{},
		&entity.UserSecret{},
		&entity.UserSession{},
		&entity.Channel{},
		&entity.ChannelMessage{},
		&entity.UserMessage{},
	)
	if err != nil {
		return nil, err
	}

	return &StorageManager{
		db:              db,
		users:           repository.NewSQLiteUserRepository(db),
		channels:        repository.NewSQLiteChannelRepository(db),
		channelMessages: repository.NewSQLiteChannelMessageRepository(db),
		userMessages:    repository.NewSQLiteUserMessageRepository(db),
	}, nil
}

func (s *StorageManager) Users() repository.UserRepository {
	return s.users
}

func (s *StorageManager) Channels() repository.ChannelRepository {
	return s.channels
}

func (s *StorageManager) ChannelMessages() repository.ChannelMessageRepository {
	return s.channelMessages
}

func (s *StorageManager) UserMessages() repository.UserMessageRepository {
	return s.userMessages
}
