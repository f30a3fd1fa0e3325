package repository

import (
	"gorm.io/gorm"

	"messages/internal/entity"
)

type ChannelMessageRepository interface {
	// FeedByChannel returns the channel's messages newest first: sent_at
	// descending, ties broken by id descending. A limit <= 0 means all.
	FeedByChannel(channelID uint, limit int) ([]entity.ChannelMessage, error)
	CountByChannel(channelID uint) (int64, error)

	Create(message *entity.ChannelMessage) error
}

type SQLiteChannelMessageRepository struct {
	db *gorm.DB
}

func NewSQLiteChannelMessageRepository(db *gorm.DB) ChannelMessageRepository {
	return &SQLiteChannelMessageRepository{db}
}

func (repo *SQLiteChannelMessageRepository) FeedByChannel(channelID uint, limit int) ([]entity.ChannelMessage, error) {
	var messages []entity.ChannelMessage
	query := repo.db.Preload("Sender").
		Where("channel_id = ?", channelID).
		Order("sent_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&messages).Error
	return messages, err
}

func (repo *SQLiteChannelMessageRepository) CountByChannel(channelID uint) (int64, error) {
	var count int64
	err := repo.db.Model(&entity.ChannelMessage{}).
		Where("channel_id = ?", channelID).
		Count(&count).Error
	return count, err
}

func (repo *SQLiteChannelMessageRepository) Create(message *entity.ChannelMessage) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(message).Error
	})
}
