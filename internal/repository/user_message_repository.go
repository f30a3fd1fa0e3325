package repository

import (
	"gorm.io/gorm"

	"messages/internal/entity"
)

type UserMessageRepository interface {
	// InboxByRecipient returns all messages addressed to the user,
	// ordered like the channel feed (sent_at desc, id desc).
	InboxByRecipient(recipientID uint) ([]entity.UserMessage, error)

	Create(message *entity.UserMessage) error
}

type SQLiteUserMessageRepository struct {
	db *gorm.DB
}

func NewSQLiteUserMessageRepository(db *gorm.DB) UserMessageRepository {
	return &SQLiteUserMessageRepository{db}
}

func (repo *SQLiteUserMessageRepository) InboxByRecipient(recipientID uint) ([]entity.UserMessage, error) {
	var messages []entity.UserMessage
	err := repo.db.Preload("Sender").
		Where("recipient_id = ?", recipientID).
		Order("sent_at DESC, id DESC").
		Find(&messages).Error
	return messages, err
}

func (repo *SQLiteUserMessageRepository) Create(message *entity.UserMessage) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(message).Error
	})
}
