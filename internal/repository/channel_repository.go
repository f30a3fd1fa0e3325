package repository

import (
	"errors"

	"gorm.io/gorm"

	"messages/internal/entity"
)

// ChannelRepository is the typed store handle for channels. Lookup
// methods return (nil, nil) when no record matches, so callers never
// depend on driver-specific not-found errors.
type ChannelRepository interface {
	All() ([]entity.Channel, error)
	GetByID(id uint) (*entity.Channel, error)
	GetByName(name string) (*entity.Channel, error)
	NameTaken(name string, excludeID uint) (bool, error)

	Create(channel *entity.Channel) error
	UpdateName(id uint, name string) error
	Delete(id uint) error
}

type SQLiteChannelRepository struct {
	db *gorm.DB
}

func NewSQLiteChannelRepository(db *gorm.DB) ChannelRepository {
	return &SQLiteChannelRepository{db}
}

func (repo *SQLiteChannelRepository) All() ([]entity.Channel, error) {
	var channels []entity.Channel
	err := repo.db.Order("name ASC").Find(&channels).Error
	return channels, err
}

func (repo *SQLiteChannelRepository) GetByID(id uint) (*entity.Channel, error) {
	var channel entity.Channel
	err := repo.db.First(&channel, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

func (repo *SQLiteChannelRepository) GetByName(name string) (*entity.Channel, error) {
	var channel entity.Channel
	err := repo.db.Where("name = ?", name).First(&channel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

func (repo *SQLiteChannelRepository) NameTaken(name string, excludeID uint) (bool, error) {
	var count int64
	err := repo.db.Model(&entity.Channel{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (repo *SQLiteChannelRepository) Create(channel *entity.Channel) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(channel).Error
	})
}

func (repo *SQLiteChannelRepository) UpdateName(id uint, name string) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&entity.Channel{}).Where("id = ?", id).
			Update("name", name).Error
	})
}

func (repo *SQLiteChannelRepository) Delete(id uint) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&entity.Channel{}, id).Error
	})
}
