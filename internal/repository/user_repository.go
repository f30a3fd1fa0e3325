package repository

import (
	"errors"

	"gorm.io/gorm"

	"messages/internal/entity"
)

type UserRepository interface {
	GetByID(id uint) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// GetWithSecret loads the user together with the password hash, for
	// credential checks only.
	GetWithSecret(username string) (*entity.User, error)

	Create(user *entity.User) error

	CreateSession(session *entity.UserSession) error
	GetSessionByToken(token string) (*entity.UserSession, error)
	DeleteSession(token string) error
}

type SQLiteUserRepository struct {
	db *gorm.DB
}

func NewSQLiteUserRepository(db *gorm.DB) UserRepository {
	return &SQLiteUserRepository{db}
}

func (repo *SQLiteUserRepository) GetByID(id uint) (*entity.User, error) {
	var user entity.User
	err := repo.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *SQLiteUserRepository) GetByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := repo.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *SQLiteUserRepository) GetWithSecret(username string) (*entity.User, error) {
	var user entity.User
	err := repo.db.Preload("Secret").Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (repo *SQLiteUserRepository) Create(user *entity.User) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(user).Error
	})
}

func (repo *SQLiteUserRepository) CreateSession(session *entity.UserSession) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(session).Error
	})
}

func (repo *SQLiteUserRepository) GetSessionByToken(token string) (*entity.UserSession, error) {
	var session entity.UserSession
	err := repo.db.Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (repo *SQLiteUserRepository) DeleteSession(token string) error {
	return repo.db.Transaction(func(tx *gorm.DB) error {
		return tx.Delete(&entity.UserSession{}, "token = ?", token).Error
	})
}
