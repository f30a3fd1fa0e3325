package memory

import (
	"sync"

	"messages/internal/entity"
)

type UserRepository struct {
	mu       sync.Mutex
	users    map[uint]entity.User
	sessions map[string]entity.UserSession
	nextID   uint
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:    make(map[uint]entity.User),
		sessions: make(map[string]entity.UserSession),
		nextID:   1,
	}
}

func (repo *UserRepository) GetByID(id uint) (*entity.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.users[id]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (repo *UserRepository) GetByUsername(username string) (*entity.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, user := range repo.users {
		if user.Username == username {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (repo *UserRepository) GetWithSecret(username string) (*entity.User, error) {
	return repo.GetByUsername(username)
}

func (repo *UserRepository) Create(user *entity.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user.ID = repo.nextID
	repo.nextID++
	user.Secret.UserID = user.ID
	repo.users[user.ID] = *user
	return nil
}

func (repo *UserRepository) CreateSession(session *entity.UserSession) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.sessions[session.Token] = *session
	return nil
}

func (repo *UserRepository) GetSessionByToken(token string) (*entity.UserSession, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	session, ok := repo.sessions[token]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (repo *UserRepository) DeleteSession(token string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.sessions, token)
	return nil
}

// hydrate resolves an optional sender reference for feed projections,
// mirroring the Preload("Sender") the SQLite repositories perform.
func (repo *UserRepository) hydrate(senderID *uint) *entity.User {
	if senderID == nil {
		return nil
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	user, ok := repo.users[*senderID]
	if !ok {
		return nil
	}
	return &user
}
