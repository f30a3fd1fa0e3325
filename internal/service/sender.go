package service

import (
	"messages/internal/entity"
	"messages/internal/repository"
)

// Identity is the authenticated principal attached to a request, when
// one was presented. A nil *Identity means the caller is unauthenticated.
type Identity struct {
	UserID uint
}

// Sender is the resolved author of a message: either a known user or
// anonymous. The zero value is the anonymous sender.
type Sender struct {
	user *entity.User
}

func (s Sender) Anonymous() bool {
	return s.user == nil
}

// Username returns the sender's username, or "" for anonymous senders.
func (s Sender) Username() string {
	if s.user == nil {
		return ""
	}
	return s.user.Username
}

func (s Sender) ref() *uint {
	if s.user == nil {
		return nil
	}
	id := s.user.ID
	return &id
}

// resolveSender maps an optional caller identity to a sender reference.
// An identity that no longer resolves to a known user degrades to
// anonymous instead of failing the request.
func resolveSender(users repository.UserRepository, caller *Identity) (Sender, error) {
	if caller == nil {
		return Sender{}, nil
	}
	user, err := users.GetByID(caller.UserID)
	if err != nil {
		return Sender{}, err
	}
	return Sender{user: user}, nil
}
