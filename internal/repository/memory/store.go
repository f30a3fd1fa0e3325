// Package memory provides in-memory implementations of the repository
// interfaces for tests. Every Store is a fresh instance with its own
// auto-increment counters; nothing is shared between test runs.
package memory

type Store struct {
	Users           *UserRepository
	Channels        *ChannelRepository
	ChannelMessages *ChannelMessageRepository
	UserMessages    *UserMessageRepository
}

func NewStore() *Store {
	users := NewUserRepository()
	return &Store{
		Users:           users,
		Channels:        NewChannelRepository(),
		ChannelMessages: NewChannelMessageRepository(users),
		UserMessages:    NewUserMessageRepository(users),
	}
}
