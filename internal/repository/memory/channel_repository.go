package memory

import (
	"sort"
	"sync"

	"messages/internal/entity"
)

type ChannelRepository struct {
	mu       sync.Mutex
	channels map[uint]entity.Channel
	nextID   uint
}

func NewChannelRepository() *ChannelRepository {
	return &ChannelRepository{
		channels: make(map[uint]entity.Channel),
		nextID:   1,
	}
}

func (repo *ChannelRepository) All() ([]entity.Channel, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	channels := make([]entity.Channel, 0, len(repo.channels))
	for _, channel := range repo.channels {
		channels = append(channels, channel)
	}
	sort.Slice(channels, func(i, j int) bool {
		return channels[i].Name < channels[j].Name
	})
	return channels, nil
}

func (repo *ChannelRepository) GetByID(id uint) (*entity.Channel, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	channel, ok := repo.channels[id]
	if !ok {
		return nil, nil
	}
	return &channel, nil
}

func (repo *ChannelRepository) GetByName(name string) (*entity.Channel, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, channel := range repo.channels {
		if channel.Name == name {
			found := channel
			return &found, nil
		}
	}
	return nil, nil
}

func (repo *ChannelRepository) NameTaken(name string, excludeID uint) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, channel := range repo.channels {
		if channel.Name == name && channel.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (repo *ChannelRepository) Create(channel *entity.Channel) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	channel.ID = repo.nextID
	repo.nextID++
	repo.channels[channel.ID] = *channel
	return nil
}

func (repo *ChannelRepository) UpdateName(id uint, name string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	channel, ok := repo.channels[id]
	if !ok {
		return nil
	}
	channel.Name = name
	repo.channels[id] = channel
	return nil
}

func (repo *ChannelRepository) Delete(id uint) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	delete(repo.channels, id)
	return nil
}
