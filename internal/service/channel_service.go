package service

import (
	"log/slog"
	"unicode/utf8"

	"messages/internal/entity"
	"messages/internal/repository"
)

const maxChannelNameLength = 100

// ChannelService owns the channel lifecycle: unique names at create and
// edit, and the empty-before-delete guard.
type ChannelService interface {
	List() ([]entity.Channel, error)
	GetByID(id uint) (*entity.Channel, error)
	Create(name string) (*entity.Channel, error)
	Edit(id uint, newName string) error
	Delete(id uint) error
}

type channelService struct {
	channels repository.ChannelRepository
	messages repository.ChannelMessageRepository
	logger   *slog.Logger
}

func NewChannelService(channels repository.ChannelRepository, messages repository.ChannelMessageRepository, logger *slog.Logger) ChannelService {
	return &channelService{
		channels: channels,
		messages: messages,
		logger:   logger,
	}
}

func (s *channelService) List() ([]entity.Channel, error) {
	return s.channels.All()
}

func (s *channelService) GetByID(id uint) (*entity.Channel, error) {
	channel, err := s.channels.GetByID(id)
	if err != nil {
		return nil, err
	}
	if channel == nil {
		return nil, notFoundf("Channel #%d was not found.", id)
	}
	return channel, nil
}

func (s *channelService) Create(name string) (*entity.Channel, error) {
	if err := validateChannelName(name); err != nil {
		return nil, err
	}

	// The uniqueness check and the insert are separate statements: two
	// concurrent creates for the same name can both pass the check. The
	// unique index then fails the second insert instead of admitting a
	// duplicate.
	taken, err := s.channels.NameTaken(name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, conflictf("Duplicated channel name: %s", name)
	}

	channel := &entity.Channel{Name: name}
	if err := s.channels.Create(channel); err != nil {
		return nil, err
	}

	s.logger.Info("channel created", "id", channel.ID, "name", channel.Name)
	return channel, nil
}

func (s *channelService) Edit(id uint, newName string) error {
	channel, err := s.channels.GetByID(id)
	if err != nil {
		return err
	}
	if channel == nil {
		return notFoundf("Channel #%d was not found.", id)
	}

	if err := validateChannelName(newName); err != nil {
		return err
	}

	// Renaming a channel to its own current name is a no-op success, so
	// the record being edited is excluded from the duplicate check.
	taken, err := s.channels.NameTaken(newName, id)
	if err != nil {
		return err
	}
	if taken {
		return conflictf("Duplicated channel name: %s", newName)
	}

	if err := s.channels.UpdateName(id, newName); err != nil {
		return err
	}

	s.logger.Info("channel renamed", "id", id, "name", newName)
	return nil
}

func (s *channelService) Delete(id uint) error {
	channel, err := s.channels.GetByID(id)
	if err != nil {
		return err
	}
	if channel == nil {
		return notFoundf("Channel #%d was not found.", id)
	}

	count, err := s.messages.CountByChannel(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return conflictf("Cannot delete channel #%d because it is not empty.", id)
	}

	if err := s.channels.Delete(id); err != nil {
		return err
	}

	s.logger.Info("channel deleted", "id", id, "name", channel.Name)
	return nil
}

func validateChannelName(name string) error {
	if name == "" || utf8.RuneCountInString(name) > maxChannelNameLength {
		return validationf("Channel name must be between 1 and %d characters.", maxChannelNameLength)
	}
	return nil
}
