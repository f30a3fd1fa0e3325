package memory

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"messages/internal/entity"
)

func TestChannelRepository_AssignsSequentialIDs(t *testing.T) {
	req := require.New(t)
	repo := NewChannelRepository()

	first := &entity.Channel{Name: "general"}
	second := &entity.Channel{Name: "random"}
	req.NoError(repo.Create(first))
	req.NoError(repo.Create(second))

	req.Equal(uint(1), first.ID)
	req.Equal(uint(2), second.ID)
}

func TestChannelRepository_LookupMissesReturnNil(t *testing.T) {
	req := require.New(t)
	repo := NewChannelRepository()

	channel, err := repo.GetByID(42)
	req.NoError(err)
	req.Nil(channel)

	channel, err = repo.GetByName("nope")
	req.NoError(err)
	req.Nil(channel)
}

func TestChannelRepository_NameTakenExcludesSelf(t *testing.T) {
	req := require.New(t)
	repo := NewChannelRepository()

	channel := &entity.Channel{Name: "general"}
	req.NoError(repo.Create(channel))

	taken, err := repo.NameTaken("general", 0)
	req.NoError(err)
	req.True(taken)

	taken, err = repo.NameTaken("general", channel.ID)
	req.NoError(err)
	req.False(taken)
}

func TestChannelRepository_AllSortedByName(t *testing.T) {
	req := require.New(t)
	repo := NewChannelRepository()

	for _, name := range []string{"zulu", "alpha", "mike"} {
		req.NoError(repo.Create(&entity.Channel{Name: name}))
	}

	channels, err := repo.All()
	req.NoError(err)
	req.Equal("alpha", channels[0].Name)
	req.Equal("mike", channels[1].Name)
	req.Equal("zulu", channels[2].Name)
}

func TestChannelMessageRepository_FeedOrderingAndLimit(t *testing.T) {
	req := require.New(t)
	store := NewStore()

	base := time.Date(2016, 5, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		req.NoError(store.ChannelMessages.Create(&entity.ChannelMessage{
			ChannelID: 1,
			Text:      "msg",
			SentAt:    base.Add(time.Duration(i) * time.Second),
		}))
	}
	// A message in another channel must never leak into the feed.
	req.NoError(store.ChannelMessages.Create(&entity.ChannelMessage{
		ChannelID: 2,
		Text:      "other",
		SentAt:    base.Add(time.Hour),
	}))

	feed, err := store.ChannelMessages.FeedByChannel(1, 0)
	req.NoError(err)
	req.Len(feed, 3)
	req.Equal(uint(3), feed[0].ID)
	req.Equal(uint(1), feed[2].ID)

	feed, err = store.ChannelMessages.FeedByChannel(1, 2)
	req.NoError(err)
	req.Len(feed, 2)
	req.Equal(uint(3), feed[0].ID)
}

func TestChannelMessageRepository_FeedHydratesSender(t *testing.T) {
	req := require.New(t)
	store := NewStore()

	user := &entity.User{Username: "maria"}
	req.NoError(store.Users.Create(user))

	req.NoError(store.ChannelMessages.Create(&entity.ChannelMessage{
		ChannelID: 1,
		Text:      "attributed",
		SenderID:  &user.ID,
	}))
	req.NoError(store.ChannelMessages.Create(&entity.ChannelMessage{
		ChannelID: 1,
		Text:      "anonymous",
	}))

	feed, err := store.ChannelMessages.FeedByChannel(1, 0)
	req.NoError(err)
	req.Len(feed, 2)

	byText := map[string]*entity.User{}
	for _, message := range feed {
		byText[message.Text] = message.Sender
	}
	req.NotNil(byText["attributed"])
	req.Equal("maria", byText["attributed"].Username)
	req.Nil(byText["anonymous"])
}

func TestChannelMessageRepository_CountByChannel(t *testing.T) {
	req := require.New(t)
	store := NewStore()

	req.NoError(store.ChannelMessages.Create(&entity.ChannelMessage{ChannelID: 1, Text: "a"}))
	req.NoError(store.ChannelMessages.Create(&entity.ChannelMessage{ChannelID: 1, Text: "b"}))
	req.NoError(store.ChannelMessages.Create(&entity.ChannelMessage{ChannelID: 2, Text: "c"}))

	count, err := store.ChannelMessages.CountByChannel(1)
	req.NoError(err)
	req.Equal(int64(2), count)

	count, err = store.ChannelMessages.CountByChannel(3)
	req.NoError(err)
	req.Zero(count)
}

func TestUserMessageRepository_InboxScopedToRecipient(t *testing.T) {
	req := require.New(t)
	store := NewStore()

	req.NoError(store.UserMessages.Create(&entity.UserMessage{RecipientID: 1, Text: "mine"}))
	req.NoError(store.UserMessages.Create(&entity.UserMessage{RecipientID: 2, Text: "theirs"}))

	inbox, err := store.UserMessages.InboxByRecipient(1)
	req.NoError(err)
	req.Len(inbox, 1)
	req.Equal("mine", inbox[0].Text)
}

func TestUserRepository_Sessions(t *testing.T) {
	req := require.New(t)
	repo := NewUserRepository()

	session := &entity.UserSession{Token: "tok", UserID: 7}
	req.NoError(repo.CreateSession(session))

	found, err := repo.GetSessionByToken("tok")
	req.NoError(err)
	req.NotNil(found)
	req.Equal(uint(7), found.UserID)

	req.NoError(repo.DeleteSession("tok"))

	found, err = repo.GetSessionByToken("tok")
	req.NoError(err)
	req.Nil(found)
}

func TestStore_IsolatedInstances(t *testing.T) {
	req := require.New(t)

	first := NewStore()
	second := NewStore()

	req.NoError(first.Channels.Create(&entity.Channel{Name: "general"}))

	channels, err := second.Channels.All()
	req.NoError(err)
	req.Empty(channels)
}
