package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"messages/internal/entity"
	"messages/internal/repository/memory"
)

func newFeedFixture() (*memory.Store, ChannelMessageService) {
	store := memory.NewStore()
	svc := NewChannelMessageService(store.Channels, store.ChannelMessages, store.Users, discardLogger())
	return store, svc
}

func seedChannel(t *testing.T, store *memory.Store, name string) *entity.Channel {
	t.Helper()
	channel := &entity.Channel{Name: name}
	require.NoError(t, store.Channels.Create(channel))
	return channel
}

func seedUser(t *testing.T, store *memory.Store, username string) *entity.User {
	t.Helper()
	user := &entity.User{Username: username}
	require.NoError(t, store.Users.Create(user))
	return user
}

func strptr(s string) *string { return &s }

func TestChannelMessageService_ListMessages_NewestFirst(t *testing.T) {
	req := require.New(t)
	store, svc := newFeedFixture()
	channel := seedChannel(t, store, "general")

	base := time.Date(2016, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		err := store.ChannelMessages.Create(&entity.ChannelMessage{
			ChannelID: channel.ID,
			Text:      text,
			SentAt:    base.Add(time.Duration(i) * time.Minute),
		})
		req.NoError(err)
	}

	views, err := svc.ListMessages("general", nil)
	req.NoError(err)
	req.Len(views, 3)
	req.Equal("third", views[0].Text)
	req.Equal("second", views[1].Text)
	req.Equal("first", views[2].Text)
}

func TestChannelMessageService_ListMessages_TimestampTieBrokenByID(t *testing.T) {
	req := require.New(t)
	store, svc := newFeedFixture()
	channel := seedChannel(t, store, "general")

	sentAt := time.Date(2016, 5, 1, 12, 0, 0, 0, time.UTC)
	for _, text := range []string{"first", "second", "third"} {
		err := store.ChannelMessages.Create(&entity.ChannelMessage{
			ChannelID: channel.ID,
			Text:      text,
			SentAt:    sentAt,
		})
		req.NoError(err)
	}

	// Equal timestamps: the most recently assigned id wins.
	views, err := svc.ListMessages("general", nil)
	req.NoError(err)
	req.Equal("third", views[0].Text)
	req.Equal("second", views[1].Text)
	req.Equal("first", views[2].Text)
	req.Greater(views[0].ID, views[1].ID)
}

func TestChannelMessageService_ListMessages_Limit(t *testing.T) {
	req := require.New(t)
	store, svc := newFeedFixture()
	channel := seedChannel(t, store, "general")

	base := time.Date(2016, 5, 1, 12, 0, 0, 0, time.UTC)
	for i, text := range []string{"first", "second", "third"} {
		err := store.ChannelMessages.Create(&entity.ChannelMessage{
			ChannelID: channel.ID,
			Text:      text,
			SentAt:    base.Add(time.Duration(i) * time.Minute),
		})
		req.NoError(err)
	}

	views, err := svc.ListMessages("general", strptr("2"))
	req.NoError(err)
	req.Len(views, 2)
	req.Equal("third", views[0].Text)
	req.Equal("second", views[1].Text)
}

func TestChannelMessageService_ListMessages_BadLimit(t *testing.T) {
	req := require.New(t)
	store, svc := newFeedFixture()
	seedChannel(t, store, "general")

	for _, limit := range []string{"0", "1001", "x", "", "-5"} {
		_, err := svc.ListMessages("general", strptr(limit))
		var validation *ValidationError
		req.ErrorAs(err, &validation, "limit %q", limit)
		req.Equal("Limit should be integer in range [1..1000].", validation.Message)
	}

	// Boundary values are accepted.
	for _, limit := range []string{"1", "1000"} {
		_, err := svc.ListMessages("general", strptr(limit))
		req.NoError(err, "limit %q", limit)
	}
}

func TestChannelMessageService_ListMessages_UnknownChannel(t *testing.T) {
	req := require.New(t)
	store, svc := newFeedFixture()
	seedChannel(t, store, "general")

	_, err := svc.ListMessages("nope", nil)
	var notFound *NotFoundError
	req.ErrorAs(err, &notFound)
}

func TestChannelMessageService_PostMessage_Anonymous(t *testing.T) {
	req := require.New(t)
	store, svc := newFeedFixture()
	seedChannel(t, store, "general")

	receipt, err := svc.PostMessage("general", "hi", nil)
	req.NoError(err)
	req.NotZero(receipt.ID)
	req.True(receipt.Sender.Anonymous())

	views, err := svc.ListMessages("general", nil)
	req.NoError(err)
	req.Len(views, 1)
	req.Equal("hi", views[0].Text)
	req.Empty(views[0].Sender)
}

func TestChannelMessageService_PostMessage_Attributed(t *testing.T) {
	req := require.New(t)
	store, svc := newFeedFixture()
	seedChannel(t, store, "general")
	user := seedUser(t, store, "maria")

	receipt, err := svc.PostMessage("general", "hello", &Identity{UserID: user.ID})
	req.NoError(err)
	req.False(receipt.Sender.Anonymous())
	req.Equal("maria", receipt.Sender.Username())

	views, err := svc.ListMessages("general", nil)
	req.NoError(err)
	req.Equal("maria", views[0].Sender)
}

func TestChannelMessageService_PostMessage_UnknownIdentityIsAnonymous(t *testing.T) {
	req := require.New(t)
	store, svc := newFeedFixture()
	seedChannel(t, store, "general")

	// An identity that resolves to no known user degrades to anonymous
	// rather than failing the post.
	receipt, err := svc.PostMessage("general", "hi", &Identity{UserID: 999})
	req.NoError(err)
	req.True(receipt.Sender.Anonymous())
}

func TestChannelMessageService_PostMessage_EmptyText(t *testing.T) {
	req := require.New(t)
	store, svc := newFeedFixture()
	seedChannel(t, store, "general")

	_, err := svc.PostMessage("general", "", nil)
	var validation *ValidationError
	req.ErrorAs(err, &validation)
}

func TestChannelMessageService_PostMessage_UnknownChannel(t *testing.T) {
	req := require.New(t)
	_, svc := newFeedFixture()

	_, err := svc.PostMessage("nope", "hi", nil)
	var notFound *NotFoundError
	req.ErrorAs(err, &notFound)
}
