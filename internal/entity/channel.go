package entity

// Channel is a named broadcast destination. Names are unique across all
// channels; a channel can only be deleted while it owns no messages.
type Channel struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;not null;size:100" json:"name"`

	Messages []ChannelMessage `gorm:"foreignKey:ChannelID;references:ID" json:"-"`
}
