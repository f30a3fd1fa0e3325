package entity

import "time"

// ChannelMessage is immutable once created. A nil SenderID marks an
// anonymous message, which is a valid permanent state rather than an
// error.
type ChannelMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ChannelID uint      `gorm:"not null;index" json:"channel-id"`
	SenderID  *uint     `gorm:"index" json:"sender-id,omitempty"`
	Text      string    `gorm:"not null" json:"text"`
	SentAt    time.Time `gorm:"not null;index" json:"sent-at"`

	Sender *User `gorm:"foreignKey:SenderID;references:ID" json:"-"`
}
