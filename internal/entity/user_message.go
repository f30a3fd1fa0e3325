package entity

import "time"

// UserMessage is a private message addressed to exactly one recipient.
// Like ChannelMessage it is immutable and may be anonymous.
type UserMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RecipientID uint      `gorm:"not null;index" json:"recipient-id"`
	SenderID    *uint     `gorm:"index" json:"sender-id,omitempty"`
	Text        string    `gorm:"not null" json:"text"`
	SentAt      time.Time `gorm:"not null;index" json:"sent-at"`

	Sender    *User `gorm:"foreignKey:SenderID;references:ID" json:"-"`
	Recipient User  `gorm:"foreignKey:RecipientID;references:ID" json:"-"`
}
