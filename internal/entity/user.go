package entity

// User is an identity-provider-owned principal. The messaging core only
// references users, it never mutates them.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null;size:100" json:"username"`

	Secret   UserSecret    `gorm:"foreignKey:UserID;references:ID" json:"-"`
	Sessions []UserSession `gorm:"foreignKey:UserID;references:ID" json:"-"`
}
