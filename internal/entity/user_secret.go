package entity

type UserSecret struct {
	UserID uint   `gorm:"primaryKey"`
	Hash   string `gorm:"not null"`
}
