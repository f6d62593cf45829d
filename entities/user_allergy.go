package entities

import (
	"github.com/google/uuid"
)

type UserAllergy struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	AllergenName string    `gorm:"size:50" json:"allergen_name"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
