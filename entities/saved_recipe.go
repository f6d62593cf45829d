package entities

import (
	"github.com/google/uuid"
)

// SavedRecipe stores the full recipe snapshot as it looked at save time.
// Snapshot is the provider's recipe detail serialized as JSON; the displayed
// data reflects save time unless the recipe is re-fetched.
type SavedRecipe struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_saved_user_recipe" json:"user_id"`
	RecipeID       int       `gorm:"uniqueIndex:idx_saved_user_recipe" json:"recipe_id"`
	Title          string    `json:"title"`
	ImageURL       string    `json:"image_url,omitempty"`
	MirrorImageURL string    `json:"mirror_image_url,omitempty"`
	Snapshot       string    `gorm:"type:text" json:"-"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
