package allergy

import (
	"context"
	"mealmate/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AllergyRepository interface {
		GetAllergies(ctx context.Context, userID string) ([]*entities.UserAllergy, error)
		ReplaceAllergies(ctx context.Context, userID string, names []string) error
	}

	allergyRepository struct {
		db *gorm.DB
	}
)

func NewAllergyRepository(db *gorm.DB) AllergyRepository {
	return &allergyRepository{db: db}
}

func (r *allergyRepository) GetAllergies(ctx context.Context, userID string) ([]*entities.UserAllergy, error) {
	var allergies []*entities.UserAllergy
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("allergen_name asc").
		Find(&allergies).Error; err != nil {
		return nil, err
	}
	return allergies, nil
}

// ReplaceAllergies swaps the user's declared list wholesale inside one
// transaction; the allergy preference list itself is the only persisted
// allergen state.
func (r *allergyRepository) ReplaceAllergies(ctx context.Context, userID string, names []string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userUUID).
			Delete(&entities.UserAllergy{}).Error; err != nil {
			return err
		}

		for _, name := range names {
			allergy := entities.UserAllergy{
				ID:           uuid.New(),
				UserID:       userUUID,
				AllergenName: name,
			}
			if err := tx.Create(&allergy).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
