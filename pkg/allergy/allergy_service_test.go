package allergy

import (
	"context"
	"mealmate/domain"
	"mealmate/entities"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockAllergyRepository struct {
	stored   []string
	existing []*entities.UserAllergy
}

func (m *mockAllergyRepository) GetAllergies(ctx context.Context, userID string) ([]*entities.UserAllergy, error) {
	return m.existing, nil
}

func (m *mockAllergyRepository) ReplaceAllergies(ctx context.Context, userID string, names []string) error {
	m.stored = names
	return nil
}

func TestUpdateAllergiesDeduplicates(t *testing.T) {
	repo := &mockAllergyRepository{}
	service := NewAllergyService(repo)

	err := service.UpdateAllergies(context.Background(), domain.UpdateAllergiesRequest{
		Allergies: []string{domain.AllergenGluten, domain.AllergenDairy, domain.AllergenGluten},
	}, "user-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{domain.AllergenGluten, domain.AllergenDairy}, repo.stored)
}

func TestUpdateAllergiesRejectsUnknownName(t *testing.T) {
	repo := &mockAllergyRepository{}
	service := NewAllergyService(repo)

	err := service.UpdateAllergies(context.Background(), domain.UpdateAllergiesRequest{
		Allergies: []string{"Chocolate"},
	}, "user-1")

	assert.ErrorIs(t, err, domain.ErrUnknownAllergen)
	assert.Nil(t, repo.stored)
}

func TestUpdateAllergiesAllowsClearingList(t *testing.T) {
	repo := &mockAllergyRepository{}
	service := NewAllergyService(repo)

	err := service.UpdateAllergies(context.Background(), domain.UpdateAllergiesRequest{
		Allergies: []string{},
	}, "user-1")

	assert.NoError(t, err)
	assert.Empty(t, repo.stored)
}

func TestGetAllergiesReturnsNames(t *testing.T) {
	repo := &mockAllergyRepository{
		existing: []*entities.UserAllergy{
			{AllergenName: domain.AllergenDairy},
			{AllergenName: domain.AllergenSoy},
		},
	}
	service := NewAllergyService(repo)

	res, err := service.GetAllergies(context.Background(), "user-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{domain.AllergenDairy, domain.AllergenSoy}, res.Allergies)
}
