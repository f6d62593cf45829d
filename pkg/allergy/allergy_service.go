package allergy

import (
	"context"
	"mealmate/domain"
)

type (
	AllergyService interface {
		GetAllergies(ctx context.Context, userID string) (domain.AllergiesResponse, error)
		UpdateAllergies(ctx context.Context, req domain.UpdateAllergiesRequest, userID string) error
	}

	allergyService struct {
		allergyRepository AllergyRepository
	}
)

func NewAllergyService(allergyRepository AllergyRepository) AllergyService {
	return &allergyService{allergyRepository: allergyRepository}
}

func (s *allergyService) GetAllergies(ctx context.Context, userID string) (domain.AllergiesResponse, error) {
	allergies, err := s.allergyRepository.GetAllergies(ctx, userID)
	if err != nil {
		return domain.AllergiesResponse{}, err
	}

	names := make([]string, 0, len(allergies))
	for _, a := range allergies {
		names = append(names, a.AllergenName)
	}

	return domain.AllergiesResponse{Allergies: names}, nil
}

func (s *allergyService) UpdateAllergies(ctx context.Context, req domain.UpdateAllergiesRequest, userID string) error {
	known := make(map[string]bool, len(domain.AllAllergens))
	for _, name := range domain.AllAllergens {
		known[name] = true
	}

	// Deduplicate while preserving declaration order.
	seen := make(map[string]bool, len(req.Allergies))
	names := make([]string, 0, len(req.Allergies))
	for _, name := range req.Allergies {
		if !known[name] {
			return domain.ErrUnknownAllergen
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}

	return s.allergyRepository.ReplaceAllergies(ctx, userID, names)
}
