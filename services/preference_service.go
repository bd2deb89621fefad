package services

import (
	"errors"
	"time"

	"newsbridge-api/models"
	"newsbridge-api/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type PreferenceService interface {
	GetPreferences(userID string) (*models.UserPreference, error)
	UpdatePreferences(req models.UpdatePreferencesRequest) (*models.UserPreference, error)
}

type preferenceService struct {
	preferenceRepo repositories.PreferenceRepository
	log            zerolog.Logger
}

func NewPreferenceService(preferenceRepo repositories.PreferenceRepository, log zerolog.Logger) PreferenceService {
	return &preferenceService{
		preferenceRepo: preferenceRepo,
		log:            log.With().Str("component", "preference_service").Logger(),
	}
}

// GetPreferences returns the stored row, or a synthesized default for an
// unknown user. The default is never written back.
func (s *preferenceService) GetPreferences(userID string) (*models.UserPreference, error) {
	pref, err := s.preferenceRepo.GetByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultPreference(userID), nil
	}
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to load preferences")
		return nil, err
	}
	return pref, nil
}

// UpdatePreferences upserts keyed on user_id. Supplied fields overwrite,
// omitted fields keep their stored value (or the defaults on first creation).
func (s *preferenceService) UpdatePreferences(req models.UpdatePreferencesRequest) (*models.UserPreference, error) {
	pref := models.DefaultPreference(req.UserID)
	assignments := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if req.Theme != nil {
		pref.Theme = *req.Theme
		assignments["theme"] = *req.Theme
	}
	if req.Language != nil {
		pref.Language = *req.Language
		assignments["language"] = *req.Language
	}
	if req.CategoryOrder != nil {
		order := models.IDList(*req.CategoryOrder)
		pref.CategoryOrder = order
		assignments["category_order"] = order
	}

	if err := s.preferenceRepo.Upsert(pref, assignments); err != nil {
		s.log.Error().Err(err).Str("user_id", req.UserID).Msg("failed to upsert preferences")
		return nil, err
	}

	return s.preferenceRepo.GetByUserID(req.UserID)
}
