package repositories

import (
	"newsbridge-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository interface {
	GetByUserID(userID string) (*models.UserPreference, error)
	Upsert(pref *models.UserPreference, assignments map[string]interface{}) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetByUserID(userID string) (*models.UserPreference, error) {
	var pref models.UserPreference
	err := r.db.Where("user_id = ?", userID).First(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

// Upsert inserts pref, or on a user_id conflict applies only the given
// assignments to the existing row. The conflict is resolved by the store, so
// concurrent writers for the same user id cannot create duplicate rows.
func (r *preferenceRepository) Upsert(pref *models.UserPreference, assignments map[string]interface{}) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(pref).Error
}
