package repository

import (
	"context"
	"errors"
	"fmt"

	"golang-trading-insights/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrPreferencesNotMigrated is returned when a shared database lacks the
// preferences table.
var ErrPreferencesNotMigrated = errors.New("preferences table does not exist, run migrate up")

// PreferenceRepository persists namespaced key-value preferences.
type PreferenceRepository interface {
	Get(ctx context.Context, namespace, key string) (string, bool, error)
	Set(ctx context.Context, namespace, key, value string) error
	Delete(ctx context.Context, namespace, key string) error
}

// NewPreferenceRepository creates a gorm-backed PreferenceRepository. The
// local sqlite file is migrated in place; a shared postgres database must be
// migrated beforehand with the migrate command.
func NewPreferenceRepository(db *gorm.DB) (PreferenceRepository, error) {
	if db.Dialector.Name() == "sqlite" {
		if err := db.AutoMigrate(&entity.Preference{}); err != nil {
			return nil, fmt.Errorf("failed to migrate preferences table: %w", err)
		}
	} else if !db.Migrator().HasTable(&entity.Preference{}) {
		return nil, ErrPreferencesNotMigrated
	}
	return &preferenceRepository{db: db}, nil
}

type preferenceRepository struct {
	db *gorm.DB
}

// Get returns the stored value and whether the key exists.
func (r *preferenceRepository) Get(ctx context.Context, namespace, key string) (string, bool, error) {
	var pref entity.Preference
	err := r.db.WithContext(ctx).
		Where(preferenceKey(namespace, key)).
		First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return pref.Value, true, nil
}

// Set inserts or replaces the value.
func (r *preferenceRepository) Set(ctx context.Context, namespace, key, value string) error {
	pref := entity.Preference{Namespace: namespace, Key: key, Value: value}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&pref).Error
}

// Delete removes the key. Deleting a missing key is not an error.
func (r *preferenceRepository) Delete(ctx context.Context, namespace, key string) error {
	return r.db.WithContext(ctx).
		Where(preferenceKey(namespace, key)).
		Delete(&entity.Preference{}).Error
}

func preferenceKey(namespace, key string) map[string]interface{} {
	return map[string]interface{}{"namespace": namespace, "key": key}
}
