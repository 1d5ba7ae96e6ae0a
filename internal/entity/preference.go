package entity

import "time"

// Preference is one namespaced key-value entry of the local preference store.
type Preference struct {
	Namespace string    `gorm:"primaryKey;size:64" json:"namespace"`
	Key       string    `gorm:"primaryKey;size:128" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the Preference model.
func (Preference) TableName() string {
	return "preferences"
}
