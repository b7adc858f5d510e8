package models

import "time"

// RateConfirmation holds the raw confirmation content for a load. At most one
// row exists per load number, enforced by the unique index.
type RateConfirmation struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	LoadNo    string    `gorm:"column:load_no;uniqueIndex:ux_rate_confirmations_load_no"`
	Content   string    `gorm:"column:rate_con_content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
