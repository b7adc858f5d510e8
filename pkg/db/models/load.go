package models

import (
	"time"

	dbtypes "github.com/royalstarlog/freightdesk-backend/pkg/db/types"
	"github.com/royalstarlog/freightdesk-backend/pkg/enums"
)

// Load is a freight load with ordered pick-up and drop-off stop sequences.
// The stop sequences are serialized JSON text and deserialize on every read.
type Load struct {
	ID           int64            `gorm:"column:id;primaryKey;autoIncrement"`
	LoadNo       string           `gorm:"column:load_no;index"`
	Customer     string           `gorm:"column:customer"`
	PickUpCount  int              `gorm:"column:pick_up_count"`
	DropOffCount int              `gorm:"column:drop_off_count"`
	LoadStatus   enums.LoadStatus `gorm:"column:load_status"`
	PickUps      dbtypes.StopList `gorm:"column:pick_ups;type:text"`
	DropOffs     dbtypes.StopList `gorm:"column:drop_offs;type:text"`
	Notes        string           `gorm:"column:notes"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
