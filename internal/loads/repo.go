package loads

import (
	"context"

	"gorm.io/gorm"

	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
	"github.com/royalstarlog/freightdesk-backend/pkg/enums"
)

// Repository exposes load persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a load repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new load row.
func (r *Repository) Create(ctx context.Context, load *models.Load) (*models.Load, error) {
	if err := r.db.WithContext(ctx).Create(load).Error; err != nil {
		return nil, err
	}
	return load, nil
}

// FindByID fetches a single load.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Load, error) {
	var row models.Load
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByLoadNo fetches the newest load carrying the business load number.
func (r *Repository) FindByLoadNo(ctx context.Context, loadNo string) (*models.Load, error) {
	var row models.Load
	err := r.db.WithContext(ctx).
		Where("load_no = ?", loadNo).
		Order("id DESC").
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns every load ordered by insertion.
func (r *Repository) List(ctx context.Context) ([]models.Load, error) {
	var rows []models.Load
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update rewrites every mutable column, re-serializing the stop sequences,
// and reports how many rows changed.
func (r *Repository) Update(ctx context.Context, id int64, load *models.Load) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Load{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"load_no":        load.LoadNo,
			"customer":       load.Customer,
			"pick_up_count":  load.PickUpCount,
			"drop_off_count": load.DropOffCount,
			"load_status":    load.LoadStatus,
			"pick_ups":       load.PickUps,
			"drop_offs":      load.DropOffs,
			"notes":          load.Notes,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// UpdateStatus changes only the lifecycle status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status enums.LoadStatus) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Load{}).
		Where("id = ?", id).
		Update("load_status", status)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// UpdateNotes changes only the free-form notes.
func (r *Repository) UpdateNotes(ctx context.Context, id int64, notes string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Load{}).
		Where("id = ?", id).
		Update("notes", notes)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes the load row and reports how many rows changed.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Load{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
