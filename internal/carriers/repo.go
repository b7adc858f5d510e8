package carriers

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
)

// Repository exposes carrier persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a carrier repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new carrier row.
func (r *Repository) Create(ctx context.Context, carrier *models.Carrier) (*models.Carrier, error) {
	if err := r.db.WithContext(ctx).Create(carrier).Error; err != nil {
		return nil, err
	}
	return carrier, nil
}

// FindByID fetches a single carrier.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Carrier, error) {
	var row models.Carrier
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// ExistsByMCNumber reports whether any carrier already carries the MC number.
func (r *Repository) ExistsByMCNumber(ctx context.Context, mcNumber string) (bool, error) {
	var row models.Carrier
	err := r.db.WithContext(ctx).
		Select("id").
		Where("mc_number = ?", mcNumber).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List returns every carrier ordered by insertion.
func (r *Repository) List(ctx context.Context) ([]models.Carrier, error) {
	var rows []models.Carrier
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update rewrites the provided columns and reports how many rows changed.
func (r *Repository) Update(ctx context.Context, id int64, columns map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Carrier{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes the carrier row and reports how many rows changed.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Carrier{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
