package shippers

import (
	"context"

	"gorm.io/gorm"

	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
)

// Repository exposes shipper persistence operations. Creation goes through a
// raw parameterized statement so the discriminated column set stays explicit;
// reads and updates use the ORM like every other entity.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a shipper repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert executes a prepared insert statement and returns the generated id.
func (r *Repository) Insert(ctx context.Context, statement string, params []any) (int64, error) {
	var id int64
	if err := r.db.WithContext(ctx).Raw(statement, params...).Scan(&id).Error; err != nil {
		return 0, err
	}
	return id, nil
}

// FindByID fetches a single shipper.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Shipper, error) {
	var row models.Shipper
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns every shipper ordered by insertion.
func (r *Repository) List(ctx context.Context) ([]models.Shipper, error) {
	var rows []models.Shipper
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update rewrites the provided columns and reports how many rows changed.
func (r *Repository) Update(ctx context.Context, id int64, columns map[string]any) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Shipper{}).
		Where("id = ?", id).
		Updates(columns)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes the shipper row and reports how many rows changed.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Shipper{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
