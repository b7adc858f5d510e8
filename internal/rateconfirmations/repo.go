package rateconfirmations

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
)

// Repository exposes rate-confirmation persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a rate-confirmation repository tied to the
// provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts the row or, when the load number already has one, replaces
// its content in place. The unique index on load_no makes this safe under
// concurrent saves for the same load.
func (r *Repository) Upsert(ctx context.Context, row *models.RateConfirmation) (*models.RateConfirmation, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "load_no"}},
			DoUpdates: clause.Assignments(map[string]any{
				"rate_con_content": row.Content,
				"updated_at":       gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).
		Create(row).Error
	if err != nil {
		return nil, err
	}
	return row, nil
}

// FindByLoadNo fetches the confirmation for the load number.
func (r *Repository) FindByLoadNo(ctx context.Context, loadNo string) (*models.RateConfirmation, error) {
	var row models.RateConfirmation
	if err := r.db.WithContext(ctx).Where("load_no = ?", loadNo).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns every confirmation ordered by insertion.
func (r *Repository) List(ctx context.Context) ([]models.RateConfirmation, error) {
	var rows []models.RateConfirmation
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteByLoadNo removes the confirmation row and reports how many rows
// changed.
func (r *Repository) DeleteByLoadNo(ctx context.Context, loadNo string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("load_no = ?", loadNo).
		Delete(&models.RateConfirmation{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
