package agents

import (
	"context"

	"gorm.io/gorm"

	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
)

// Repository exposes agent persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an agent repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new agent row.
func (r *Repository) Create(ctx context.Context, agent *models.Agent) (*models.Agent, error) {
	if err := r.db.WithContext(ctx).Create(agent).Error; err != nil {
		return nil, err
	}
	return agent, nil
}

// FindByID fetches a single agent.
func (r *Repository) FindByID(ctx context.Context, id int64) (*models.Agent, error) {
	var row models.Agent
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// List returns every agent ordered by insertion.
func (r *Repository) List(ctx context.Context) ([]models.Agent, error) {
	var rows []models.Agent
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Update rewrites the mutable columns and reports how many rows changed.
func (r *Repository) Update(ctx context.Context, id int64, agent *models.Agent) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Agent{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":  agent.Name,
			"phone": agent.Phone,
			"email": agent.Email,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes the agent row and reports how many rows changed.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Agent{}, id)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
