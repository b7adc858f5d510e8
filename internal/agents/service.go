package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
)

type agentsRepository interface {
	Create(ctx context.Context, agent *models.Agent) (*models.Agent, error)
	FindByID(ctx context.Context, id int64) (*models.Agent, error)
	List(ctx context.Context) ([]models.Agent, error)
	Update(ctx context.Context, id int64, agent *models.Agent) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// Service exposes agent CRUD semantics.
type Service interface {
	CreateAgent(ctx context.Context, input Input) (*models.Agent, error)
	GetAgent(ctx context.Context, id int64) (*models.Agent, error)
	ListAgents(ctx context.Context) ([]models.Agent, error)
	UpdateAgent(ctx context.Context, id int64, input Input) (int64, error)
	DeleteAgent(ctx context.Context, id int64) (int64, error)
}

// Input holds the mutable agent fields.
type Input struct {
	Name  string
	Phone string
	Email string
}

type service struct {
	repo agentsRepository
}

// NewService builds an agent service backed by the provided repository.
func NewService(repo agentsRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("agent repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateAgent(ctx context.Context, input Input) (*models.Agent, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	created, err := s.repo.Create(ctx, &models.Agent{
		Name:  strings.TrimSpace(input.Name),
		Phone: strings.TrimSpace(input.Phone),
		Email: strings.TrimSpace(input.Email),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create agent")
	}
	return created, nil
}

func (s *service) GetAgent(ctx context.Context, id int64) (*models.Agent, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "agent not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup agent")
	}
	return row, nil
}

func (s *service) ListAgents(ctx context.Context) ([]models.Agent, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list agents")
	}
	return rows, nil
}

func (s *service) UpdateAgent(ctx context.Context, id int64, input Input) (int64, error) {
	changed, err := s.repo.Update(ctx, id, &models.Agent{
		Name:  strings.TrimSpace(input.Name),
		Phone: strings.TrimSpace(input.Phone),
		Email: strings.TrimSpace(input.Email),
	})
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update agent")
	}
	return changed, nil
}

func (s *service) DeleteAgent(ctx context.Context, id int64) (int64, error) {
	changed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete agent")
	}
	return changed, nil
}
