package loads

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
	dbtypes "github.com/royalstarlog/freightdesk-backend/pkg/db/types"
	"github.com/royalstarlog/freightdesk-backend/pkg/enums"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
	"github.com/royalstarlog/freightdesk-backend/pkg/logger"
)

type loadsRepository interface {
	Create(ctx context.Context, load *models.Load) (*models.Load, error)
	FindByID(ctx context.Context, id int64) (*models.Load, error)
	FindByLoadNo(ctx context.Context, loadNo string) (*models.Load, error)
	List(ctx context.Context) ([]models.Load, error)
	Update(ctx context.Context, id int64, load *models.Load) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status enums.LoadStatus) (int64, error)
	UpdateNotes(ctx context.Context, id int64, notes string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type documentStore interface {
	Delete(loadNo string) error
}

// Service exposes load CRUD semantics, including business-key lookup and
// best-effort document cleanup on delete.
type Service interface {
	CreateLoad(ctx context.Context, input Input) (*models.Load, error)
	GetLoad(ctx context.Context, id int64) (*models.Load, error)
	GetLoadByLoadNo(ctx context.Context, loadNo string) (*models.Load, error)
	ListLoads(ctx context.Context) ([]models.Load, error)
	UpdateLoad(ctx context.Context, id int64, input Input) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) (int64, error)
	UpdateNotes(ctx context.Context, id int64, notes string) (int64, error)
	DeleteLoad(ctx context.Context, id int64) (int64, error)
}

// Input holds the mutable load fields.
type Input struct {
	LoadNo       string
	Customer     string
	PickUpCount  int
	DropOffCount int
	LoadStatus   string
	PickUps      []dbtypes.Stop
	DropOffs     []dbtypes.Stop
	Notes        string
}

type service struct {
	repo loadsRepository
	docs documentStore
	logg *logger.Logger
}

// NewService builds a load service backed by the provided repository and
// document store.
func NewService(repo loadsRepository, docs documentStore, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("load repository required")
	}
	if docs == nil {
		return nil, fmt.Errorf("document store required")
	}
	return &service{repo: repo, docs: docs, logg: logg}, nil
}

func (s *service) CreateLoad(ctx context.Context, input Input) (*models.Load, error) {
	load, err := buildLoad(input)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, load)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create load")
	}
	return created, nil
}

func (s *service) GetLoad(ctx context.Context, id int64) (*models.Load, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "load not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup load")
	}
	return row, nil
}

func (s *service) GetLoadByLoadNo(ctx context.Context, loadNo string) (*models.Load, error) {
	if strings.TrimSpace(loadNo) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "load_no is required")
	}

	row, err := s.repo.FindByLoadNo(ctx, strings.TrimSpace(loadNo))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "load not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup load by load_no")
	}
	return row, nil
}

func (s *service) ListLoads(ctx context.Context) ([]models.Load, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list loads")
	}
	return rows, nil
}

func (s *service) UpdateLoad(ctx context.Context, id int64, input Input) (int64, error) {
	load, err := buildLoad(input)
	if err != nil {
		return 0, err
	}

	changed, err := s.repo.Update(ctx, id, load)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update load")
	}
	return changed, nil
}

func (s *service) UpdateStatus(ctx context.Context, id int64, status string) (int64, error) {
	parsed, err := enums.ParseLoadStatus(status)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid load status")
	}

	changed, err := s.repo.UpdateStatus(ctx, id, parsed)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update load status")
	}
	return changed, nil
}

func (s *service) UpdateNotes(ctx context.Context, id int64, notes string) (int64, error) {
	changed, err := s.repo.UpdateNotes(ctx, id, notes)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update load notes")
	}
	return changed, nil
}

// DeleteLoad removes the row, then tries to remove the generated
// rate-confirmation document. Document cleanup is best-effort: a failure is
// logged but does not fail the request.
func (s *service) DeleteLoad(ctx context.Context, id int64) (int64, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup load")
	}

	changed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete load")
	}

	if row != nil && row.LoadNo != "" {
		if err := s.docs.Delete(row.LoadNo); err != nil && s.logg != nil {
			ctx = s.logg.WithLoadNo(ctx, row.LoadNo)
			s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "load.document_cleanup_failed")
		}
	}
	return changed, nil
}

func buildLoad(input Input) (*models.Load, error) {
	if strings.TrimSpace(input.LoadNo) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "load_no is required")
	}
	if strings.TrimSpace(input.Customer) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "customer is required")
	}
	if input.PickUpCount < 0 || input.DropOffCount < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "stop counts must not be negative")
	}

	status, err := enums.ParseLoadStatus(input.LoadStatus)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid load status")
	}

	if err := validateStops("pick_ups", input.PickUps); err != nil {
		return nil, err
	}
	if err := validateStops("drop_offs", input.DropOffs); err != nil {
		return nil, err
	}

	return &models.Load{
		LoadNo:       strings.TrimSpace(input.LoadNo),
		Customer:     strings.TrimSpace(input.Customer),
		PickUpCount:  input.PickUpCount,
		DropOffCount: input.DropOffCount,
		LoadStatus:   status,
		PickUps:      dbtypes.StopList(input.PickUps),
		DropOffs:     dbtypes.StopList(input.DropOffs),
		Notes:        input.Notes,
	}, nil
}

func validateStops(field string, stops []dbtypes.Stop) error {
	for i, stop := range stops {
		if strings.TrimSpace(stop.Address) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s[%d].address is required", field, i))
		}
		if strings.TrimSpace(stop.City) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s[%d].city is required", field, i))
		}
	}
	return nil
}
