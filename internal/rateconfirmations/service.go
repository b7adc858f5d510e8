package rateconfirmations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/royalstarlog/freightdesk-backend/pkg/db/models"
	pkgerrors "github.com/royalstarlog/freightdesk-backend/pkg/errors"
)

type rateConfirmationsRepository interface {
	Upsert(ctx context.Context, row *models.RateConfirmation) (*models.RateConfirmation, error)
	FindByLoadNo(ctx context.Context, loadNo string) (*models.RateConfirmation, error)
	List(ctx context.Context) ([]models.RateConfirmation, error)
	DeleteByLoadNo(ctx context.Context, loadNo string) (int64, error)
}

type converter interface {
	Convert(content string) ([]byte, error)
}

type documentStore interface {
	Save(loadNo string, data []byte) (string, error)
	Path(loadNo string) (string, error)
	Delete(loadNo string) error
}

// Service exposes rate-confirmation save and document retrieval semantics.
type Service interface {
	SaveRateConfirmation(ctx context.Context, loadNo, content string) (*models.RateConfirmation, error)
	SaveDocument(ctx context.Context, loadNo string, data []byte) (string, error)
	GetRateConfirmation(ctx context.Context, loadNo string) (*models.RateConfirmation, error)
	ListRateConfirmations(ctx context.Context) ([]models.RateConfirmation, error)
	DocumentPath(ctx context.Context, loadNo string) (string, error)
	DeleteRateConfirmation(ctx context.Context, loadNo string) (int64, error)
}

type service struct {
	repo rateConfirmationsRepository
	conv converter
	docs documentStore
}

// NewService builds a rate-confirmation service backed by the provided
// repository, converter, and document store.
func NewService(repo rateConfirmationsRepository, conv converter, docs documentStore) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("rate confirmation repository required")
	}
	if conv == nil {
		return nil, fmt.Errorf("document converter required")
	}
	if docs == nil {
		return nil, fmt.Errorf("document store required")
	}
	return &service{repo: repo, conv: conv, docs: docs}, nil
}

// SaveRateConfirmation renders the document, writes it to the document area,
// then upserts the content row. At most one row per load number survives no
// matter how many saves race.
func (s *service) SaveRateConfirmation(ctx context.Context, loadNo, content string) (*models.RateConfirmation, error) {
	trimmed := strings.TrimSpace(loadNo)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "load_no is required")
	}
	if strings.TrimSpace(content) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "content is required")
	}

	data, err := s.conv.Convert(content)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "render rate confirmation document")
	}
	if _, err := s.docs.Save(trimmed, data); err != nil {
		return nil, err
	}

	row, err := s.repo.Upsert(ctx, &models.RateConfirmation{LoadNo: trimmed, Content: content})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save rate confirmation")
	}
	return row, nil
}

// SaveDocument stores pre-rendered document bytes for the load without
// touching the content row, for callers that render client-side.
func (s *service) SaveDocument(ctx context.Context, loadNo string, data []byte) (string, error) {
	trimmed := strings.TrimSpace(loadNo)
	if trimmed == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "load_no is required")
	}
	if len(data) == 0 {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "document content is required")
	}
	return s.docs.Save(trimmed, data)
}

func (s *service) GetRateConfirmation(ctx context.Context, loadNo string) (*models.RateConfirmation, error) {
	row, err := s.repo.FindByLoadNo(ctx, strings.TrimSpace(loadNo))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "rate confirmation not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup rate confirmation")
	}
	return row, nil
}

func (s *service) ListRateConfirmations(ctx context.Context) ([]models.RateConfirmation, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list rate confirmations")
	}
	return rows, nil
}

func (s *service) DocumentPath(ctx context.Context, loadNo string) (string, error) {
	return s.docs.Path(strings.TrimSpace(loadNo))
}

// DeleteRateConfirmation removes the row and its generated document.
func (s *service) DeleteRateConfirmation(ctx context.Context, loadNo string) (int64, error) {
	trimmed := strings.TrimSpace(loadNo)
	if trimmed == "" {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "load_no is required")
	}

	changed, err := s.repo.DeleteByLoadNo(ctx, trimmed)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete rate confirmation")
	}
	if err := s.docs.Delete(trimmed); err != nil {
		return changed, err
	}
	return changed, nil
}
