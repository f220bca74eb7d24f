package dumpster

import (
	"context"
	"fmt"

	"rolloff/internal/entities"
)

type Service struct {
	repository Repository
}

func New(repository Repository) *Service {
	return &Service{
		repository: repository,
	}
}

func (s *Service) CreateDumpster(ctx context.Context, dumpsterModify entities.DumpsterModify) (int64, error) {
	if dumpsterModify.Name == nil {
		return 0, fmt.Errorf("%w: name", ErrMissingRequiredFields)
	}
	if !isValidName(*dumpsterModify.Name) {
		return 0, ErrInvalidName
	}
	if dumpsterModify.Status != nil && !isValidStatus(*dumpsterModify.Status) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidStatus, *dumpsterModify.Status)
	}

	id, err := s.repository.Create(ctx, dumpsterModify)
	if err != nil {
		return 0, fmt.Errorf("create dumpster: %w", err)
	}

	return id, nil
}

// UpdateDumpster edits the fleet record. Status changes are refused while an
// order holds the dumpster; the release path clears that first.
func (s *Service) UpdateDumpster(ctx context.Context, dumpsterModify entities.DumpsterModify) (*entities.Dumpster, error) {
	if dumpsterModify.ID == nil || *dumpsterModify.ID <= 0 {
		return nil, ErrInvalidDumpsterID
	}
	if dumpsterModify.Name != nil && !isValidName(*dumpsterModify.Name) {
		return nil, ErrInvalidName
	}
	if dumpsterModify.Status != nil && !isValidStatus(*dumpsterModify.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *dumpsterModify.Status)
	}

	if dumpsterModify.Status != nil {
		current, err := s.repository.GetByID(ctx, *dumpsterModify.ID)
		if err != nil {
			return nil, fmt.Errorf("get dumpster: %w", err)
		}
		if current.CurrentOrderID != nil {
			return nil, fmt.Errorf("%w: order %d", ErrDumpsterInUse, *current.CurrentOrderID)
		}
	}

	updated, err := s.repository.Update(ctx, dumpsterModify)
	if err != nil {
		return nil, fmt.Errorf("update dumpster: %w", err)
	}

	return updated, nil
}

func (s *Service) GetDumpster(ctx context.Context, id int64) (*entities.Dumpster, error) {
	if id <= 0 {
		return nil, ErrInvalidDumpsterID
	}

	dumpster, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get dumpster: %w", err)
	}

	return dumpster, nil
}

func (s *Service) GetDumpsters(ctx context.Context) ([]entities.Dumpster, error) {
	dumpsters, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get dumpsters: %w", err)
	}

	return dumpsters, nil
}
