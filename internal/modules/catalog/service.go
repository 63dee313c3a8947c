package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"utilibook/internal/domain"
)

// Service manages the reference data everything else points at: branches,
// appointment types, and client records.
type Service struct {
	branches BranchRepository
	types    TypeRepository
	clients  ClientRepository
}

func NewService(branches BranchRepository, types TypeRepository, clients ClientRepository) *Service {
	return &Service{branches: branches, types: types, clients: clients}
}

func (s *Service) CreateBranch(ctx context.Context, req CreateBranchRequest) (*domain.Branch, error) {
	b := &domain.Branch{
		Code:    strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:    strings.TrimSpace(req.Name),
		Address: strings.TrimSpace(req.Address),
		Phone:   strings.TrimSpace(req.Phone),
		Active:  true,
	}
	if err := s.branches.Create(ctx, b); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCodeTaken
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) UpdateBranch(ctx context.Context, id int64, req UpdateBranchRequest) (*domain.Branch, error) {
	b, err := s.branches.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBranchNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		b.Name = strings.TrimSpace(*req.Name)
	}
	if req.Address != nil {
		b.Address = strings.TrimSpace(*req.Address)
	}
	if req.Phone != nil {
		b.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Active != nil {
		b.Active = *req.Active
	}

	if err := s.branches.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) ListBranches(ctx context.Context) ([]domain.Branch, error) {
	return s.branches.List(ctx)
}

func (s *Service) CreateType(ctx context.Context, req CreateTypeRequest) (*domain.AppointmentType, error) {
	t := &domain.AppointmentType{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Active:      true,
	}
	if err := s.types.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) ListTypes(ctx context.Context) ([]domain.AppointmentType, error) {
	return s.types.List(ctx)
}

// RegisterClient creates a client record keyed by its number. Registration is
// idempotent on the number: re-registering an existing client returns the
// stored record.
func (s *Service) RegisterClient(ctx context.Context, req RegisterClientRequest) (*domain.Client, bool, error) {
	number := strings.TrimSpace(req.ClientNumber)

	existing, err := s.clients.GetByNumber(ctx, number)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	c := &domain.Client{
		ClientNumber: number,
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		Active:       true,
	}
	if err := s.clients.Create(ctx, c); err != nil {
		return nil, false, err
	}
	return c, true, nil
}
