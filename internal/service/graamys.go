package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"clubsite/internal/auth"
	"clubsite/internal/graamys"
	"clubsite/internal/model"
	"clubsite/internal/repository"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

// GraamysService defines the use cases of the Graamys nomination feature.
type GraamysService interface {
	// Submit stores one ballot. ID and CreatedAt on the input are ignored.
	Submit(ctx context.Context, ballot model.Nomination) (*model.Nomination, error)

	// Results returns the top nominees per category. The password is checked
	// before any data is read.
	Results(ctx context.Context, password string) (*graamys.Results, error)

	// Stats returns raw value frequencies for every nominee field.
	Stats(ctx context.Context) (graamys.Stats, error)
}

type graamysService struct {
	repo            repository.NominationRepository
	resultsPassword string
	now             func() time.Time
}

// NewGraamysService constructs a GraamysService. resultsPassword gates Results;
// when empty, Results always fails with ErrUnauthorized.
func NewGraamysService(repo repository.NominationRepository, resultsPassword string) GraamysService {
	return &graamysService{repo: repo, resultsPassword: resultsPassword, now: time.Now}
}

func (s *graamysService) Submit(ctx context.Context, ballot model.Nomination) (*model.Nomination, error) {
	ballot.ID = uuid.New().String()
	ballot.CreatedAt = s.now().UTC()

	stored, err := s.repo.Create(ctx, &ballot)
	if err != nil {
		return nil, fmt.Errorf("save nomination: %w", err)
	}
	return stored, nil
}

func (s *graamysService) Results(ctx context.Context, password string) (*graamys.Results, error) {
	if !auth.Matches(s.resultsPassword, password) {
		return nil, ErrUnauthorized
	}
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list nominations: %w", err)
	}
	res := graamys.TallyAll(records)
	return &res, nil
}

func (s *graamysService) Stats(ctx context.Context) (graamys.Stats, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list nominations: %w", err)
	}
	return graamys.Aggregate(records), nil
}
