package status

import (
	"context"

	"github.com/kvbuilders/app/internal/model"
	"github.com/kvbuilders/app/internal/repo"
)

// Service records and lists health-check pings from monitoring clients.
type Service interface {
	Create(ctx context.Context, clientName string) (*model.StatusCheck, error)
	List(ctx context.Context) ([]model.StatusCheck, error)
}

type statusService struct {
	checks repo.StatusCheckRepo
}

func New(checks repo.StatusCheckRepo) Service {
	return &statusService{checks: checks}
}

func (s *statusService) Create(ctx context.Context, clientName string) (*model.StatusCheck, error) {
	sc := model.NewStatusCheck(clientName)
	if err := s.checks.Insert(ctx, sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *statusService) List(ctx context.Context) ([]model.StatusCheck, error) {
	return s.checks.List(ctx)
}
