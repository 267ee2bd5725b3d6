package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/petbuddy/domain"
	"github.com/fastygo/petbuddy/repository"
	"github.com/fastygo/petbuddy/usecase/site"
)

type UseCase struct {
	repo   repository.CatalogRepository
	logger *zap.Logger
}

func New(repo repository.CatalogRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		repo:   repo,
		logger: logger,
	}
}

func (uc *UseCase) Employees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := uc.repo.Employees(ctx)
	if err != nil {
		uc.logger.Error("employee list unavailable", zap.Error(err))
		return nil, err
	}
	return employees, nil
}

func (uc *UseCase) Plans(ctx context.Context) ([]domain.ProductPlan, error) {
	plans, err := uc.repo.Plans(ctx)
	if err != nil {
		uc.logger.Error("product plans unavailable", zap.Error(err))
		return nil, err
	}
	return plans, nil
}

// Search filters the directory without touching any visitor state.
func (uc *UseCase) Search(ctx context.Context, term string) ([]domain.Employee, error) {
	employees, err := uc.Employees(ctx)
	if err != nil {
		return nil, err
	}
	matches := site.FilterEmployees(employees, term)
	uc.logger.Debug("directory searched", zap.String("term", term), zap.Int("matches", len(matches)))
	return matches, nil
}
