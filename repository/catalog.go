package repository

import (
	"context"

	"github.com/fastygo/petbuddy/domain"
)

// CatalogRepository exposes the read-only reference data.
type CatalogRepository interface {
	Employees(ctx context.Context) ([]domain.Employee, error)
	Plans(ctx context.Context) ([]domain.ProductPlan, error)
}
