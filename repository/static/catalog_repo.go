package static

import (
	"context"

	"github.com/fastygo/petbuddy/domain"
	"github.com/fastygo/petbuddy/repository"
)

type catalogRepository struct {
	doc *Document
}

// NewCatalogRepository serves doc. Returned slices are copies; the document is never mutated.
func NewCatalogRepository(doc *Document) repository.CatalogRepository {
	if doc == nil {
		doc = &Document{}
	}
	return &catalogRepository{doc: doc}
}

func (r *catalogRepository) Employees(ctx context.Context) ([]domain.Employee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.Employee, len(r.doc.Employees))
	copy(out, r.doc.Employees)
	return out, nil
}

func (r *catalogRepository) Plans(ctx context.Context) ([]domain.ProductPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.ProductPlan, len(r.doc.Plans))
	for i, p := range r.doc.Plans {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out, nil
}
