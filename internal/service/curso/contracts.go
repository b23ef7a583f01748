//go:generate mockgen -source=contracts.go -destination=mocks_test.go -package=curso_test

package curso

import (
	"context"

	"service-cursos/internal/domain"
)

// cursoRepository is the storage collaborator behind the curso use cases.
// FindByID returns nil, nil when the record does not exist.
type cursoRepository interface {
	Insert(ctx context.Context, c *domain.Curso) (*domain.Curso, error)
	FindByID(ctx context.Context, id int64) (*domain.Curso, error)
	Replace(ctx context.Context, id int64, c *domain.Curso) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
	Page(ctx context.Context, offset, limit int) ([]domain.Curso, error)
}

type recordValidator interface {
	Struct(s any) error
}
