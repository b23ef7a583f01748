package handlers

import (
	"context"

	"service-cursos/internal/domain"
	"service-cursos/internal/pagination"
	"service-cursos/internal/service/curso"
)

type cursoUsecase interface {
	Create(ctx context.Context, c *domain.Curso) (*domain.Curso, error)
	Get(ctx context.Context, id int64) (*domain.Curso, error)
	Update(ctx context.Context, id int64, c *domain.Curso) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, req pagination.Request) (pagination.Page[domain.Curso], error)
}

// NewCursoUsecase exposes a curso.Service to the HTTP layer.
func NewCursoUsecase(svc *curso.Service) cursoUsecase {
	return svc
}
