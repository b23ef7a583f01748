package curso

import (
	"context"
	"time"

	"service-cursos/internal/apperr"
	"service-cursos/internal/domain"
	"service-cursos/internal/logx"
	"service-cursos/internal/pagination"
)

const (
	msgInvalidID  = "O id deve ser um número maior que zero."
	msgIDMismatch = "O id informado na URL é diferente do id informado no corpo da requisição."
	msgNotFound   = "Curso não encontrado."
)

// Service implements the curso use cases on top of a repository.
type Service struct {
	repo             cursoRepository
	validator        recordValidator
	paging           pagination.Config
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates a curso Service. A non-positive timeout defaults to 3s.
func NewService(
	repo cursoRepository,
	validator recordValidator,
	paging pagination.Config,
	timeout time.Duration,
	logger logx.Logger,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             repo,
		validator:        validator,
		paging:           paging,
		operationTimeout: timeout,
		logger:           logger,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Create validates c and persists it. The stored record carries the generated id.
func (s *Service) Create(ctx context.Context, c *domain.Curso) (*domain.Curso, error) {
	if err := s.validator.Struct(c); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	created, err := s.repo.Insert(ctx, c)
	if err != nil {
		return nil, err
	}
	s.logger.Info("curso created", logx.Int64("id", created.ID))
	return created, nil
}

// Get returns curso id.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Curso, error) {
	if id <= 0 {
		return nil, apperr.InvalidArgument(msgInvalidID)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.NotFound(msgNotFound)
	}
	return c, nil
}

// Update replaces curso id with c. The body id must equal id.
func (s *Service) Update(ctx context.Context, id int64, c *domain.Curso) error {
	if err := s.validator.Struct(c); err != nil {
		return err
	}
	if c.ID != id {
		return apperr.IDMismatch(msgIDMismatch)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.Replace(ctx, id, c)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound(msgNotFound)
	}
	s.logger.Info("curso replaced", logx.Int64("id", id))
	return nil
}

// Delete removes curso id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperr.InvalidArgument(msgInvalidID)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.NotFound(msgNotFound)
	}
	s.logger.Info("curso deleted", logx.Int64("id", id))
	return nil
}

// List returns the requested page of cursos ordered by id.
func (s *Service) List(ctx context.Context, req pagination.Request) (pagination.Page[domain.Curso], error) {
	if err := s.paging.Validate(req); err != nil {
		return pagination.Page[domain.Curso]{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	total, err := s.repo.Count(ctx)
	if err != nil {
		return pagination.Page[domain.Curso]{}, err
	}
	totalPages := pagination.TotalPages(total, req.PageSize)
	if err := pagination.CheckBounds(req, totalPages); err != nil {
		return pagination.Page[domain.Curso]{}, err
	}

	items := []domain.Curso{}
	if total > 0 {
		items, err = s.repo.Page(ctx, req.Offset(), req.PageSize)
		if err != nil {
			return pagination.Page[domain.Curso]{}, err
		}
	}
	return pagination.Page[domain.Curso]{
		Items:      items,
		Number:     req.Page,
		Size:       req.PageSize,
		TotalPages: totalPages,
		TotalItems: total,
	}, nil
}
