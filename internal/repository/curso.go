package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"service-cursos/internal/domain"
)

const cursosTable = "cursos"

var cursoColumns = []string{
	"id", "nome", "descricao", "url", "canal", "carga_horaria", "data_publicacao",
}

// CursoRepo stores cursos in PostgreSQL.
type CursoRepo struct {
	db *pgxpool.Pool
	sb sq.StatementBuilderType
}

// NewCursoRepo creates a new CursoRepo.
func NewCursoRepo(db *pgxpool.Pool) *CursoRepo {
	return &CursoRepo{
		db: db,
		sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Insert stores c and returns the stored record with its generated id.
func (r *CursoRepo) Insert(ctx context.Context, c *domain.Curso) (*domain.Curso, error) {
	q, args, err := r.sb.Insert(cursosTable).
		Columns(cursoColumns[1:]...).
		Values(c.Nome, c.Descricao, c.URL, c.Canal, c.CargaHoraria, c.DataPublicacao.Time).
		Suffix("RETURNING " + strings.Join(cursoColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert curso: %w", err)
	}
	out, err := scanCurso(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		return nil, fmt.Errorf("insert curso: %w", err)
	}
	return out, nil
}

// FindByID returns the curso with the given id, or nil when there is none.
func (r *CursoRepo) FindByID(ctx context.Context, id int64) (*domain.Curso, error) {
	q, args, err := r.sb.Select(cursoColumns...).
		From(cursosTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find curso: %w", err)
	}
	c, err := scanCurso(r.db.QueryRow(ctx, q, args...))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("find curso %d: %w", id, err)
	}
	return c, nil
}

// Replace overwrites every field of curso id with c. It reports whether a row was affected.
func (r *CursoRepo) Replace(ctx context.Context, id int64, c *domain.Curso) (bool, error) {
	q, args, err := r.sb.Update(cursosTable).
		Set("nome", c.Nome).
		Set("descricao", c.Descricao).
		Set("url", c.URL).
		Set("canal", c.Canal).
		Set("carga_horaria", c.CargaHoraria).
		Set("data_publicacao", c.DataPublicacao.Time).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build replace curso: %w", err)
	}
	ct, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return false, fmt.Errorf("replace curso %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Delete removes curso id. It reports whether a row was affected.
func (r *CursoRepo) Delete(ctx context.Context, id int64) (bool, error) {
	q, args, err := r.sb.Delete(cursosTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete curso: %w", err)
	}
	ct, err := r.db.Exec(ctx, q, args...)
	if err != nil {
		return false, fmt.Errorf("delete curso %d: %w", id, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Count returns the number of stored cursos.
func (r *CursoRepo) Count(ctx context.Context) (int64, error) {
	q, args, err := r.sb.Select("count(*)").From(cursosTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count cursos: %w", err)
	}
	var n int64
	if err := r.db.QueryRow(ctx, q, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count cursos: %w", err)
	}
	return n, nil
}

// Page returns up to limit cursos ordered by id, skipping the first offset.
func (r *CursoRepo) Page(ctx context.Context, offset, limit int) ([]domain.Curso, error) {
	q, args, err := r.sb.Select(cursoColumns...).
		From(cursosTable).
		OrderBy("id ASC").
		Offset(uint64(offset)).
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build page cursos: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("page cursos: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Curso, 0, limit)
	for rows.Next() {
		c, err := scanCurso(rows)
		if err != nil {
			return nil, fmt.Errorf("scan curso: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("page cursos: %w", err)
	}
	return out, nil
}

func scanCurso(row pgx.Row) (*domain.Curso, error) {
	var (
		c   domain.Curso
		pub time.Time
	)
	if err := row.Scan(&c.ID, &c.Nome, &c.Descricao, &c.URL, &c.Canal, &c.CargaHoraria, &pub); err != nil {
		return nil, err
	}
	c.DataPublicacao = domain.DateOf(pub)
	return &c, nil
}

