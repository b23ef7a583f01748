// Package pagination holds page request parsing, bounds checking and the
// page envelope returned by listing operations.
//
// A collection of N records read in pages of size S has ceil(N/S) pages.
// Requesting a page beyond that count is an error, except page 1 of an empty
// collection, which yields an empty page with zero total pages.
package pagination

import (
	"fmt"
	"net/url"
	"strconv"

	"service-cursos/internal/apperr"
)

// Query parameter names.
const (
	ParamPage     = "pagina"
	ParamPageSize = "tamanhoPagina"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 10
)

// Config holds listing defaults, applied before validation.
type Config struct {
	DefaultPage     int
	DefaultPageSize int
	MaxPageSize     int
}

// DefaultConfig returns page 1, page size 10, maximum page size 10.
func DefaultConfig() Config {
	return Config{
		DefaultPage:     defaultPage,
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
	}
}

// Request is a requested page number and page size.
type Request struct {
	Page     int
	PageSize int
}

// Offset returns the number of records preceding the requested page.
func (r Request) Offset() int {
	if r.Page < 1 {
		return 0
	}
	return (r.Page - 1) * r.PageSize
}

// Parse reads pagina and tamanhoPagina from q. Absent or empty parameters
// take their defaults from c; non-integer values are an invalid argument.
func (c Config) Parse(q url.Values) (Request, error) {
	page, err := intParam(q, ParamPage, c.DefaultPage)
	if err != nil {
		return Request{}, err
	}
	size, err := intParam(q, ParamPageSize, c.DefaultPageSize)
	if err != nil {
		return Request{}, err
	}
	return Request{Page: page, PageSize: size}, nil
}

// Validate checks the request against positivity and the maximum page size.
func (c Config) Validate(r Request) error {
	if r.Page <= 0 || r.PageSize <= 0 {
		return apperr.InvalidArgument(
			fmt.Sprintf("Os parâmetros %s e %s devem ser maiores que zero.", ParamPage, ParamPageSize))
	}
	if c.MaxPageSize > 0 && r.PageSize > c.MaxPageSize {
		return apperr.InvalidArgument(
			fmt.Sprintf("O tamanho máximo de página permitido é %d.", c.MaxPageSize))
	}
	return nil
}

// TotalPages returns ceil(total/pageSize), or 0 for a non-positive page size.
func TotalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}
	size := int64(pageSize)
	return int((total + size - 1) / size)
}

// CheckBounds fails when r.Page lies beyond totalPages.
func CheckBounds(r Request, totalPages int) error {
	if r.Page > totalPages && !(totalPages == 0 && r.Page == 1) {
		return apperr.InvalidArgument("A página solicitada não existe.")
	}
	return nil
}

// Page is one page of a listing.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalPages int
	TotalItems int64
}

// HasPrevious reports whether a page precedes this one.
func (p Page[T]) HasPrevious() bool { return p.Number > 1 }

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool { return p.Number < p.TotalPages }

func intParam(q url.Values, name string, def int) (int, error) {
	s := q.Get(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperr.InvalidArgument(
			fmt.Sprintf("O parâmetro %s deve ser um número inteiro.", name))
	}
	return v, nil
}
