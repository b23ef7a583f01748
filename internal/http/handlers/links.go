package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"service-cursos/internal/pagination"
)

// Pagination response headers.
const (
	HeaderTotalPages   = "X-Pagination-TotalPages"
	HeaderPreviousPage = "X-Pagination-PreviousPage"
	HeaderNextPage     = "X-Pagination-NextPage"
)

// pageLink returns the absolute URL of the current route with pagina and
// tamanhoPagina replaced. Other query parameters are kept.
func pageLink(r *http.Request, page, size int) string {
	q := r.URL.Query()
	q.Set(pagination.ParamPage, strconv.Itoa(page))
	q.Set(pagination.ParamPageSize, strconv.Itoa(size))

	u := url.URL{
		Scheme:   requestScheme(r),
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}

func setPaginationHeaders[T any](w http.ResponseWriter, r *http.Request, p pagination.Page[T]) {
	h := w.Header()
	h.Set(HeaderTotalPages, strconv.Itoa(p.TotalPages))
	if p.HasPrevious() {
		h.Set(HeaderPreviousPage, pageLink(r, p.Number-1, p.Size))
	}
	if p.HasNext() {
		h.Set(HeaderNextPage, pageLink(r, p.Number+1, p.Size))
	}
}
