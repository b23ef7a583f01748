package pagination_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"service-cursos/internal/apperr"
	"service-cursos/internal/pagination"
)

func TestConfig_Parse_Defaults(t *testing.T) {
	t.Parallel()

	req, err := pagination.DefaultConfig().Parse(url.Values{})
	require.NoError(t, err)
	require.Equal(t, pagination.Request{Page: 1, PageSize: 10}, req)
}

func TestConfig_Parse_Values(t *testing.T) {
	t.Parallel()

	q := url.Values{"pagina": {"3"}, "tamanhoPagina": {"5"}}
	req, err := pagination.DefaultConfig().Parse(q)
	require.NoError(t, err)
	require.Equal(t, pagination.Request{Page: 3, PageSize: 5}, req)
}

func TestConfig_Parse_Malformed(t *testing.T) {
	t.Parallel()

	for _, q := range []url.Values{
		{"pagina": {"um"}},
		{"tamanhoPagina": {"1.5"}},
	} {
		_, err := pagination.DefaultConfig().Parse(q)
		require.ErrorIs(t, err, apperr.ErrInvalidArgument, q.Encode())
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	cfg := pagination.DefaultConfig()
	cases := []struct {
		name string
		req  pagination.Request
		ok   bool
	}{
		{"defaults", pagination.Request{Page: 1, PageSize: 10}, true},
		{"zero page", pagination.Request{Page: 0, PageSize: 10}, false},
		{"negative page", pagination.Request{Page: -2, PageSize: 10}, false},
		{"zero size", pagination.Request{Page: 1, PageSize: 0}, false},
		{"negative size", pagination.Request{Page: 1, PageSize: -1}, false},
		{"size above max", pagination.Request{Page: 1, PageSize: 11}, false},
		{"size at max", pagination.Request{Page: 99, PageSize: 10}, true},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := cfg.Validate(tc.req)
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, apperr.ErrInvalidArgument)
		})
	}
}

func TestConfig_Validate_MaxMessage(t *testing.T) {
	t.Parallel()

	err := pagination.Config{MaxPageSize: 25}.Validate(pagination.Request{Page: 1, PageSize: 26})
	require.Equal(t, "O tamanho máximo de página permitido é 25.", apperr.Message(err, ""))
}

func TestTotalPages(t *testing.T) {
	t.Parallel()

	cases := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{30, 10, 3},
		{25, 1, 25},
		{5, 0, 0},
	}
	for _, tc := range cases {
		tc := tc
		require.Equal(t, tc.want, pagination.TotalPages(tc.total, tc.size), "total=%d size=%d", tc.total, tc.size)
	}
}

func TestCheckBounds(t *testing.T) {
	t.Parallel()

	require.NoError(t, pagination.CheckBounds(pagination.Request{Page: 3, PageSize: 10}, 3))
	require.ErrorIs(t, pagination.CheckBounds(pagination.Request{Page: 4, PageSize: 10}, 3), apperr.ErrInvalidArgument)
}

// An empty collection accepts page 1 and yields an empty page.
func TestCheckBounds_EmptyCollection(t *testing.T) {
	t.Parallel()

	require.NoError(t, pagination.CheckBounds(pagination.Request{Page: 1, PageSize: 10}, 0))
	require.ErrorIs(t, pagination.CheckBounds(pagination.Request{Page: 2, PageSize: 10}, 0), apperr.ErrInvalidArgument)
}

func TestRequest_Offset(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, pagination.Request{Page: 1, PageSize: 10}.Offset())
	require.Equal(t, 20, pagination.Request{Page: 3, PageSize: 10}.Offset())
	require.Equal(t, 0, pagination.Request{Page: 0, PageSize: 10}.Offset())
}

func TestPage_Navigation(t *testing.T) {
	t.Parallel()

	first := pagination.Page[int]{Number: 1, TotalPages: 3}
	require.False(t, first.HasPrevious())
	require.True(t, first.HasNext())

	last := pagination.Page[int]{Number: 3, TotalPages: 3}
	require.True(t, last.HasPrevious())
	require.False(t, last.HasNext())

	empty := pagination.Page[int]{Number: 1, TotalPages: 0}
	require.False(t, empty.HasPrevious())
	require.False(t, empty.HasNext())
}
