package curso_test

import (
	"context"
	"sort"
	"sync"

	"service-cursos/internal/domain"
)

// memStore is an in-memory cursoRepository.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]domain.Curso
}

func newMemStore() *memStore {
	return &memStore{rows: map[int64]domain.Curso{}}
}

func (m *memStore) Insert(_ context.Context, c *domain.Curso) (*domain.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	stored := *c
	stored.ID = m.nextID
	m.rows[stored.ID] = stored
	return &stored, nil
}

func (m *memStore) FindByID(_ context.Context, id int64) (*domain.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (m *memStore) Replace(_ context.Context, id int64, c *domain.Curso) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	stored := *c
	stored.ID = id
	m.rows[id] = stored
	return true, nil
}

func (m *memStore) Delete(_ context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return false, nil
	}
	delete(m.rows, id)
	return true, nil
}

func (m *memStore) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.rows)), nil
}

func (m *memStore) Page(_ context.Context, offset, limit int) ([]domain.Curso, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	all := make([]domain.Curso, 0, len(m.rows))
	for _, c := range m.rows {
		all = append(all, c)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if offset >= len(all) {
		return []domain.Curso{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}
