package services

import (
	"context"
	"sort"
	"sync"

	pointsdomain "github.com/ghuser/ecopoints/services/points/domain"
	"github.com/ghuser/ecopoints/services/points/domain/models"
)

// memRepo is an in-memory PointRepository with the same observable semantics
// as the Postgres one, including all-or-nothing Create.
type memRepo struct {
	mu        sync.Mutex
	nextID    int64
	points    map[int64]models.Point
	links     map[int64]models.ItemIDs
	catalog   map[int64]string
	err       error
	titlesErr error
	deadline  bool
	getCalls  int
}

func newMemRepo() *memRepo {
	return &memRepo{
		points: map[int64]models.Point{},
		links:  map[int64]models.ItemIDs{},
		catalog: map[int64]string{
			1: "Lâmpadas",
			2: "Pilhas e Baterias",
			3: "Papéis e Papelão",
		},
	}
}

func (m *memRepo) Create(ctx context.Context, p *models.Point, ids models.ItemIDs) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, m.deadline = ctx.Deadline()
	if m.err != nil {
		return 0, m.err
	}
	for _, id := range ids {
		if _, ok := m.catalog[id]; !ok {
			return 0, pointsdomain.ErrUnknownItem
		}
	}
	m.nextID++
	stored := *p
	stored.ID = m.nextID
	m.points[stored.ID] = stored
	m.links[stored.ID] = append(models.ItemIDs(nil), ids...)
	return stored.ID, nil
}

func (m *memRepo) List(ctx context.Context, f models.Filter) ([]models.Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Point
	for id, p := range m.points {
		if p.City != f.City || p.UF != f.UF {
			continue
		}
		if f.HasItems() && !m.acceptsAny(id, f.ItemIDs) {
			continue
		}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memRepo) acceptsAny(id int64, want models.ItemIDs) bool {
	for _, have := range m.links[id] {
		for _, w := range want {
			if have == w {
				return true
			}
		}
	}
	return false
}

func (m *memRepo) GetByID(_ context.Context, id int64) (*models.Point, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.points[id]
	if !ok {
		return nil, pointsdomain.ErrPointNotFound
	}
	return &p, nil
}

func (m *memRepo) ItemTitles(_ context.Context, id int64) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.titlesErr != nil {
		return nil, m.titlesErr
	}
	titles := []string{}
	for _, itemID := range m.links[id] {
		titles = append(titles, m.catalog[itemID])
	}
	return titles, nil
}

func (m *memRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if _, ok := m.points[id]; !ok {
		return pointsdomain.ErrPointNotFound
	}
	delete(m.points, id)
	delete(m.links, id)
	return nil
}

func (m *memRepo) ResetItems(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	n := int64(len(m.links[id]))
	delete(m.links, id)
	return n, nil
}
