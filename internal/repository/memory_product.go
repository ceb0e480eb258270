// internal/repository/memory_product.go
package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/javajoker/launchpad-backend/internal/models"
	"github.com/javajoker/launchpad-backend/internal/moderation"
)

// MemoryProductStore keeps products in process memory, in insertion order.
// It backs STORE_DRIVER=memory and the handler tests.
type MemoryProductStore struct {
	mu       sync.RWMutex
	products map[primitive.ObjectID]*models.Product
	order    []primitive.ObjectID
	now      func() time.Time
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{
		products: make(map[primitive.ObjectID]*models.Product),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *MemoryProductStore) Create(ctx context.Context, product *models.Product) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product.ID = primitive.NewObjectID()
	product.ApplyDefaults(s.now())

	stored := cloneProduct(product)
	s.products[stored.ID] = &stored
	s.order = append(s.order, stored.ID)
	return stored.ID.Hex(), nil
}

// Seed inserts raw documents as-is, bypassing creation defaults.
func (s *MemoryProductStore) Seed(products ...models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range products {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		stored := cloneProduct(&p)
		if _, ok := s.products[stored.ID]; !ok {
			s.order = append(s.order, stored.ID)
		}
		s.products[stored.ID] = &stored
	}
}

func (s *MemoryProductStore) GetByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[oid]
	if !ok {
		return nil, models.ErrProductNotFound
	}
	out := cloneProduct(p)
	return &out, nil
}

func (s *MemoryProductStore) Search(ctx context.Context, query SearchQuery) (*models.ProductPage, error) {
	query = query.Normalize()
	needle := strings.ToLower(query.Text)

	matches := s.collect(func(p *models.Product) bool {
		if needle == "" {
			return true
		}
		return strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Tag), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle)
	})

	page := &models.ProductPage{Items: []models.Product{}, TotalCount: int64(len(matches))}
	start := query.Skip()
	if start >= len(matches) {
		return page, nil
	}
	end := start + query.Limit
	if end > len(matches) {
		end = len(matches)
	}
	page.Items = append(page.Items, matches[start:end]...)
	return page, nil
}

func (s *MemoryProductStore) ListAll(ctx context.Context) ([]models.Product, error) {
	return s.collect(func(*models.Product) bool { return true }), nil
}

func (s *MemoryProductStore) ListReported(ctx context.Context) ([]models.Product, error) {
	return s.collect(func(p *models.Product) bool { return len(p.ReportedUsers) > 0 }), nil
}

func (s *MemoryProductStore) Delete(ctx context.Context, id string) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[oid]; !ok {
		return models.ErrProductNotFound
	}
	delete(s.products, oid)
	for i, existing := range s.order {
		if existing == oid {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryProductStore) SetStatus(ctx context.Context, id string, status models.ProductStatus) error {
	return s.mutate(id, func(p *models.Product) error {
		p.Status = status
		return nil
	})
}

func (s *MemoryProductStore) MarkFeatured(ctx context.Context, id string) error {
	return s.mutate(id, func(p *models.Product) error {
		p.IsFeatured = true
		return nil
	})
}

func (s *MemoryProductStore) Engage(ctx context.Context, id string, kind moderation.Engagement, email string) error {
	return s.mutate(id, func(p *models.Product) error {
		if kind.Contains(p, email) {
			return kind.Duplicate
		}
		kind.Apply(p, email)
		return nil
	})
}

func (s *MemoryProductStore) Statuses(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statuses := make([]string, 0, len(s.order))
	for _, oid := range s.order {
		statuses = append(statuses, string(s.products[oid].Status))
	}
	return statuses, nil
}

func (s *MemoryProductStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// mutate runs fn on the stored product under the write lock.
func (s *MemoryProductStore) mutate(id string, fn func(*models.Product) error) error {
	oid, err := ParseID(id)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[oid]
	if !ok {
		return models.ErrProductNotFound
	}
	return fn(p)
}

func (s *MemoryProductStore) collect(match func(*models.Product) bool) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.Product{}
	for _, oid := range s.order {
		if p := s.products[oid]; match(p) {
			out = append(out, cloneProduct(p))
		}
	}
	return out
}

func cloneProduct(p *models.Product) models.Product {
	out := *p
	if p.VotedUsers != nil {
		out.VotedUsers = append([]string{}, p.VotedUsers...)
	}
	if p.ReportedUsers != nil {
		out.ReportedUsers = append([]string{}, p.ReportedUsers...)
	}
	return out
}
