package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/akshaymhatre/receiptly-api/internal/domain/entity"
	domainRepo "github.com/akshaymhatre/receiptly-api/internal/domain/repository"
	"github.com/akshaymhatre/receiptly-api/pkg/pagination"
	"github.com/google/uuid"
)

// memoryCustomerRepository serves the static customer list without a
// database. Creations are kept for the lifetime of the process only.
type memoryCustomerRepository struct {
	mu        sync.RWMutex
	customers []entity.Customer
}

// NewMemoryCustomerRepository creates a repository over a pre-loaded
// customer list. The list's order is preserved in all query results.
func NewMemoryCustomerRepository(customers []entity.Customer) domainRepo.CustomerRepository {
	copied := make([]entity.Customer, len(customers))
	copy(copied, customers)
	for i := range copied {
		if copied[i].ID == uuid.Nil {
			copied[i].ID = uuid.New()
		}
		if copied[i].Position == 0 {
			copied[i].Position = i + 1
		}
	}
	return &memoryCustomerRepository{customers: copied}
}

func (r *memoryCustomerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	if customer.Position == 0 {
		maxPos := 0
		for _, c := range r.customers {
			if c.Position > maxPos {
				maxPos = c.Position
			}
		}
		customer.Position = maxPos + 1
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now
	r.customers = append(r.customers, *customer)
	return nil
}

func (r *memoryCustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.customers {
		if r.customers[i].ID == id {
			c := r.customers[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memoryCustomerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := r.customers
	if search != "" {
		matched = make([]entity.Customer, 0)
		needle := strings.ToLower(search)
		for _, c := range r.customers {
			if strings.Contains(strings.ToLower(c.Name), needle) ||
				(c.Phone != nil && strings.Contains(strings.ToLower(*c.Phone), needle)) {
				matched = append(matched, c)
			}
		}
	}

	total := int64(len(matched))
	params.Validate()
	start := params.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.PerPage
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]entity.Customer, end-start)
	copy(page, matched[start:end])
	return page, total, nil
}

func (r *memoryCustomerRepository) Search(ctx context.Context, query string, limit int) ([]entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return FilterByName(r.customers, query, limit), nil
}

func (r *memoryCustomerRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.customers)), nil
}

// FilterByName returns the subsequence of list whose names contain query as
// a case-insensitive substring, preserving list order. An empty query
// matches nothing; limit <= 0 means unbounded.
func FilterByName(list []entity.Customer, query string, limit int) []entity.Customer {
	if query == "" {
		return nil
	}

	needle := strings.ToLower(query)
	var matched []entity.Customer
	for _, c := range list {
		if strings.Contains(strings.ToLower(c.Name), needle) {
			matched = append(matched, c)
			if limit > 0 && len(matched) == limit {
				break
			}
		}
	}
	return matched
}
