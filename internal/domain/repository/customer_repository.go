package repository

import (
	"context"

	"github.com/akshaymhatre/receiptly-api/internal/domain/entity"
	"github.com/akshaymhatre/receiptly-api/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer data operations
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
	// List returns customers with page-based pagination, ordered by source-list position.
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error)
	// Search returns up to limit customers whose name contains query
	// case-insensitively, in source-list order. limit <= 0 means unbounded.
	Search(ctx context.Context, query string, limit int) ([]entity.Customer, error)
	Count(ctx context.Context) (int64, error)
}
