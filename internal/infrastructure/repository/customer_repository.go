package repository

import (
	"context"
	"errors"

	"github.com/akshaymhatre/receiptly-api/internal/domain/entity"
	domainRepo "github.com/akshaymhatre/receiptly-api/internal/domain/repository"
	"github.com/akshaymhatre/receiptly-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a Postgres-backed customer repository
func NewCustomerRepository(db *gorm.DB) domainRepo.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.Position == 0 {
		// Append at the end of the source-list order.
		var maxPos int
		r.db.WithContext(ctx).Model(&entity.Customer{}).
			Select("COALESCE(MAX(position), 0)").Scan(&maxPos)
		customer.Position = maxPos + 1
	}
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	var customer entity.Customer
	err := r.db.WithContext(ctx).First(&customer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &customer, err
}

func (r *customerRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var customers []entity.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Customer{})
	if search != "" {
		query = query.Where("name ILIKE ? OR phone ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("position ASC").
		Find(&customers).Error

	return customers, total, err
}

func (r *customerRepository) Search(ctx context.Context, query string, limit int) ([]entity.Customer, error) {
	if query == "" {
		return nil, nil
	}

	var customers []entity.Customer
	q := r.db.WithContext(ctx).Model(&entity.Customer{}).
		Where("name ILIKE ?", "%"+query+"%").
		Order("position ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&customers).Error
	return customers, err
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Customer{}).Count(&total).Error
	return total, err
}
