package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	"github.com/m04kA/Restaurant-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Restaurant-ReservationService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с клиентами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByName получает клиента по имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "created_at").
		From("customers").
		Where(squirrel.Eq{"name": name}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	var customer domain.Customer
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&customer.Name,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan customer: %v", ErrScanRow, err)
	}

	customer.CreatedAt = createdAt.Time

	return &customer, nil
}

// Create создает нового клиента
func (r *Repository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("name").
		Values(customer.Name).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&customer.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	customer.CreatedAt = createdAt.Time

	return customer, nil
}

// GetOrCreate возвращает клиента по имени, создавая его при отсутствии
func (r *Repository) GetOrCreate(ctx context.Context, name string) (*domain.Customer, error) {
	customer, err := r.GetByName(ctx, name)
	if err == nil {
		return customer, nil
	}
	if err != ErrCustomerNotFound {
		return nil, err
	}

	return r.Create(ctx, &domain.Customer{Name: name})
}
