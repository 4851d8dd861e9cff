package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/Restaurant-ReservationService/internal/domain"
	"github.com/m04kA/Restaurant-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/Restaurant-ReservationService/pkg/psqlbuilder"
)

// reservationColumns колонки бронирования с присоединенным именем клиента
var reservationColumns = []string{
	"r.id",
	"r.reservation_date",
	"r.start_time",
	"r.guests",
	"r.customer_id",
	"c.name AS customer_name",
	"r.created_at",
	"r.updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Транзакция обязательна при создании с проверкой вместимости слота
// (предотвращение гонки check-then-act).
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"reservation_date",
			"start_time",
			"guests",
			"customer_id",
		).
		Values(
			res.Date,
			res.Time,
			res.Guests,
			res.CustomerID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Join("customers c ON c.id = r.customer_id").
		Where(squirrel.Eq{"r.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByDate получает все бронирования на дату, отсортированные по времени.
// Внутри транзакции строки блокируются (FOR UPDATE) - используется
// usecase создания бронирования при проверке вместимости.
func (r *Repository) GetByDate(ctx context.Context, date string) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations r").
		Join("customers c ON c.id = r.customer_id").
		Where(squirrel.Eq{"r.reservation_date": date}).
		OrderBy("r.start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE OF r")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// ListWithFilter получает бронирования с фильтрацией, сортировкой и пагинацией.
// Сортировка ограничена полями date и guests; без явной сортировки порядок
// детерминирован по id.
func (r *Repository) ListWithFilter(
	ctx context.Context,
	filter domain.ReservationFilter,
	sort domain.Sort,
	pagination domain.Pagination,
) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	pagination = pagination.Normalize()

	selectBuilder := applyFilter(
		psqlbuilder.Select(reservationColumns...).
			From("reservations r").
			Join("customers c ON c.id = r.customer_id"),
		filter,
	)

	// Сортировка
	if sort.SortBy != nil && sort.SortBy.IsValid() {
		column := "r.reservation_date"
		if *sort.SortBy == domain.SortByGuests {
			column = "r.guests"
		}
		direction := "ASC"
		if sort.Order == domain.SortOrderDesc {
			direction = "DESC"
		}
		selectBuilder = selectBuilder.OrderBy(column + " " + direction)
	}
	selectBuilder = selectBuilder.OrderBy("r.id ASC")

	// Пагинация
	selectBuilder = selectBuilder.
		Offset(pagination.Offset()).
		Limit(uint64(pagination.Limit))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// CountWithFilter считает количество бронирований под фильтром без учета пагинации
func (r *Repository) CountWithFilter(ctx context.Context, filter domain.ReservationFilter) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(
		psqlbuilder.Select("COUNT(*)").
			From("reservations r").
			Join("customers c ON c.id = r.customer_id"),
		filter,
	).ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: CountWithFilter - scan count: %v", ErrScanRow, err)
	}

	return total, nil
}

// Update сохраняет измененные поля бронирования (дата, время, количество гостей)
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("reservation_date", res.Date).
		Set("start_time", res.Time).
		Set("guests", res.Guests).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление - отмена не сохраняет историю)
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// applyFilter добавляет условия фильтра к select builder
func applyFilter(b squirrel.SelectBuilder, filter domain.ReservationFilter) squirrel.SelectBuilder {
	if filter.CustomerName != nil {
		b = b.Where(squirrel.Eq{"c.name": *filter.CustomerName})
	}
	if filter.Date != nil {
		b = b.Where(squirrel.Eq{"r.reservation_date": *filter.Date})
	}
	if filter.Guests != nil {
		b = b.Where(squirrel.Eq{"r.guests": *filter.Guests})
	}
	return b
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в доменную модель
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Date,
		&res.Time,
		&res.Guests,
		&res.CustomerID,
		&res.CustomerName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
