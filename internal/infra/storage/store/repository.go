package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/LoLe05/jarimae-sub001/internal/domain"
	"github.com/LoLe05/jarimae-sub001/pkg/dbmetrics"
	"github.com/LoLe05/jarimae-sub001/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с заведениями и их расписанием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заведений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает заведение вместе с недельным расписанием (7 записей).
// Расписание читается отдельным запросом из store_business_hours.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"owner_id",
		"name",
		"status",
		"capacity",
		"average_meal_duration_minutes",
		"accepts_reservations",
		"created_at",
		"updated_at",
	).
		From("stores").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var store domain.Store
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&store.ID,
		&store.OwnerID,
		&store.Name,
		&store.Status,
		&store.Capacity,
		&store.AverageMealDurationMinutes,
		&store.AcceptsReservations,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrStoreNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan store: %v", ErrScanRow, err)
	}

	store.CreatedAt = createdAt.Time
	store.UpdatedAt = updatedAt.Time

	hours, err := r.getBusinessHours(ctx, executor, id)
	if err != nil {
		return nil, err
	}
	store.BusinessHours = hours

	return &store, nil
}

// ReplaceSchedule заменяет настройки броней и недельное расписание целиком.
// Все 7 строк расписания удаляются и вставляются заново - расписание
// обновляется только как единое целое, частичных правок нет.
// Вызывается внутри транзакции (executor берется из контекста).
func (r *Repository) ReplaceSchedule(
	ctx context.Context,
	storeID int64,
	capacity int,
	averageMealDurationMinutes int,
	acceptsReservations bool,
	hours []domain.BusinessHour,
) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Обновляем настройки броней заведения
	updateQuery, updateArgs, err := psqlbuilder.Update("stores").
		Set("capacity", capacity).
		Set("average_meal_duration_minutes", averageMealDurationMinutes).
		Set("accepts_reservations", acceptsReservations).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": storeID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStoreNotFound
	}

	// Удаляем старое расписание
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("store_business_hours").
		Where(squirrel.Eq{"store_id": storeID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - execute delete: %v", ErrExecQuery, err)
	}

	// Вставляем новое расписание (7 строк)
	insertBuilder := psqlbuilder.Insert("store_business_hours").
		Columns("store_id", "day_of_week", "open_time", "close_time", "is_closed")

	for _, h := range hours {
		insertBuilder = insertBuilder.Values(storeID, h.DayOfWeek, h.OpenTime, h.CloseTime, h.IsClosed)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceSchedule - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// getBusinessHours читает недельное расписание заведения
func (r *Repository) getBusinessHours(ctx context.Context, executor DBExecutor, storeID int64) ([]domain.BusinessHour, error) {
	query, args, err := psqlbuilder.Select(
		"day_of_week",
		"open_time",
		"close_time",
		"is_closed",
	).
		From("store_business_hours").
		Where(squirrel.Eq{"store_id": storeID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getBusinessHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getBusinessHours - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.BusinessHour, 0, domain.DaysPerWeek)
	for rows.Next() {
		var h domain.BusinessHour

		// У закрытых дней open_time/close_time могут быть NULL,
		// TimeString.Scan превращает NULL в пустое значение
		if err := rows.Scan(&h.DayOfWeek, &h.OpenTime, &h.CloseTime, &h.IsClosed); err != nil {
			return nil, fmt.Errorf("%w: getBusinessHours - scan row: %v", ErrScanRow, err)
		}

		hours = append(hours, h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getBusinessHours - rows error: %v", ErrScanRow, err)
	}

	return hours, nil
}
