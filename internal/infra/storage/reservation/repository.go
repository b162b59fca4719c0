package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableAvailability/pkg/psqlbuilder"
)

// Repository репозиторий бронирований столов (только чтение: записи создает сервис бронирования)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// filterQuery бронирования заведения на дату, отсортированные по времени начала
func filterQuery(filter domain.ReservationFilter) squirrel.SelectBuilder {
	builder := psqlbuilder.Select(
		"id",
		"venue_id",
		"reservation_date",
		"start_time",
		"guests",
		"duration_minutes",
		"status",
	).
		From("reservations").
		Where(squirrel.Eq{
			"venue_id":         filter.VenueID,
			"reservation_date": filter.Date.Format(domain.DateFormat),
		})

	if !filter.IncludeInactive {
		builder = builder.Where(squirrel.Eq{"status": string(domain.ReservationActive)})
	}

	return builder.OrderBy("start_time ASC", "id ASC")
}

// GetByFilter получает бронирования заведения на дату
// По умолчанию возвращаются только активные бронирования
func (r *Repository) GetByFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := filterQuery(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		var (
			res      domain.Reservation
			duration sql.NullInt64
		)
		if err := rows.Scan(
			&res.ID,
			&res.VenueID,
			&res.Date,
			&res.Time,
			&res.Guests,
			&duration,
			&res.Status,
		); err != nil {
			return nil, fmt.Errorf("%w: GetByFilter - scan reservation: %v", ErrScanRow, err)
		}
		// NULL означает «длительность не указана», движок подставит значение по умолчанию
		res.DurationMinutes = int(duration.Int64)
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - rows iteration: %v", ErrScanRow, err)
	}

	return reservations, nil
}
