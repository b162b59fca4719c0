package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableAvailability/pkg/psqlbuilder"
)

// Repository репозиторий правил работы и дней закрытия заведения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// rulesQuery правила заведения в порядке приоритета (position, затем id).
// Порядок важен: резолвер выбирает первое подходящее правило.
func rulesQuery(venueID int64) squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"venue_id",
		"weekdays",
		"start_time",
		"end_time",
		"interval_minutes",
		"capacity",
	).
		From("capacity_rules").
		Where(squirrel.Eq{"venue_id": venueID}).
		OrderBy("position ASC", "id ASC")
}

// exceptionsQuery дни закрытия в диапазоне [from, to]; nil границы не ограничивают выборку
func exceptionsQuery(venueID int64, from, to *time.Time) squirrel.SelectBuilder {
	builder := psqlbuilder.Select("id", "venue_id", "exception_date", "reason").
		From("closure_exceptions").
		Where(squirrel.Eq{"venue_id": venueID})

	if from != nil {
		builder = builder.Where(squirrel.GtOrEq{"exception_date": from.Format(domain.DateFormat)})
	}
	if to != nil {
		builder = builder.Where(squirrel.LtOrEq{"exception_date": to.Format(domain.DateFormat)})
	}

	return builder.OrderBy("exception_date ASC")
}

// GetRules получает все правила работы заведения
// Правила с некорректными данными (неизвестный день недели, время вне HH:MM и т.п.) возвращаются как есть,
// их отбрасывает движок доступности
func (r *Repository) GetRules(ctx context.Context, venueID int64) ([]*domain.CapacityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := rulesQuery(venueID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRules - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRules - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rules := make([]*domain.CapacityRule, 0)
	for rows.Next() {
		var rule domain.CapacityRule
		if err := rows.Scan(
			&rule.ID,
			&rule.VenueID,
			pq.Array(&rule.WeekdayNames),
			&rule.StartTime,
			&rule.EndTime,
			&rule.IntervalMinutes,
			&rule.Capacity,
		); err != nil {
			return nil, fmt.Errorf("%w: GetRules - scan rule: %v", ErrScanRow, err)
		}
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRules - rows iteration: %v", ErrScanRow, err)
	}

	return rules, nil
}

// GetExceptions получает дни закрытия заведения в диапазоне дат
func (r *Repository) GetExceptions(ctx context.Context, venueID int64, from, to *time.Time) ([]*domain.Exception, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := exceptionsQuery(venueID, from, to).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptions - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetExceptions - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]*domain.Exception, 0)
	for rows.Next() {
		var (
			e      domain.Exception
			reason sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.VenueID, &e.Date, &reason); err != nil {
			return nil, fmt.Errorf("%w: GetExceptions - scan exception: %v", ErrScanRow, err)
		}
		if reason.Valid {
			e.Reason = &reason.String
		}
		exceptions = append(exceptions, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetExceptions - rows iteration: %v", ErrScanRow, err)
	}

	return exceptions, nil
}
