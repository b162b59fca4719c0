package seating

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
	"github.com/m04kA/SMC-TableAvailability/pkg/dbmetrics"
	"github.com/m04kA/SMC-TableAvailability/pkg/psqlbuilder"
)

// Repository репозиторий залов и столов заведения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рассадки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// roomsQuery залы со столами одним запросом; LEFT JOIN оставляет пустые залы
func roomsQuery(venueID int64) squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"r.id",
		"r.venue_id",
		"r.name",
		"t.id",
		"t.label",
		"t.capacity",
	).
		From("rooms r").
		LeftJoin("tables t ON t.room_id = r.id").
		Where(squirrel.Eq{"r.venue_id": venueID}).
		OrderBy("r.id ASC", "t.id ASC")
}

// GetRooms получает залы заведения вместе со столами
func (r *Repository) GetRooms(ctx context.Context, venueID int64) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := roomsQuery(venueID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRooms - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRooms - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	var current *domain.Room

	for rows.Next() {
		var (
			room     domain.Room
			tableID  sql.NullInt64
			label    sql.NullString
			capacity sql.NullInt64
		)
		if err := rows.Scan(&room.ID, &room.VenueID, &room.Name, &tableID, &label, &capacity); err != nil {
			return nil, fmt.Errorf("%w: GetRooms - scan room: %v", ErrScanRow, err)
		}

		// Строки отсортированы по залу: новый зал начинается при смене r.id
		if current == nil || current.ID != room.ID {
			room.Tables = make([]domain.Table, 0)
			current = &room
			rooms = append(rooms, current)
		}

		if tableID.Valid {
			current.Tables = append(current.Tables, domain.Table{
				ID:       tableID.Int64,
				RoomID:   current.ID,
				Label:    label.String,
				Capacity: int(capacity.Int64),
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRooms - rows iteration: %v", ErrScanRow, err)
	}

	return rooms, nil
}
