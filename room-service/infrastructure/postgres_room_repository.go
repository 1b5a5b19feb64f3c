package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/room-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// PostgresRoomRepository implements RoomRepository using PostgreSQL
type PostgresRoomRepository struct {
	db *sqlx.DB
}

// NewPostgresRoomRepository creates a new PostgresRoomRepository
func NewPostgresRoomRepository(db *sqlx.DB) *PostgresRoomRepository {
	return &PostgresRoomRepository{db: db}
}

type postgresRoom struct {
	ID            int64     `db:"id"`
	Number        string    `db:"number"`
	Type          string    `db:"type"`
	PricePerNight float64   `db:"price_per_night"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

// Save inserts a new room and assigns its generated id
func (r *PostgresRoomRepository) Save(ctx context.Context, room *domain.Room) error {
	query := `
		INSERT INTO rooms (number, type, price_per_night, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		room.Number,
		room.Type,
		room.PricePerNight,
		string(room.Status),
		room.Timestamps.CreatedAt,
		room.Timestamps.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return errors.Wrap(err, "failed to insert room")
	}

	room.ID = models.ID(id)
	return nil
}

// Update persists changes to an existing room
func (r *PostgresRoomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `
		UPDATE rooms
		SET number = :number, type = :type, price_per_night = :price_per_night,
			status = :status, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, r.toPostgres(room))
	if err != nil {
		return errors.Wrap(err, "failed to update room")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return errors.Wrapf(domain.ErrRoomNotFound, "room %s", room.ID)
	}

	return nil
}

// FindByID finds a room by id, returning (nil, nil) when absent
func (r *PostgresRoomRepository) FindByID(ctx context.Context, id models.ID) (*domain.Room, error) {
	query := `
		SELECT id, number, type, price_per_night, status, created_at, updated_at
		FROM rooms
		WHERE id = $1`

	var pg postgresRoom
	err := r.db.GetContext(ctx, &pg, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find room")
	}

	return r.toDomain(&pg)
}

// FindAll returns all rooms ordered by number
func (r *PostgresRoomRepository) FindAll(ctx context.Context) ([]*domain.Room, error) {
	query := `
		SELECT id, number, type, price_per_night, status, created_at, updated_at
		FROM rooms
		ORDER BY number`

	return r.selectRooms(ctx, query)
}

// FindByStatus returns the rooms currently in the given status
func (r *PostgresRoomRepository) FindByStatus(ctx context.Context, status domain.RoomStatus) ([]*domain.Room, error) {
	query := `
		SELECT id, number, type, price_per_night, status, created_at, updated_at
		FROM rooms
		WHERE status = $1
		ORDER BY number`

	return r.selectRooms(ctx, query, string(status))
}

func (r *PostgresRoomRepository) selectRooms(ctx context.Context, query string, args ...any) ([]*domain.Room, error) {
	var pgs []postgresRoom
	if err := r.db.SelectContext(ctx, &pgs, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to select rooms")
	}

	rooms := make([]*domain.Room, len(pgs))
	for i := range pgs {
		room, err := r.toDomain(&pgs[i])
		if err != nil {
			return nil, err
		}
		rooms[i] = room
	}

	return rooms, nil
}

func (r *PostgresRoomRepository) toPostgres(room *domain.Room) *postgresRoom {
	return &postgresRoom{
		ID:            room.ID.Int64(),
		Number:        room.Number,
		Type:          room.Type,
		PricePerNight: room.PricePerNight,
		Status:        string(room.Status),
		CreatedAt:     room.Timestamps.CreatedAt,
		UpdatedAt:     room.Timestamps.UpdatedAt,
	}
}

func (r *PostgresRoomRepository) toDomain(pg *postgresRoom) (*domain.Room, error) {
	status, err := domain.NewRoomStatus(pg.Status)
	if err != nil {
		return nil, errors.Wrapf(err, "room %d", pg.ID)
	}

	return &domain.Room{
		ID:            models.ID(pg.ID),
		Number:        pg.Number,
		Type:          pg.Type,
		PricePerNight: pg.PricePerNight,
		Status:        status,
		Timestamps: models.Timestamps{
			CreatedAt: pg.CreatedAt,
			UpdatedAt: pg.UpdatedAt,
		},
	}, nil
}
