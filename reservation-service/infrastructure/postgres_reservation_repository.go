package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// PostgresReservationRepository implements ReservationRepository using
// PostgreSQL. It is the only component allowed to mutate the reservation
// record.
type PostgresReservationRepository struct {
	db *sqlx.DB
}

// NewPostgresReservationRepository creates a new PostgresReservationRepository
func NewPostgresReservationRepository(db *sqlx.DB) *PostgresReservationRepository {
	return &PostgresReservationRepository{db: db}
}

type postgresReservation struct {
	ID           int64       `db:"id"`
	GuestID      int64       `db:"guest_id"`
	RoomID       int64       `db:"room_id"`
	CheckInDate  models.Date `db:"check_in_date"`
	CheckOutDate models.Date `db:"check_out_date"`
	Status       string      `db:"status"`
	CreatedAt    time.Time   `db:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at"`
}

// Save inserts a new reservation and assigns its generated id
func (r *PostgresReservationRepository) Save(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		INSERT INTO reservations (
			guest_id, room_id, check_in_date, check_out_date, status,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		reservation.GuestID.Int64(),
		reservation.RoomID.Int64(),
		reservation.CheckInDate,
		reservation.CheckOutDate,
		string(reservation.Status),
		reservation.Timestamps.CreatedAt,
		reservation.Timestamps.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return errors.Wrap(err, "failed to insert reservation")
	}

	reservation.ID = models.ID(id)
	return nil
}

// Update persists changes to an existing reservation
func (r *PostgresReservationRepository) Update(ctx context.Context, reservation *domain.Reservation) error {
	query := `
		UPDATE reservations
		SET guest_id = :guest_id, room_id = :room_id,
			check_in_date = :check_in_date, check_out_date = :check_out_date,
			status = :status, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, r.toPostgres(reservation))
	if err != nil {
		return errors.Wrap(err, "failed to update reservation")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return errors.Wrapf(domain.ErrReservationNotFound, "reservation %s", reservation.ID)
	}

	return nil
}

// Delete removes a reservation record
func (r *PostgresReservationRepository) Delete(ctx context.Context, id models.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reservations WHERE id = $1`, id.Int64())
	if err != nil {
		return errors.Wrap(err, "failed to delete reservation")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return errors.Wrapf(domain.ErrReservationNotFound, "reservation %s", id)
	}

	return nil
}

// FindByID finds a reservation by id, returning (nil, nil) when absent
func (r *PostgresReservationRepository) FindByID(ctx context.Context, id models.ID) (*domain.Reservation, error) {
	query := `
		SELECT id, guest_id, room_id, check_in_date, check_out_date, status,
			   created_at, updated_at
		FROM reservations
		WHERE id = $1`

	var pg postgresReservation
	err := r.db.GetContext(ctx, &pg, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find reservation")
	}

	return r.toDomain(&pg)
}

// FindAll returns all reservations ordered by creation time
func (r *PostgresReservationRepository) FindAll(ctx context.Context) ([]*domain.Reservation, error) {
	query := `
		SELECT id, guest_id, room_id, check_in_date, check_out_date, status,
			   created_at, updated_at
		FROM reservations
		ORDER BY created_at DESC`

	return r.selectReservations(ctx, query)
}

// FindByGuestID returns the reservations referencing a guest
func (r *PostgresReservationRepository) FindByGuestID(ctx context.Context, guestID models.ID) ([]*domain.Reservation, error) {
	query := `
		SELECT id, guest_id, room_id, check_in_date, check_out_date, status,
			   created_at, updated_at
		FROM reservations
		WHERE guest_id = $1
		ORDER BY created_at DESC`

	return r.selectReservations(ctx, query, guestID.Int64())
}

// FindByRoomID returns the reservations referencing a room
func (r *PostgresReservationRepository) FindByRoomID(ctx context.Context, roomID models.ID) ([]*domain.Reservation, error) {
	query := `
		SELECT id, guest_id, room_id, check_in_date, check_out_date, status,
			   created_at, updated_at
		FROM reservations
		WHERE room_id = $1
		ORDER BY created_at DESC`

	return r.selectReservations(ctx, query, roomID.Int64())
}

func (r *PostgresReservationRepository) selectReservations(ctx context.Context, query string, args ...any) ([]*domain.Reservation, error) {
	var pgs []postgresReservation
	if err := r.db.SelectContext(ctx, &pgs, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to select reservations")
	}

	reservations := make([]*domain.Reservation, len(pgs))
	for i := range pgs {
		reservation, err := r.toDomain(&pgs[i])
		if err != nil {
			return nil, err
		}
		reservations[i] = reservation
	}

	return reservations, nil
}

func (r *PostgresReservationRepository) toPostgres(reservation *domain.Reservation) *postgresReservation {
	return &postgresReservation{
		ID:           reservation.ID.Int64(),
		GuestID:      reservation.GuestID.Int64(),
		RoomID:       reservation.RoomID.Int64(),
		CheckInDate:  reservation.CheckInDate,
		CheckOutDate: reservation.CheckOutDate,
		Status:       string(reservation.Status),
		CreatedAt:    reservation.Timestamps.CreatedAt,
		UpdatedAt:    reservation.Timestamps.UpdatedAt,
	}
}

func (r *PostgresReservationRepository) toDomain(pg *postgresReservation) (*domain.Reservation, error) {
	status, err := domain.NewReservationStatus(pg.Status)
	if err != nil {
		return nil, errors.Wrapf(err, "reservation %d", pg.ID)
	}

	return &domain.Reservation{
		ID:           models.ID(pg.ID),
		GuestID:      models.ID(pg.GuestID),
		RoomID:       models.ID(pg.RoomID),
		CheckInDate:  pg.CheckInDate,
		CheckOutDate: pg.CheckOutDate,
		Status:       status,
		Timestamps: models.Timestamps{
			CreatedAt: pg.CreatedAt,
			UpdatedAt: pg.UpdatedAt,
		},
	}, nil
}
