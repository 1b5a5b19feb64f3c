package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/guest-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// PostgresGuestRepository implements GuestRepository using PostgreSQL
type PostgresGuestRepository struct {
	db *sqlx.DB
}

// NewPostgresGuestRepository creates a new PostgresGuestRepository
func NewPostgresGuestRepository(db *sqlx.DB) *PostgresGuestRepository {
	return &PostgresGuestRepository{db: db}
}

type postgresGuest struct {
	ID        int64     `db:"id"`
	FullName  string    `db:"full_name"`
	Email     string    `db:"email"`
	Phone     string    `db:"phone"`
	Address   string    `db:"address"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Save inserts a new guest and assigns its generated id
func (r *PostgresGuestRepository) Save(ctx context.Context, guest *domain.Guest) error {
	query := `
		INSERT INTO guests (full_name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		guest.FullName,
		guest.Email,
		guest.Phone,
		guest.Address,
		guest.Timestamps.CreatedAt,
		guest.Timestamps.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return errors.Wrap(err, "failed to insert guest")
	}

	guest.ID = models.ID(id)
	return nil
}

// Update persists changes to an existing guest
func (r *PostgresGuestRepository) Update(ctx context.Context, guest *domain.Guest) error {
	query := `
		UPDATE guests
		SET full_name = :full_name, email = :email, phone = :phone,
			address = :address, updated_at = :updated_at
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, r.toPostgres(guest))
	if err != nil {
		return errors.Wrap(err, "failed to update guest")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return errors.Wrapf(domain.ErrGuestNotFound, "guest %s", guest.ID)
	}

	return nil
}

// Delete removes a guest record
func (r *PostgresGuestRepository) Delete(ctx context.Context, id models.ID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id.Int64())
	if err != nil {
		return errors.Wrap(err, "failed to delete guest")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return errors.Wrapf(domain.ErrGuestNotFound, "guest %s", id)
	}

	return nil
}

// FindByID finds a guest by id, returning (nil, nil) when absent
func (r *PostgresGuestRepository) FindByID(ctx context.Context, id models.ID) (*domain.Guest, error) {
	query := `
		SELECT id, full_name, email, phone, address, created_at, updated_at
		FROM guests
		WHERE id = $1`

	var pg postgresGuest
	err := r.db.GetContext(ctx, &pg, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find guest")
	}

	return r.toDomain(&pg), nil
}

// FindByEmail finds a guest by email, returning (nil, nil) when absent
func (r *PostgresGuestRepository) FindByEmail(ctx context.Context, email string) (*domain.Guest, error) {
	query := `
		SELECT id, full_name, email, phone, address, created_at, updated_at
		FROM guests
		WHERE email = $1`

	var pg postgresGuest
	err := r.db.GetContext(ctx, &pg, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find guest by email")
	}

	return r.toDomain(&pg), nil
}

// FindAll returns all guests ordered by name
func (r *PostgresGuestRepository) FindAll(ctx context.Context) ([]*domain.Guest, error) {
	query := `
		SELECT id, full_name, email, phone, address, created_at, updated_at
		FROM guests
		ORDER BY full_name`

	var pgs []postgresGuest
	if err := r.db.SelectContext(ctx, &pgs, query); err != nil {
		return nil, errors.Wrap(err, "failed to select guests")
	}

	guests := make([]*domain.Guest, len(pgs))
	for i := range pgs {
		guests[i] = r.toDomain(&pgs[i])
	}

	return guests, nil
}

func (r *PostgresGuestRepository) toPostgres(guest *domain.Guest) *postgresGuest {
	return &postgresGuest{
		ID:        guest.ID.Int64(),
		FullName:  guest.FullName,
		Email:     guest.Email,
		Phone:     guest.Phone,
		Address:   guest.Address,
		CreatedAt: guest.Timestamps.CreatedAt,
		UpdatedAt: guest.Timestamps.UpdatedAt,
	}
}

func (r *PostgresGuestRepository) toDomain(pg *postgresGuest) *domain.Guest {
	return &domain.Guest{
		ID:       models.ID(pg.ID),
		FullName: pg.FullName,
		Email:    pg.Email,
		Phone:    pg.Phone,
		Address:  pg.Address,
		Timestamps: models.Timestamps{
			CreatedAt: pg.CreatedAt,
			UpdatedAt: pg.UpdatedAt,
		},
	}
}
