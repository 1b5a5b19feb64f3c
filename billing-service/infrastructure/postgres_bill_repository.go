package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/billing-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// PostgresBillRepository implements BillRepository using PostgreSQL
type PostgresBillRepository struct {
	db *sqlx.DB
}

// NewPostgresBillRepository creates a new PostgresBillRepository
func NewPostgresBillRepository(db *sqlx.DB) *PostgresBillRepository {
	return &PostgresBillRepository{db: db}
}

type postgresBill struct {
	ID            int64     `db:"id"`
	ReservationID int64     `db:"reservation_id"`
	TotalAmount   float64   `db:"total_amount"`
	PaymentStatus string    `db:"payment_status"`
	GeneratedAt   time.Time `db:"generated_at"`
}

// Save inserts a new bill and assigns its generated id
func (r *PostgresBillRepository) Save(ctx context.Context, bill *domain.Bill) error {
	query := `
		INSERT INTO bills (reservation_id, total_amount, payment_status, generated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		bill.ReservationID.Int64(),
		bill.TotalAmount,
		string(bill.PaymentStatus),
		bill.GeneratedAt,
	).Scan(&id)
	if err != nil {
		return errors.Wrap(err, "failed to insert bill")
	}

	bill.ID = models.ID(id)
	return nil
}

// Update persists changes to an existing bill
func (r *PostgresBillRepository) Update(ctx context.Context, bill *domain.Bill) error {
	query := `
		UPDATE bills
		SET total_amount = :total_amount, payment_status = :payment_status
		WHERE id = :id`

	res, err := r.db.NamedExecContext(ctx, query, r.toPostgres(bill))
	if err != nil {
		return errors.Wrap(err, "failed to update bill")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return errors.Wrapf(domain.ErrBillNotFound, "bill %s", bill.ID)
	}

	return nil
}

// FindByID finds a bill by id, returning (nil, nil) when absent
func (r *PostgresBillRepository) FindByID(ctx context.Context, id models.ID) (*domain.Bill, error) {
	query := `
		SELECT id, reservation_id, total_amount, payment_status, generated_at
		FROM bills
		WHERE id = $1`

	var pg postgresBill
	err := r.db.GetContext(ctx, &pg, query, id.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find bill")
	}

	return r.toDomain(&pg)
}

// FindByReservationID finds the bill for a reservation, returning
// (nil, nil) when the reservation has not been billed
func (r *PostgresBillRepository) FindByReservationID(ctx context.Context, reservationID models.ID) (*domain.Bill, error) {
	query := `
		SELECT id, reservation_id, total_amount, payment_status, generated_at
		FROM bills
		WHERE reservation_id = $1
		ORDER BY generated_at
		LIMIT 1`

	var pg postgresBill
	err := r.db.GetContext(ctx, &pg, query, reservationID.Int64())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to find bill by reservation")
	}

	return r.toDomain(&pg)
}

// FindAll returns all bills ordered by generation time
func (r *PostgresBillRepository) FindAll(ctx context.Context) ([]*domain.Bill, error) {
	query := `
		SELECT id, reservation_id, total_amount, payment_status, generated_at
		FROM bills
		ORDER BY generated_at DESC`

	var pgs []postgresBill
	if err := r.db.SelectContext(ctx, &pgs, query); err != nil {
		return nil, errors.Wrap(err, "failed to select bills")
	}

	bills := make([]*domain.Bill, len(pgs))
	for i := range pgs {
		bill, err := r.toDomain(&pgs[i])
		if err != nil {
			return nil, err
		}
		bills[i] = bill
	}

	return bills, nil
}

func (r *PostgresBillRepository) toPostgres(bill *domain.Bill) *postgresBill {
	return &postgresBill{
		ID:            bill.ID.Int64(),
		ReservationID: bill.ReservationID.Int64(),
		TotalAmount:   bill.TotalAmount,
		PaymentStatus: string(bill.PaymentStatus),
		GeneratedAt:   bill.GeneratedAt,
	}
}

func (r *PostgresBillRepository) toDomain(pg *postgresBill) (*domain.Bill, error) {
	status, err := domain.NewPaymentStatus(pg.PaymentStatus)
	if err != nil {
		return nil, errors.Wrapf(err, "bill %d", pg.ID)
	}

	return &domain.Bill{
		ID:            models.ID(pg.ID),
		ReservationID: models.ID(pg.ReservationID),
		TotalAmount:   pg.TotalAmount,
		PaymentStatus: status,
		GeneratedAt:   pg.GeneratedAt,
	}, nil
}
