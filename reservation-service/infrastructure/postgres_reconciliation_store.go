package infrastructure

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/rafifdzaky27/tubes-iae-pria/reservation-service/domain"
	"github.com/rafifdzaky27/tubes-iae-pria/shared/models"
)

// PostgresReconciliationStore persists reconciliation candidates: booking
// workflows whose compensating call failed, leaving the reservation store
// and the inventory service diverged.
type PostgresReconciliationStore struct {
	db *sqlx.DB
}

// NewPostgresReconciliationStore creates a new PostgresReconciliationStore
func NewPostgresReconciliationStore(db *sqlx.DB) *PostgresReconciliationStore {
	return &PostgresReconciliationStore{db: db}
}

type postgresReconciliation struct {
	ID            int64     `db:"id"`
	ReservationID int64     `db:"reservation_id"`
	RoomID        int64     `db:"room_id"`
	Compensation  string    `db:"compensation"`
	Detail        string    `db:"detail"`
	Resolved      bool      `db:"resolved"`
	CreatedAt     time.Time `db:"created_at"`
}

// Record stores a reconciliation candidate
func (s *PostgresReconciliationStore) Record(ctx context.Context, candidate domain.ReconciliationCandidate) error {
	query := `
		INSERT INTO reconciliation_candidates (
			reservation_id, room_id, compensation, detail, resolved, created_at
		) VALUES (:reservation_id, :room_id, :compensation, :detail, false, :created_at)`

	_, err := s.db.NamedExecContext(ctx, query, &postgresReconciliation{
		ReservationID: candidate.ReservationID.Int64(),
		RoomID:        candidate.RoomID.Int64(),
		Compensation:  candidate.Compensation,
		Detail:        candidate.Detail,
		CreatedAt:     candidate.CreatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "failed to record reconciliation candidate")
	}

	return nil
}

// FindPending returns unresolved candidates, oldest first
func (s *PostgresReconciliationStore) FindPending(ctx context.Context, limit int) ([]domain.ReconciliationCandidate, error) {
	query := `
		SELECT id, reservation_id, room_id, compensation, detail, resolved, created_at
		FROM reconciliation_candidates
		WHERE resolved = false
		ORDER BY created_at ASC
		LIMIT $1`

	var pgs []postgresReconciliation
	if err := s.db.SelectContext(ctx, &pgs, query, limit); err != nil {
		return nil, errors.Wrap(err, "failed to select reconciliation candidates")
	}

	candidates := make([]domain.ReconciliationCandidate, len(pgs))
	for i, pg := range pgs {
		candidates[i] = domain.ReconciliationCandidate{
			ReservationID: models.ID(pg.ReservationID),
			RoomID:        models.ID(pg.RoomID),
			Compensation:  pg.Compensation,
			Detail:        pg.Detail,
			CreatedAt:     pg.CreatedAt,
		}
	}

	return candidates, nil
}
