package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"rolloff/internal/entities"
	"rolloff/internal/repository"
	"rolloff/internal/service/assignment"
)

const dumpsterColumns = `id, name, status, current_order_id, address,
		latitude, longitude, last_assigned_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Acquire couples a dumpster to an order with a conditional update: the row
// is taken only while it is still available and unowned, which closes the
// race between two concurrent assignment requests for the same dumpster. The
// reserved home-yard record is never acquirable.
func (r *Repository) Acquire(ctx context.Context, dumpsterID, orderID int64, address, homeYardName string, at time.Time) (*entities.Dumpster, error) {
	query := `UPDATE dumpsters
		SET status = 'in_use',
			current_order_id = $2,
			address = $3,
			last_assigned_at = $4,
			updated_at = NOW()
		WHERE id = $1
		  AND current_order_id IS NULL
		  AND status = 'available'
		  AND name != $5
		RETURNING ` + dumpsterColumns

	var dumpsterDB dumpsterRow
	err := scanDumpster(r.querier.QueryRow(ctx, query, dumpsterID, orderID, address, at, homeYardName), &dumpsterDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyAcquireFailure(ctx, dumpsterID, homeYardName)
		}
		// the partial unique index on current_order_id rejects a second
		// dumpster for an order that already holds one
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrOrderAlreadyHasDumpster
		}
		return nil, fmt.Errorf("unexpected assignment repository acquire error: %w", err)
	}

	return toDomain(&dumpsterDB), nil
}

// Release resets the dumpster currently pointing at this order. The lookup is
// by current_order_id so a stale pointer elsewhere cannot strand the asset.
func (r *Repository) Release(ctx context.Context, orderID int64) (*entities.Dumpster, error) {
	query := `UPDATE dumpsters
		SET status = 'available',
			current_order_id = NULL,
			address = NULL,
			latitude = NULL,
			longitude = NULL,
			updated_at = NOW()
		WHERE current_order_id = $1
		RETURNING ` + dumpsterColumns

	var dumpsterDB dumpsterRow
	err := scanDumpster(r.querier.QueryRow(ctx, query, orderID), &dumpsterDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository release error: %w", err)
	}

	return toDomain(&dumpsterDB), nil
}

func (r *Repository) GetByCurrentOrderID(ctx context.Context, orderID int64) (*entities.Dumpster, error) {
	query := `SELECT ` + dumpsterColumns + `
		FROM dumpsters
		WHERE current_order_id = $1`

	var dumpsterDB dumpsterRow
	err := scanDumpster(r.querier.QueryRow(ctx, query, orderID), &dumpsterDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get by order error: %w", err)
	}

	return toDomain(&dumpsterDB), nil
}

// GetAssignable lists available dumpsters, excluding the reserved home-yard
// record which only marks the business location.
func (r *Repository) GetAssignable(ctx context.Context, homeYardName string) ([]entities.Dumpster, error) {
	query := `SELECT ` + dumpsterColumns + `
		FROM dumpsters
		WHERE status = 'available'
		  AND current_order_id IS NULL
		  AND name != $1
		ORDER BY last_assigned_at NULLS FIRST, name`

	rows, err := r.querier.Query(ctx, query, homeYardName)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository get assignable error: %w", err)
	}
	defer rows.Close()

	dumpstersDB := make([]dumpsterRow, 0, 8)
	for rows.Next() {
		var dumpsterDB dumpsterRow
		if err := scanDumpster(rows, &dumpsterDB); err != nil {
			return nil, fmt.Errorf("unexpected assignment repository get assignable error: %w", err)
		}
		dumpstersDB = append(dumpstersDB, dumpsterDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected assignment repository get assignable error: %w", err)
	}

	result := make([]entities.Dumpster, len(dumpstersDB))
	for i, dumpsterDB := range dumpstersDB {
		result[i] = *toDomain(&dumpsterDB)
	}
	return result, nil
}

func (r *Repository) SetCoordinates(ctx context.Context, dumpsterID int64, coords entities.Coordinates) error {
	query := `UPDATE dumpsters
		SET latitude = $2,
			longitude = $3,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, dumpsterID, coords.Latitude, coords.Longitude)
	if err != nil {
		return fmt.Errorf("unexpected assignment repository set coordinates error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return assignment.ErrDumpsterNotFound
	}

	return nil
}

func (r *Repository) classifyAcquireFailure(ctx context.Context, dumpsterID int64, homeYardName string) error {
	query := `SELECT name FROM dumpsters WHERE id = $1`

	var name string
	err := r.querier.QueryRow(ctx, query, dumpsterID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return assignment.ErrDumpsterNotFound
		}
		return fmt.Errorf("unexpected assignment repository acquire error: %w", err)
	}

	if name == homeYardName {
		return assignment.ErrHomeYardNotAssignable
	}
	return assignment.ErrDumpsterUnavailable
}

type dumpsterRow struct {
	ID             int64
	Name           string
	Status         string
	CurrentOrderID *int64
	Address        *string
	Latitude       *float64
	Longitude      *float64
	LastAssignedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func scanDumpster(row pgx.Row, dumpsterDB *dumpsterRow) error {
	return row.Scan(
		&dumpsterDB.ID,
		&dumpsterDB.Name,
		&dumpsterDB.Status,
		&dumpsterDB.CurrentOrderID,
		&dumpsterDB.Address,
		&dumpsterDB.Latitude,
		&dumpsterDB.Longitude,
		&dumpsterDB.LastAssignedAt,
		&dumpsterDB.CreatedAt,
		&dumpsterDB.UpdatedAt,
	)
}

func toDomain(d *dumpsterRow) *entities.Dumpster {
	return &entities.Dumpster{
		ID:             d.ID,
		Name:           d.Name,
		Status:         entities.DumpsterStatusType(d.Status),
		CurrentOrderID: d.CurrentOrderID,
		Address:        d.Address,
		Latitude:       d.Latitude,
		Longitude:      d.Longitude,
		LastAssignedAt: d.LastAssignedAt,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}
