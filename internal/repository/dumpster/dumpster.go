package dumpster

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"rolloff/internal/entities"
	"rolloff/internal/repository"
	"rolloff/internal/service/dumpster"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

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

func (r *Repository) Create(ctx context.Context, dumpsterModifyEntity entities.DumpsterModify) (int64, error) {
	dumpsterModifyModel := FromDomainModify(&dumpsterModifyEntity)
	query := `INSERT INTO dumpsters (name, status)
		VALUES ($1, $2)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		dumpsterModifyModel.Name,
		dumpsterModifyModel.Status,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, dumpster.ErrConflict
		}
		return 0, fmt.Errorf("unexpected dumpster repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, dumpsterModifyEntity entities.DumpsterModify) (*entities.Dumpster, error) {
	dumpsterModifyModel := FromDomainModify(&dumpsterModifyEntity)

	builder := qb.
		Update("dumpsters")

	if dumpsterModifyModel.Name != nil {
		builder = builder.Set("name", dumpsterModifyModel.Name)
	}
	if dumpsterModifyModel.Status != nil {
		builder = builder.Set("status", dumpsterModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": dumpsterModifyModel.ID}).
		Suffix("RETURNING " + dumpsterColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected dumpster repository update error: %w", err)
	}

	var dumpsterDB DumpsterDB
	err = scanDumpster(r.querier.QueryRow(ctx, query, args...), &dumpsterDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dumpster.ErrDumpsterNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, dumpster.ErrConflict
		}

		return nil, fmt.Errorf("unexpected dumpster repository update error: %w", err)
	}

	return ToDomain(&dumpsterDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Dumpster, error) {
	query := `SELECT ` + dumpsterColumns + `
		FROM dumpsters
		WHERE id = $1`

	var dumpsterDB DumpsterDB
	err := scanDumpster(r.querier.QueryRow(ctx, query, id), &dumpsterDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dumpster.ErrDumpsterNotFound
		}

		return nil, fmt.Errorf("unexpected dumpster repository getbyid error: %w", err)
	}

	return ToDomain(&dumpsterDB), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Dumpster, error) {
	query := `SELECT ` + dumpsterColumns + `
		FROM dumpsters
		ORDER BY name`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected dumpster repository getall error: %w", err)
	}
	defer rows.Close()

	dumpstersDB := make([]DumpsterDB, 0, 8)
	for rows.Next() {
		var dumpsterDB DumpsterDB
		if err := scanDumpster(rows, &dumpsterDB); err != nil {
			return nil, fmt.Errorf("unexpected dumpster repository getall error: %w", err)
		}
		dumpstersDB = append(dumpstersDB, dumpsterDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected dumpster repository getall error: %w", err)
	}

	return ToDomainList(dumpstersDB), nil
}

func scanDumpster(row pgx.Row, dumpsterDB *DumpsterDB) error {
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
