package quote

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"rolloff/internal/entities"
	"rolloff/internal/service/quote"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const quoteColumns = `id, customer_name, customer_phone, customer_email,
		address, city, state, zip,
		service_description, status,
		dropoff_date, dropoff_time, pickup_date,
		quoted_price_cents, notes,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, quoteModify entities.QuoteModify) (*entities.Quote, error) {
	var status *string
	if quoteModify.Status != nil {
		statusStr := quoteModify.Status.String()
		status = &statusStr
	}

	query := `INSERT INTO quotes (customer_name, customer_phone, customer_email,
			address, city, state, zip,
			service_description, status,
			dropoff_date, dropoff_time, pickup_date,
			quoted_price_cents, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, COALESCE($13, 0), COALESCE($14, ''))
		RETURNING ` + quoteColumns

	var quoteDB QuoteDB
	err := scanQuote(r.querier.QueryRow(
		ctx,
		query,
		quoteModify.CustomerName,
		quoteModify.CustomerPhone,
		quoteModify.CustomerEmail,
		quoteModify.Address,
		quoteModify.City,
		quoteModify.State,
		quoteModify.Zip,
		quoteModify.ServiceDescription,
		status,
		quoteModify.DropoffDate,
		quoteModify.DropoffTime,
		quoteModify.PickupDate,
		quoteModify.QuotedPriceCents,
		quoteModify.Notes,
	), &quoteDB)
	if err != nil {
		return nil, fmt.Errorf("unexpected quote repository create error: %w", err)
	}

	return ToDomain(&quoteDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Quote, error) {
	query := `SELECT ` + quoteColumns + `
		FROM quotes
		WHERE id = $1`

	var quoteDB QuoteDB
	err := scanQuote(r.querier.QueryRow(ctx, query, id), &quoteDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, quote.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("unexpected quote repository getbyid error: %w", err)
	}

	return ToDomain(&quoteDB), nil
}

func (r *Repository) GetAll(ctx context.Context, status *entities.QuoteStatusType) ([]entities.Quote, error) {
	builder := qb.
		Select(quoteColumns).
		From("quotes").
		OrderBy("created_at DESC")

	if status != nil {
		builder = builder.Where(sq.Eq{"status": status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected quote repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected quote repository getall error: %w", err)
	}
	defer rows.Close()

	quotesDB := make([]QuoteDB, 0, 16)
	for rows.Next() {
		var quoteDB QuoteDB
		if err := scanQuote(rows, &quoteDB); err != nil {
			return nil, fmt.Errorf("unexpected quote repository getall error: %w", err)
		}
		quotesDB = append(quotesDB, quoteDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected quote repository getall error: %w", err)
	}

	return ToDomainList(quotesDB), nil
}

func (r *Repository) Update(ctx context.Context, quoteModify entities.QuoteModify) (*entities.Quote, error) {
	builder := qb.
		Update("quotes")

	if quoteModify.CustomerName != nil {
		builder = builder.Set("customer_name", quoteModify.CustomerName)
	}
	if quoteModify.CustomerPhone != nil {
		builder = builder.Set("customer_phone", quoteModify.CustomerPhone)
	}
	if quoteModify.CustomerEmail != nil {
		builder = builder.Set("customer_email", quoteModify.CustomerEmail)
	}
	if quoteModify.Address != nil {
		builder = builder.Set("address", quoteModify.Address)
	}
	if quoteModify.City != nil {
		builder = builder.Set("city", quoteModify.City)
	}
	if quoteModify.State != nil {
		builder = builder.Set("state", quoteModify.State)
	}
	if quoteModify.Zip != nil {
		builder = builder.Set("zip", quoteModify.Zip)
	}
	if quoteModify.ServiceDescription != nil {
		builder = builder.Set("service_description", quoteModify.ServiceDescription)
	}
	if quoteModify.Status != nil {
		builder = builder.Set("status", quoteModify.Status.String())
	}
	if quoteModify.DropoffDate != nil {
		builder = builder.Set("dropoff_date", quoteModify.DropoffDate)
	}
	if quoteModify.DropoffTime != nil {
		builder = builder.Set("dropoff_time", quoteModify.DropoffTime)
	}
	if quoteModify.PickupDate != nil {
		builder = builder.Set("pickup_date", quoteModify.PickupDate)
	}
	if quoteModify.QuotedPriceCents != nil {
		builder = builder.Set("quoted_price_cents", quoteModify.QuotedPriceCents)
	}
	if quoteModify.Notes != nil {
		builder = builder.Set("notes", quoteModify.Notes)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": quoteModify.ID}).
		Suffix("RETURNING " + quoteColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected quote repository update error: %w", err)
	}

	var quoteDB QuoteDB
	err = scanQuote(r.querier.QueryRow(ctx, query, args...), &quoteDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, quote.ErrQuoteNotFound
		}
		return nil, fmt.Errorf("unexpected quote repository update error: %w", err)
	}

	return ToDomain(&quoteDB), nil
}

func scanQuote(row pgx.Row, quoteDB *QuoteDB) error {
	return row.Scan(
		&quoteDB.ID,
		&quoteDB.CustomerName,
		&quoteDB.CustomerPhone,
		&quoteDB.CustomerEmail,
		&quoteDB.Address,
		&quoteDB.City,
		&quoteDB.State,
		&quoteDB.Zip,
		&quoteDB.ServiceDescription,
		&quoteDB.Status,
		&quoteDB.DropoffDate,
		&quoteDB.DropoffTime,
		&quoteDB.PickupDate,
		&quoteDB.QuotedPriceCents,
		&quoteDB.Notes,
		&quoteDB.CreatedAt,
		&quoteDB.UpdatedAt,
	)
}
