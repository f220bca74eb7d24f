package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"rolloff/internal/entities"
	"rolloff/internal/repository"
	"rolloff/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, order_number, quote_id,
		customer_name, customer_phone, customer_email,
		address, city, state, zip,
		service_description, status, assigned_to,
		scheduled_delivery_date, scheduled_pickup_date,
		actual_delivery_date, actual_pickup_date, completed_at,
		quoted_price_cents, final_price_cents,
		internal_notes, driver_notes,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	var status *string
	if orderModify.Status != nil {
		statusStr := orderModify.Status.String()
		status = &statusStr
	}

	query := `INSERT INTO orders (order_number, quote_id,
			customer_name, customer_phone, customer_email,
			address, city, state, zip,
			service_description, status, assigned_to,
			scheduled_delivery_date, scheduled_pickup_date,
			quoted_price_cents, final_price_cents,
			internal_notes, driver_notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, COALESCE($17, ''), COALESCE($18, ''))
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderModify.OrderNumber,
		orderModify.QuoteID,
		orderModify.CustomerName,
		orderModify.CustomerPhone,
		orderModify.CustomerEmail,
		orderModify.Address,
		orderModify.City,
		orderModify.State,
		orderModify.Zip,
		orderModify.ServiceDescription,
		status,
		orderModify.AssignedTo,
		orderModify.ScheduledDeliveryDate,
		orderModify.ScheduledPickupDate,
		orderModify.QuotedPriceCents,
		orderModify.FinalPriceCents,
		orderModify.InternalNotes,
		orderModify.DriverNotes,
	), &orderDB)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrOrderNumberTaken
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderDB OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id), &orderDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) GetAll(ctx context.Context, status *entities.OrderStatusType) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders").
		OrderBy("scheduled_delivery_date NULLS LAST", "id")

	if status != nil {
		builder = builder.Where(sq.Eq{"status": status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}
	defer rows.Close()

	ordersDB := make([]OrderDB, 0, 16)
	for rows.Next() {
		var orderDB OrderDB
		if err := scanOrder(rows, &orderDB); err != nil {
			return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
		}
		ordersDB = append(ordersDB, orderDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository getall error: %w", err)
	}

	return ToDomainList(ordersDB), nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	builder := qb.
		Update("orders")

	if orderModify.CustomerName != nil {
		builder = builder.Set("customer_name", orderModify.CustomerName)
	}
	if orderModify.CustomerPhone != nil {
		builder = builder.Set("customer_phone", orderModify.CustomerPhone)
	}
	if orderModify.CustomerEmail != nil {
		builder = builder.Set("customer_email", orderModify.CustomerEmail)
	}
	if orderModify.Address != nil {
		builder = builder.Set("address", orderModify.Address)
	}
	if orderModify.City != nil {
		builder = builder.Set("city", orderModify.City)
	}
	if orderModify.State != nil {
		builder = builder.Set("state", orderModify.State)
	}
	if orderModify.Zip != nil {
		builder = builder.Set("zip", orderModify.Zip)
	}
	if orderModify.ServiceDescription != nil {
		builder = builder.Set("service_description", orderModify.ServiceDescription)
	}
	if orderModify.AssignedTo != nil {
		builder = builder.Set("assigned_to", orderModify.AssignedTo)
	}
	if orderModify.ScheduledDeliveryDate != nil {
		builder = builder.Set("scheduled_delivery_date", orderModify.ScheduledDeliveryDate)
	}
	if orderModify.ScheduledPickupDate != nil {
		builder = builder.Set("scheduled_pickup_date", orderModify.ScheduledPickupDate)
	}
	if orderModify.QuotedPriceCents != nil {
		builder = builder.Set("quoted_price_cents", orderModify.QuotedPriceCents)
	}
	if orderModify.FinalPriceCents != nil {
		builder = builder.Set("final_price_cents", orderModify.FinalPriceCents)
	}
	if orderModify.InternalNotes != nil {
		builder = builder.Set("internal_notes", orderModify.InternalNotes)
	}
	if orderModify.DriverNotes != nil {
		builder = builder.Set("driver_notes", orderModify.DriverNotes)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModify.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = scanOrder(r.querier.QueryRow(ctx, query, args...), &orderDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, orderID int64, update entities.OrderStatusUpdate) (*entities.Order, error) {
	builder := qb.
		Update("orders").
		Set("status", update.Status.String()).
		Set("updated_at", sq.Expr("NOW()"))

	if update.ActualDeliveryDate.Set {
		builder = builder.Set("actual_delivery_date", update.ActualDeliveryDate.Value)
	}
	if update.ActualPickupDate.Set {
		builder = builder.Set("actual_pickup_date", update.ActualPickupDate.Value)
	}
	if update.CompletedAt.Set {
		builder = builder.Set("completed_at", update.CompletedAt.Value)
	}

	builder = builder.
		Where(sq.Eq{"id": orderID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	var orderDB OrderDB
	err = scanOrder(r.querier.QueryRow(ctx, query, args...), &orderDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM orders WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected order repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func scanOrder(row pgx.Row, orderDB *OrderDB) error {
	return row.Scan(
		&orderDB.ID,
		&orderDB.OrderNumber,
		&orderDB.QuoteID,
		&orderDB.CustomerName,
		&orderDB.CustomerPhone,
		&orderDB.CustomerEmail,
		&orderDB.Address,
		&orderDB.City,
		&orderDB.State,
		&orderDB.Zip,
		&orderDB.ServiceDescription,
		&orderDB.Status,
		&orderDB.AssignedTo,
		&orderDB.ScheduledDeliveryDate,
		&orderDB.ScheduledPickupDate,
		&orderDB.ActualDeliveryDate,
		&orderDB.ActualPickupDate,
		&orderDB.CompletedAt,
		&orderDB.QuotedPriceCents,
		&orderDB.FinalPriceCents,
		&orderDB.InternalNotes,
		&orderDB.DriverNotes,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
}
