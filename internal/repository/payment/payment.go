package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"rolloff/internal/entities"
	"rolloff/internal/repository"
	"rolloff/internal/service/payment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const paymentColumns = `id, order_id, provider_invoice_id, payment_number, status,
		total_amount_cents, paid_amount_cents, due_date,
		sent_at, viewed_at, paid_at, created_at, updated_at`

// activeStatuses mirrors entities.PaymentStatusType.Active.
var activeStatuses = []string{"draft", "pending", "sent", "viewed", "partially_paid", "overdue"}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, paymentModify entities.PaymentModify) (*entities.Payment, error) {
	var status *string
	if paymentModify.Status != nil {
		statusStr := paymentModify.Status.String()
		status = &statusStr
	}

	query := `INSERT INTO payments (order_id, provider_invoice_id, payment_number, status,
			total_amount_cents, paid_amount_cents, due_date)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, 0), $7)
		RETURNING ` + paymentColumns

	var paymentDB PaymentDB
	err := scanPayment(r.querier.QueryRow(
		ctx,
		query,
		paymentModify.OrderID,
		paymentModify.ProviderInvoiceID,
		paymentModify.PaymentNumber,
		status,
		paymentModify.TotalAmountCents,
		paymentModify.PaidAmountCents,
		paymentModify.DueDate,
	), &paymentDB)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, payment.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(&paymentDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE id = $1`

	var paymentDB PaymentDB
	err := scanPayment(r.querier.QueryRow(ctx, query, id), &paymentDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository getbyid error: %w", err)
	}

	return ToDomain(&paymentDB), nil
}

// GetActiveByOrderID returns the single payment that still blocks creating a
// new one for this order, if any.
func (r *Repository) GetActiveByOrderID(ctx context.Context, orderID int64) (*entities.Payment, error) {
	builder := qb.
		Select(paymentColumns).
		From("payments").
		Where(sq.Eq{"order_id": orderID}).
		Where(sq.Eq{"status": activeStatuses}).
		OrderBy("created_at DESC").
		Limit(1)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository get active error: %w", err)
	}

	var paymentDB PaymentDB
	err = scanPayment(r.querier.QueryRow(ctx, query, args...), &paymentDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository get active error: %w", err)
	}

	return ToDomain(&paymentDB), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) ([]entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE order_id = $1
		ORDER BY created_at DESC`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository get by order error: %w", err)
	}
	defer rows.Close()

	paymentsDB := make([]PaymentDB, 0, 4)
	for rows.Next() {
		var paymentDB PaymentDB
		if err := scanPayment(rows, &paymentDB); err != nil {
			return nil, fmt.Errorf("unexpected payment repository get by order error: %w", err)
		}
		paymentsDB = append(paymentsDB, paymentDB)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected payment repository get by order error: %w", err)
	}

	return ToDomainList(paymentsDB), nil
}

func (r *Repository) Update(ctx context.Context, paymentModify entities.PaymentModify) (*entities.Payment, error) {
	builder := qb.
		Update("payments")

	if paymentModify.Status != nil {
		builder = builder.Set("status", paymentModify.Status.String())
	}
	if paymentModify.TotalAmountCents != nil {
		builder = builder.Set("total_amount_cents", paymentModify.TotalAmountCents)
	}
	if paymentModify.PaidAmountCents != nil {
		builder = builder.Set("paid_amount_cents", paymentModify.PaidAmountCents)
	}
	if paymentModify.DueDate != nil {
		builder = builder.Set("due_date", paymentModify.DueDate)
	}
	if paymentModify.SentAt != nil {
		builder = builder.Set("sent_at", paymentModify.SentAt)
	}
	if paymentModify.ViewedAt != nil {
		builder = builder.Set("viewed_at", paymentModify.ViewedAt)
	}
	if paymentModify.PaidAt != nil {
		builder = builder.Set("paid_at", paymentModify.PaidAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": paymentModify.ID}).
		Suffix("RETURNING " + paymentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository update error: %w", err)
	}

	var paymentDB PaymentDB
	err = scanPayment(r.querier.QueryRow(ctx, query, args...), &paymentDB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository update error: %w", err)
	}

	return ToDomain(&paymentDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM payments WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected payment repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return payment.ErrPaymentNotFound
	}

	return nil
}

// MarkOverdueWhereDue flips locally tracked payments past their due date to
// overdue. The next provider reconciliation still wins.
func (r *Repository) MarkOverdueWhereDue(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE payments
		SET status = 'overdue',
			updated_at = NOW()
		WHERE status IN ('pending', 'sent', 'viewed')
		  AND due_date IS NOT NULL
		  AND due_date < $1`

	result, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected payment repository mark overdue error: %w", err)
	}

	return result.RowsAffected(), nil
}

func scanPayment(row pgx.Row, paymentDB *PaymentDB) error {
	return row.Scan(
		&paymentDB.ID,
		&paymentDB.OrderID,
		&paymentDB.ProviderInvoiceID,
		&paymentDB.PaymentNumber,
		&paymentDB.Status,
		&paymentDB.TotalAmountCents,
		&paymentDB.PaidAmountCents,
		&paymentDB.DueDate,
		&paymentDB.SentAt,
		&paymentDB.ViewedAt,
		&paymentDB.PaidAt,
		&paymentDB.CreatedAt,
		&paymentDB.UpdatedAt,
	)
}
