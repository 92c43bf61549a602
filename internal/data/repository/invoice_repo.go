package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const invoiceColumns = `id, order_id, customer_id, room_id, check_in, check_out, services, note,
	booked_by, created_by, paid_by, paid_at, room_charge, service_charge, total_amount,
	status, version, created_at, updated_at`

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	FindByCreatedBy(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Invoice, error)
	Count(ctx context.Context) (int64, error)

	// Business queries
	FindActive(ctx context.Context) ([]*entity.Invoice, error)
	FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) (*entity.Invoice, error)

	// UpdateVersioned writes the invoice only if the stored version still
	// matches invoice.Version, bumping the counter on success. Returns
	// false on a version mismatch (concurrent writer won).
	UpdateVersioned(ctx context.Context, invoice *entity.Invoice) (bool, error)
}

type invoiceRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewInvoiceRepository(db database.PgxIface, log *zap.Logger) InvoiceRepository {
	return &invoiceRepository{
		db:  db,
		log: log.With(zap.String("repository", "invoice")),
	}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.db.Exec(ctx, query,
		invoice.ID,
		invoice.OrderID,
		invoice.CustomerID,
		invoice.RoomID,
		invoice.CheckIn,
		invoice.CheckOut,
		invoice.Services,
		invoice.Note,
		invoice.BookedBy,
		invoice.CreatedBy,
		invoice.PaidBy,
		invoice.PaidAt,
		invoice.RoomCharge,
		invoice.ServiceCharge,
		invoice.TotalAmount,
		invoice.Status,
		invoice.Version,
		invoice.CreatedAt,
		invoice.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create invoice",
			zap.Error(err),
			zap.String("order_id", invoice.OrderID),
			zap.String("room_id", invoice.RoomID.String()),
		)
		return fmt.Errorf("create invoice %s: %w", invoice.OrderID, err)
	}

	return nil
}

func (r *invoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`

	invoice, err := scanInvoiceRow(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find invoice by ID",
			zap.Error(err),
			zap.String("invoice_id", id.String()),
		)
		return nil, fmt.Errorf("find invoice by ID %s: %w", id.String(), err)
	}

	return invoice, nil
}

func (r *invoiceRepository) FindByCreatedBy(ctx context.Context, userID uuid.UUID) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE created_by = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find invoices by creator",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find invoices by creator %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanInvoices(rows, r.log)
}

func (r *invoiceRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all invoices",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all invoices: %w", err)
	}
	defer rows.Close()

	return scanInvoices(rows, r.log)
}

func (r *invoiceRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM invoices`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count invoices", zap.Error(err))
		return 0, fmt.Errorf("count invoices: %w", err)
	}

	return count, nil
}

func (r *invoiceRepository) FindActive(ctx context.Context) ([]*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE status IN ($1, $2)
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, entity.StatusAwaitingConfirmation, entity.StatusAwaitingPayment)
	if err != nil {
		r.log.Error("Failed to find active invoices", zap.Error(err))
		return nil, fmt.Errorf("find active invoices: %w", err)
	}
	defer rows.Close()

	return scanInvoices(rows, r.log)
}

func (r *invoiceRepository) FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) (*entity.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE room_id = $1 AND status IN ($2, $3)
	`

	invoice, err := scanInvoiceRow(r.db.QueryRow(ctx, query, roomID,
		entity.StatusAwaitingConfirmation, entity.StatusAwaitingPayment))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find active invoice by room",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find active invoice by room %s: %w", roomID.String(), err)
	}

	return invoice, nil
}

func (r *invoiceRepository) UpdateVersioned(ctx context.Context, invoice *entity.Invoice) (bool, error) {
	query := `
		UPDATE invoices
		SET customer_id = $3, check_in = $4, check_out = $5, services = $6, note = $7,
		    paid_by = $8, paid_at = $9, room_charge = $10, service_charge = $11,
		    total_amount = $12, status = $13, version = version + 1, updated_at = $14
		WHERE id = $1 AND version = $2
	`

	result, err := r.db.Exec(ctx, query,
		invoice.ID,
		invoice.Version,
		invoice.CustomerID,
		invoice.CheckIn,
		invoice.CheckOut,
		invoice.Services,
		invoice.Note,
		invoice.PaidBy,
		invoice.PaidAt,
		invoice.RoomCharge,
		invoice.ServiceCharge,
		invoice.TotalAmount,
		invoice.Status,
		invoice.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update invoice",
			zap.Error(err),
			zap.String("invoice_id", invoice.ID.String()),
			zap.Int64("version", invoice.Version),
		)
		return false, fmt.Errorf("update invoice %s: %w", invoice.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return false, nil
	}

	invoice.Version++
	return true, nil
}

func scanInvoiceRow(row pgx.Row) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := row.Scan(
		&invoice.ID,
		&invoice.OrderID,
		&invoice.CustomerID,
		&invoice.RoomID,
		&invoice.CheckIn,
		&invoice.CheckOut,
		&invoice.Services,
		&invoice.Note,
		&invoice.BookedBy,
		&invoice.CreatedBy,
		&invoice.PaidBy,
		&invoice.PaidAt,
		&invoice.RoomCharge,
		&invoice.ServiceCharge,
		&invoice.TotalAmount,
		&invoice.Status,
		&invoice.Version,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func scanInvoices(rows pgx.Rows, log *zap.Logger) ([]*entity.Invoice, error) {
	var invoices []*entity.Invoice
	for rows.Next() {
		invoice, err := scanInvoiceRow(rows)
		if err != nil {
			log.Error("Failed to scan invoice row", zap.Error(err))
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		invoices = append(invoices, invoice)
	}

	return invoices, nil
}
