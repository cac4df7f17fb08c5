package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/salenest/salenest-api/infrastructure/database/postgres"
	"github.com/salenest/salenest-api/internal/domain"
)

const (
	salesTable   = "sales"
	salesColumns = "id, items, total_amount, payment_method, date"
)

type SaleRepository interface {
	Create(ctx context.Context, sale *domain.Sale) error
	List(ctx context.Context) ([]*domain.Sale, error)
	ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Sale, error)
	GetByID(ctx context.Context, id string) (*domain.Sale, error)
}

type saleRepository struct {
	conn postgres.Queryer
}

func NewSaleRepository(conn postgres.Queryer) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) Create(ctx context.Context, sale *domain.Sale) error {
	query, args, err := insertSaleQuery(sale)
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return wrapDatabaseError(err, "insert sale")
	}

	return nil
}

func (r *saleRepository) List(ctx context.Context) ([]*domain.Sale, error) {
	query, args, err := listSalesQuery(nil).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build list sales query")
	}

	return r.querySales(ctx, query, args)
}

// ListByDateRange retorna as vendas com data em [start, end], da mais
// recente para a mais antiga
func (r *saleRepository) ListByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Sale, error) {
	query, args, err := listSalesQuery(squirrel.And{
		squirrel.GtOrEq{"date": start},
		squirrel.LtOrEq{"date": end},
	}).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build list sales by date range query")
	}

	return r.querySales(ctx, query, args)
}

// GetByID retorna nil, nil quando nenhuma venda tem o id
func (r *saleRepository) GetByID(ctx context.Context, id string) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select(salesColumns).
		From(salesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build get sale query")
	}

	sale, err := scanSale(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, wrapDatabaseError(err, "get sale")
	}

	return sale, nil
}

func (r *saleRepository) querySales(ctx context.Context, query string, args []interface{}) ([]*domain.Sale, error) {
	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapDatabaseError(err, "list sales")
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, errors.Wrap(err, "scan sale")
		}
		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate sales")
	}

	return sales, nil
}

func insertSaleQuery(sale *domain.Sale) (string, []interface{}, error) {
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return "", nil, errors.Wrap(err, "encode sale items")
	}

	// JSONB vai como texto, o lib/pq codificaria []byte como bytea
	query, args, err := squirrel.
		Insert(salesTable).
		Columns("id", "items", "total_amount", "payment_method", "date").
		Values(sale.ID, string(items), sale.TotalAmount, string(sale.PaymentMethod), sale.Date).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, errors.Wrap(err, "build insert sale query")
	}

	return query, args, nil
}

func listSalesQuery(where squirrel.Sqlizer) squirrel.SelectBuilder {
	builder := squirrel.
		Select(salesColumns).
		From(salesTable).
		OrderBy("date DESC", "id DESC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		builder = builder.Where(where)
	}

	return builder
}

func scanSale(row rowScanner) (*domain.Sale, error) {
	sale := &domain.Sale{}
	var items []byte
	var paymentMethod string

	if err := row.Scan(
		&sale.ID,
		&items,
		&sale.TotalAmount,
		&paymentMethod,
		&sale.Date,
	); err != nil {
		return nil, err
	}

	sale.PaymentMethod = domain.PaymentMethod(paymentMethod)
	sale.Items = make([]domain.LineItem, 0)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &sale.Items); err != nil {
			return nil, errors.Wrap(err, "decode sale items")
		}
	}

	return sale, nil
}

func wrapDatabaseError(err error, operation string) error {
	if pqErr, ok := err.(*pq.Error); ok {
		return errors.Wrapf(pqErr, "%s: database error (code: %s)", operation, pqErr.Code)
	}
	return errors.Wrap(err, operation)
}
