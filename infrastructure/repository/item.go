package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/salenest/salenest-api/infrastructure/database/postgres"
	"github.com/salenest/salenest-api/internal/domain"
)

const itemsTable = "items"

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	List(ctx context.Context) ([]*domain.Item, error)
	// Update e Delete informam se alguma linha tinha o id
	Update(ctx context.Context, id string, input domain.ItemInput) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type itemRepository struct {
	conn postgres.Queryer
}

func NewItemRepository(conn postgres.Queryer) ItemRepository {
	return &itemRepository{
		conn: conn,
	}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.Item) error {
	query, args, err := squirrel.
		Insert(itemsTable).
		Columns("id", "item_image", "item_name", "item_price").
		Values(item.ID, item.ItemImage, item.ItemName, item.ItemPrice).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "build insert item query")
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return wrapDatabaseError(err, "insert item")
	}

	return nil
}

// List retorna todos os itens na ordem de inserção
func (r *itemRepository) List(ctx context.Context) ([]*domain.Item, error) {
	query, args, err := squirrel.
		Select("id, item_image, item_name, item_price").
		From(itemsTable).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "build list items query")
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapDatabaseError(err, "list items")
	}
	defer rows.Close()

	items := make([]*domain.Item, 0)
	for rows.Next() {
		item := &domain.Item{}
		if err := rows.Scan(&item.ID, &item.ItemImage, &item.ItemName, &item.ItemPrice); err != nil {
			return nil, errors.Wrap(err, "scan item")
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate items")
	}

	return items, nil
}

func (r *itemRepository) Update(ctx context.Context, id string, input domain.ItemInput) (bool, error) {
	query, args, err := updateItemQuery(id, input)
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, wrapDatabaseError(err, "update item")
	}

	return matchedAny(result.RowsAffected())
}

func (r *itemRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := squirrel.
		Delete(itemsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, errors.Wrap(err, "build delete item query")
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return false, wrapDatabaseError(err, "delete item")
	}

	return matchedAny(result.RowsAffected())
}

// updateItemQuery substitui todas as colunas graváveis, inclusive campos ausentes
func updateItemQuery(id string, input domain.ItemInput) (string, []interface{}, error) {
	query, args, err := squirrel.
		Update(itemsTable).
		Set("item_image", input.ItemImage).
		Set("item_name", input.ItemName).
		Set("item_price", input.ItemPrice).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", nil, errors.Wrap(err, "build update item query")
	}

	return query, args, nil
}

func matchedAny(rowsAffected int64, err error) (bool, error) {
	if err != nil {
		return false, errors.Wrap(err, "rows affected")
	}
	return rowsAffected > 0, nil
}
