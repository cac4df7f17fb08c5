package postgres

import (
	"context"
	_ "embed"

	"github.com/pkg/errors"
)

//go:embed schema.sql
var schemaSQL string

// EnsureSchema cria as tabelas items e sales quando não existem. É
// idempotente e nunca altera uma tabela existente.
func (c *Connection) EnsureSchema(ctx context.Context) error {
	if _, err := c.Exec(ctx, schemaSQL); err != nil {
		return errors.Wrap(err, "ensure schema")
	}
	return nil
}
