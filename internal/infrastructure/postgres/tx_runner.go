package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/estatecrm-api/internal/application/usecase"
	"github.com/jhoicas/estatecrm-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.PropertyTxRunner.
var _ usecase.PropertyTxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// La carga masiva de propiedades lo usa para que un lote sea todo-o-nada.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunProperties inicia una transacción, ejecuta fn con un repo de propiedades
// atado a la tx y hace Commit o Rollback.
func (r *TxRunner) RunProperties(ctx context.Context, fn func(propertyRepo repository.PropertyRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	propertyRepo := NewPropertyRepository(tx)

	if err := fn(propertyRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
