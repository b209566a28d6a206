// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-visualiser/infrastructure/database/postgres"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

const (
	loadRunTable       = "dataset_load_runs"
	defaultLoadRunList = 50
)

var loadRunColumns = []string{
	"id",
	"trigger",
	"files",
	"rows_read",
	"sales_kept",
	"total_revenue",
	"fingerprint",
	"drifted",
	"error",
	"started_at",
	"finished_at",
}

//go:generate mockgen -source=load_run.go -destination=mocks/load_run.go -package=mocks
type LoadRunRepository interface {
	Save(ctx context.Context, run *domain.LoadRun) error
	List(ctx context.Context, limit int) ([]*domain.LoadRun, error)
}

type loadRunRepository struct {
	conn postgres.Queryer
}

func NewLoadRunRepository(conn postgres.Queryer) LoadRunRepository {
	return &loadRunRepository{
		conn: conn,
	}
}

func (r *loadRunRepository) Save(ctx context.Context, run *domain.LoadRun) error {
	var runError sql.NullString
	if run.Error != nil {
		runError = sql.NullString{String: *run.Error, Valid: true}
	}

	query, args, err := squirrel.
		Insert(loadRunTable).
		Columns(loadRunColumns...).
		Values(
			run.ID,
			run.Trigger,
			pq.Array(run.Files),
			run.RowsRead,
			run.SalesKept,
			run.TotalRevenue,
			run.Fingerprint,
			run.Drifted,
			runError,
			run.StartedAt,
			run.FinishedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar execução de carga: %w", err)
	}

	return nil
}

// List retorna as execuções mais recentes primeiro
func (r *loadRunRepository) List(ctx context.Context, limit int) ([]*domain.LoadRun, error) {
	if limit <= 0 {
		limit = defaultLoadRunList
	}

	query, args, err := squirrel.
		Select(loadRunColumns...).
		From(loadRunTable).
		OrderBy("started_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	runs := make([]*domain.LoadRun, 0)
	for rows.Next() {
		run, err := scanLoadRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução de carga: %w", err)
		}
		runs = append(runs, run)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return runs, nil
}

func scanLoadRun(rows *sql.Rows) (*domain.LoadRun, error) {
	run := &domain.LoadRun{}
	var runError sql.NullString

	err := rows.Scan(
		&run.ID,
		&run.Trigger,
		pq.Array(&run.Files),
		&run.RowsRead,
		&run.SalesKept,
		&run.TotalRevenue,
		&run.Fingerprint,
		&run.Drifted,
		&runError,
		&run.StartedAt,
		&run.FinishedAt,
	)
	if err != nil {
		return nil, err
	}

	if runError.Valid {
		run.Error = &runError.String
	}

	return run, nil
}
