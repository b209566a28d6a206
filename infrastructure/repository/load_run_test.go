package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

func TestLoadRunRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	startedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	failure := "erro ao ler daily_sales_data_1.csv"
	run := &domain.LoadRun{
		ID:           "aB3xYz",
		Trigger:      domain.LoadTriggerDriftCheck,
		Files:        []string{"daily_sales_data_0.csv", "daily_sales_data_1.csv"},
		RowsRead:     10,
		SalesKept:    4,
		TotalRevenue: decimal.RequireFromString("12.50"),
		Fingerprint:  "abc",
		Drifted:      true,
		Error:        &failure,
		StartedAt:    startedAt,
		FinishedAt:   startedAt.Add(time.Second),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO dataset_load_runs (id,trigger,files,rows_read,sales_kept,total_revenue,fingerprint,drifted,error,started_at,finished_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)")).
		WithArgs(
			"aB3xYz",
			"drift-check",
			"{\"daily_sales_data_0.csv\",\"daily_sales_data_1.csv\"}",
			10,
			4,
			"12.5",
			"abc",
			true,
			failure,
			startedAt,
			startedAt.Add(time.Second),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	repo := NewLoadRunRepository(db)
	require.NoError(t, repo.Save(context.Background(), run))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadRunRepository_SaveError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("INSERT INTO dataset_load_runs").WillReturnError(errors.New("conexão perdida"))

	repo := NewLoadRunRepository(db)
	err = repo.Save(context.Background(), &domain.LoadRun{ID: "x"})
	assert.ErrorContains(t, err, "erro ao salvar execução de carga")
}

func TestLoadRunRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	startedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "trigger", "files", "rows_read", "sales_kept", "total_revenue",
		"fingerprint", "drifted", "error", "started_at", "finished_at",
	}).
		AddRow("r2", "drift-check", []byte("{daily_sales_data_0.csv}"), 3, 1, []byte("6.00"), "f2", false, nil, startedAt.Add(time.Hour), startedAt.Add(time.Hour)).
		AddRow("r1", "startup", []byte("{daily_sales_data_0.csv}"), 3, 1, []byte("6.00"), "f1", false, "falhou", startedAt, startedAt)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, trigger, files, rows_read, sales_kept, total_revenue, fingerprint, drifted, error, started_at, finished_at FROM dataset_load_runs ORDER BY started_at DESC LIMIT 50")).
		WillReturnRows(rows)

	repo := NewLoadRunRepository(db)
	runs, err := repo.List(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	assert.Equal(t, "r2", runs[0].ID)
	assert.Equal(t, []string{"daily_sales_data_0.csv"}, runs[0].Files)
	assert.True(t, decimal.NewFromInt(6).Equal(runs[0].TotalRevenue))
	assert.Nil(t, runs[0].Error)
	require.NotNil(t, runs[1].Error)
	assert.Equal(t, "falhou", *runs[1].Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}
