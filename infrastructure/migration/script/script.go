package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualiser/infrastructure/database/postgres"
	"github.com/vfg2006/sales-visualiser/internal/config"
)

// Cada passo é idempotente, o script pode rodar a cada deploy
var migrations = []struct {
	name      string
	statement string
}{
	{
		name: "cria tabela dataset_load_runs",
		statement: `CREATE TABLE IF NOT EXISTS dataset_load_runs (
	id            VARCHAR(32) PRIMARY KEY,
	trigger       VARCHAR(32) NOT NULL,
	files         TEXT[] NOT NULL DEFAULT '{}',
	rows_read     INTEGER NOT NULL DEFAULT 0,
	sales_kept    INTEGER NOT NULL DEFAULT 0,
	total_revenue NUMERIC(18, 2) NOT NULL DEFAULT 0,
	fingerprint   VARCHAR(64) NOT NULL DEFAULT '',
	drifted       BOOLEAN NOT NULL DEFAULT FALSE,
	error         TEXT,
	started_at    TIMESTAMPTZ NOT NULL,
	finished_at   TIMESTAMPTZ NOT NULL
)`,
	},
	{
		name:      "cria índice por started_at",
		statement: `CREATE INDEX IF NOT EXISTS idx_dataset_load_runs_started_at ON dataset_load_runs (started_at DESC)`,
	},
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return migrate(ctx, tx)
	}); err != nil {
		logrus.WithError(err).Fatal("Migração abortada")
	}

	logrus.Info("Migração concluída com sucesso")
}

func migrate(ctx context.Context, db postgres.Queryer) error {
	for _, m := range migrations {
		startTime := time.Now()
		if _, err := db.ExecContext(ctx, m.statement); err != nil {
			return err
		}
		logrus.WithField("duration", time.Since(startTime)).Infof("Passo concluído: %s", m.name)
	}
	return nil
}
