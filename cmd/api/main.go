package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualiser/infrastructure/database/postgres"
	"github.com/vfg2006/sales-visualiser/infrastructure/dataset/csvfile"
	"github.com/vfg2006/sales-visualiser/infrastructure/repository"
	"github.com/vfg2006/sales-visualiser/internal/api"
	"github.com/vfg2006/sales-visualiser/internal/config"
	"github.com/vfg2006/sales-visualiser/internal/scheduler"
	"github.com/vfg2006/sales-visualiser/internal/usecases/authenticating"
	"github.com/vfg2006/sales-visualiser/internal/usecases/loading"
	"github.com/vfg2006/sales-visualiser/internal/usecases/visualising"
	"github.com/vfg2006/sales-visualiser/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel := log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// O dataset é carregado uma única vez; qualquer erro impede o servidor de subir
	startedAt := time.Now()
	source := csvfile.NewSource(cfg.Dataset.Dir, cfg.Dataset.FilePattern)
	loader := loading.NewService(source, cfg.Dataset.TargetProduct)

	dataset, err := loader.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar os arquivos de vendas")
	}

	visualiser := visualising.NewService(dataset)
	if cfg.SecretKey == "" {
		logrus.Warn("SECRET_KEY não configurada, rotas administrativas recusarão todos os tokens")
	}
	authenticator := authenticating.NewService(cfg)

	var loadRunRepo repository.LoadRunRepository
	if cfg.Database.Enabled {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()

		loadRunRepo = repository.NewLoadRunRepository(pgConn)
	} else {
		logrus.Info("Banco de dados desabilitado, histórico de cargas não será registrado")
	}

	driftCheckService := scheduler.NewDatasetDriftCheckService(loader, dataset.Summary(), loadRunRepo, cfg)

	if err := driftCheckService.RecordStartup(ctx, startedAt); err != nil {
		logrus.WithError(err).Error("Erro ao registrar a carga inicial do dataset")
	}

	if err := driftCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de verificação de divergência do dataset")
	}

	server, err := api.New(
		cfg,
		visualiser,
		authenticator,
		loadRunRepo,
		driftCheckService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
