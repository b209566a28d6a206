// Package scheduler contém os serviços agendados que rodam ao lado do painel
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualiser/infrastructure/repository"
	"github.com/vfg2006/sales-visualiser/internal/config"
	"github.com/vfg2006/sales-visualiser/internal/domain"
	"github.com/vfg2006/sales-visualiser/internal/usecases/loading"
	"github.com/vfg2006/sales-visualiser/pkg/utils"
)

type DatasetDriftCheckConfig struct {
	CronSchedule string
	Enabled      bool
}

// DatasetDriftCheckService relê os CSVs periodicamente e compara com o dataset em memória.
// O dataset servido nunca é trocado: divergências só geram alerta e registro.
type DatasetDriftCheckService struct {
	scheduler           *gocron.Scheduler
	loader              loading.Loader
	reference           domain.LoadSummary
	loadRunRepo         repository.LoadRunRepository
	config              DatasetDriftCheckConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastRun             *domain.LoadRun
	newID               func() (string, error)
	now                 func() time.Time
}

// NewDatasetDriftCheckService recebe o resumo da carga servida como referência.
// loadRunRepo pode ser nil quando o banco está desabilitado.
func NewDatasetDriftCheckService(
	loader loading.Loader,
	reference domain.LoadSummary,
	loadRunRepo repository.LoadRunRepository,
	cfg *config.Config,
) *DatasetDriftCheckService {
	driftConfig := DatasetDriftCheckConfig{
		CronSchedule: cfg.DatasetDriftCheck.CronSchedule,
		Enabled:      cfg.DatasetDriftCheck.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": driftConfig.CronSchedule,
		"enabled":       driftConfig.Enabled,
	}).Info("Configuração da verificação de divergência do dataset carregada")

	return &DatasetDriftCheckService{
		scheduler:   gocron.NewScheduler(time.Local),
		loader:      loader,
		reference:   reference,
		loadRunRepo: loadRunRepo,
		config:      driftConfig,
		newID:       utils.GenerateID,
		now:         time.Now,
	}
}

func (s *DatasetDriftCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Verificação de divergência do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de verificação de divergência do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.CheckDrift(ctx); err != nil {
			logrus.WithError(err).Error("Erro na verificação de divergência do dataset")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar verificação de divergência do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de verificação de divergência do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// RecordStartup registra a carga feita na inicialização do processo
func (s *DatasetDriftCheckService) RecordStartup(ctx context.Context, startedAt time.Time) error {
	id, err := s.newID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	run := domain.NewLoadRun(id, domain.LoadTriggerStartup, s.reference, startedAt)
	return s.save(ctx, run)
}

// CheckDrift relê os arquivos com o mesmo carregador e compara a impressão digital.
// Falhas de leitura ficam registradas na execução e não afetam o dataset servido.
// Retorna nil, nil quando outra verificação já está em andamento.
func (s *DatasetDriftCheckService) CheckDrift(ctx context.Context) (*domain.LoadRun, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Verificação de divergência do dataset já está em execução")
		return nil, nil
	}
	s.syncRunning = true
	startedAt := s.now()
	s.lastSyncStartedAt = startedAt
	s.syncMutex.Unlock()

	var run *domain.LoadRun
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = s.now()
		if run != nil {
			s.lastRun = run
		}
		s.syncMutex.Unlock()
	}()

	id, err := s.newID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da execução: %w", err)
	}

	dataset, loadErr := s.loader.Load()
	if loadErr != nil {
		message := loadErr.Error()
		run = &domain.LoadRun{
			ID:         id,
			Trigger:    domain.LoadTriggerDriftCheck,
			Error:      &message,
			StartedAt:  startedAt,
			FinishedAt: s.now(),
		}
		logrus.WithError(loadErr).Error("Falha ao reler os arquivos de vendas, dataset em memória mantido")
		return run, s.save(ctx, run)
	}

	run = domain.NewLoadRun(id, domain.LoadTriggerDriftCheck, dataset.Summary(), startedAt)
	run.Drifted = run.Fingerprint != s.reference.Fingerprint

	fields := logrus.Fields{
		"trigger":    run.Trigger,
		"files":      len(run.Files),
		"sales_kept": run.SalesKept,
		"drifted":    run.Drifted,
	}
	if run.Drifted {
		logrus.WithFields(fields).Warn("Arquivos de vendas divergem do dataset em memória, reinicie o processo para recarregar")
	} else {
		logrus.WithFields(fields).Info("Arquivos de vendas conferem com o dataset em memória")
	}

	return run, s.save(ctx, run)
}

func (s *DatasetDriftCheckService) save(ctx context.Context, run *domain.LoadRun) error {
	if s.loadRunRepo == nil {
		return nil
	}

	if err := s.loadRunRepo.Save(ctx, run); err != nil {
		return fmt.Errorf("erro ao registrar execução %s: %w", run.ID, err)
	}
	return nil
}

// TriggerManualSync inicia manualmente uma verificação de divergência
func (s *DatasetDriftCheckService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Verificação de divergência já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando verificação manual de divergência do dataset")
	go func() {
		if _, err := s.CheckDrift(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na verificação manual de divergência do dataset")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetDriftCheckService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"reference_fingerprint":  s.reference.Fingerprint,
	}
	if s.lastRun != nil {
		status["last_run"] = *s.lastRun
	}
	return status
}
