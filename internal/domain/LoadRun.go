package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Origem de uma carga do dataset
const (
	LoadTriggerStartup    = "startup"
	LoadTriggerDriftCheck = "drift-check"
)

// LoadSummary resume o que foi lido dos arquivos em uma carga
type LoadSummary struct {
	Files        []string        `json:"files"`
	RowsRead     int             `json:"rows_read"`
	SalesKept    int             `json:"sales_kept"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Fingerprint  string          `json:"fingerprint"`
	LoadedAt     time.Time       `json:"loaded_at"`
}

// LoadRun registra uma execução do carregador. Guarda apenas metadados da carga, nunca agregados.
type LoadRun struct {
	ID           string          `json:"id"`
	Trigger      string          `json:"trigger"`
	Files        []string        `json:"files"`
	RowsRead     int             `json:"rows_read"`
	SalesKept    int             `json:"sales_kept"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	Fingerprint  string          `json:"fingerprint"`
	Drifted      bool            `json:"drifted"`
	Error        *string         `json:"error,omitempty"`
	StartedAt    time.Time       `json:"started_at"`
	FinishedAt   time.Time       `json:"finished_at"`
}

// NewLoadRun cria o registro a partir do resumo de uma carga bem sucedida
func NewLoadRun(id, trigger string, summary LoadSummary, startedAt time.Time) *LoadRun {
	return &LoadRun{
		ID:           id,
		Trigger:      trigger,
		Files:        summary.Files,
		RowsRead:     summary.RowsRead,
		SalesKept:    summary.SalesKept,
		TotalRevenue: summary.TotalRevenue,
		Fingerprint:  summary.Fingerprint,
		StartedAt:    startedAt,
		FinishedAt:   summary.LoadedAt,
	}
}
