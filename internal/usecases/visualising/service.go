package visualising

import (
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualiser/internal/domain"
	"github.com/vfg2006/sales-visualiser/internal/usecases/aggregating"
	"github.com/vfg2006/sales-visualiser/internal/usecases/charting"
	"github.com/vfg2006/sales-visualiser/internal/usecases/loading"
)

// Visualiser reage à troca de região no seletor devolvendo o novo gráfico
type Visualiser interface {
	// OnRegionChange recalcula a série diária e o gráfico para a região escolhida
	OnRegionChange(region domain.Region) domain.ChartSpec

	// DailySales retorna apenas a série diária da região
	DailySales(region domain.Region) domain.DailySales

	// InitialChart é o gráfico exibido na abertura da página (região padrão)
	InitialChart() domain.ChartSpec

	// Summary descreve o dataset carregado na inicialização
	Summary() domain.LoadSummary
}

// Service guarda apenas o dataset imutável; séries e gráficos são recalculados a cada chamada
type Service struct {
	dataset      *loading.Dataset
	initialChart domain.ChartSpec
}

// NewService recebe o dataset já carregado e calcula o gráfico inicial com a região padrão
func NewService(dataset *loading.Dataset) *Service {
	s := &Service{
		dataset: dataset,
	}
	s.initialChart = s.OnRegionChange(domain.DefaultRegion)
	return s
}

func (s *Service) OnRegionChange(region domain.Region) domain.ChartSpec {
	daily := s.DailySales(region)
	chart := charting.BuildChart(daily, region)

	logrus.WithFields(logrus.Fields{
		"region": region,
		"points": len(chart.Points),
	}).Debug("Gráfico recalculado")

	return chart
}

func (s *Service) DailySales(region domain.Region) domain.DailySales {
	return aggregating.AggregateSeq(s.dataset.All(), region)
}

func (s *Service) InitialChart() domain.ChartSpec {
	chart := s.initialChart
	chart.Points = slices.Clone(s.initialChart.Points)
	return chart
}

func (s *Service) Summary() domain.LoadSummary {
	return s.dataset.Summary()
}
