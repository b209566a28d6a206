package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-visualiser/internal/domain"
	"github.com/vfg2006/sales-visualiser/internal/usecases/visualising"
	"github.com/vfg2006/sales-visualiser/pkg/log"
)

// GetChart devolve a figura Plotly da região pedida
func GetChart(visualiser visualising.Visualiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region := regionFromQuery(r)
		chart := visualiser.OnRegionChange(region)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"region": region,
			"points": len(chart.Points),
		}).Debug("charts: figure built")

		writeJSON(w, http.StatusOK, NewFigure(chart))
	}
}

type dailySalesEntry struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

type dailySalesResponse struct {
	Region domain.Region     `json:"region"`
	Total  decimal.Decimal   `json:"total"`
	Days   []dailySalesEntry `json:"days"`
}

// GetDailySales devolve a série diária agregada, com valores exatos
func GetDailySales(visualiser visualising.Visualiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		region := regionFromQuery(r)
		daily := visualiser.DailySales(region)

		days := make([]dailySalesEntry, 0, len(daily))
		for _, entry := range daily {
			days = append(days, dailySalesEntry{
				Date:    entry.Date.Format(time.DateOnly),
				Revenue: entry.Revenue,
			})
		}

		writeJSON(w, http.StatusOK, dailySalesResponse{
			Region: region,
			Total:  daily.Total(),
			Days:   days,
		})
	}
}

// GetRegions devolve as opções do seletor e a seleção padrão
func GetRegions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, domain.NewRegionOptions())
	}
}
