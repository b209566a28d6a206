package handler

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualiser/internal/domain"
	"github.com/vfg2006/sales-visualiser/internal/usecases/visualising"
	"github.com/vfg2006/sales-visualiser/pkg/apiErrors"
)

const (
	pageTitle    = "Soul Foods Sales Visualiser"
	pageHeading  = "Soul Foods Pink Morsel Sales Visualiser"
	pageSubtitle = "Filter by region to compare sales before and after the 15 Jan 2021 price increase."
	chartURL     = "/v1/chart"
)

//go:embed templates/dashboard.html
var templatesFS embed.FS

var dashboardTemplate = template.Must(template.ParseFS(templatesFS, "templates/dashboard.html"))

type dashboardPage struct {
	Title    string
	Heading  string
	Subtitle string
	ChartURL string
	Regions  domain.RegionOptions
	Figure   Figure
}

// Dashboard serve a página com o seletor de regiões e o gráfico inicial (todas as regiões)
func Dashboard(visualiser visualising.Visualiser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := dashboardPage{
			Title:    pageTitle,
			Heading:  pageHeading,
			Subtitle: pageSubtitle,
			ChartURL: chartURL,
			Regions:  domain.NewRegionOptions(),
			Figure:   NewFigure(visualiser.InitialChart()),
		}

		var buf bytes.Buffer
		if err := dashboardTemplate.Execute(&buf, page); err != nil {
			logrus.WithError(err).Error("dashboard: failed to render page")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o painel", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write(buf.Bytes()); err != nil {
			logrus.WithError(err).Warn("dashboard: failed to write response")
		}
	}
}
