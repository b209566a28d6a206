package charting

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-visualiser/internal/domain"
)

const (
	titleFormat = "Pink Morsel Daily Sales Over Time (%s)"
	xAxisLabel  = "Date"
	yAxisLabel  = "Total Sales (USD)"

	markerColor = "red"
	markerDash  = "dash"
)

// PriceIncreaseDate é a data do aumento de preço marcada em todos os gráficos
func PriceIncreaseDate() time.Time {
	return time.Date(2021, time.January, 15, 0, 0, 0, 0, time.UTC)
}

// Estilo padrão aplicado a todos os gráficos
var defaultStyle = domain.ChartStyle{
	LineWidth:       3,
	Mode:            "lines",
	MarginLeft:      40,
	MarginRight:     20,
	MarginTop:       70,
	MarginBottom:    40,
	PaperBackground: "rgba(0,0,0,0)",
	PlotBackground:  "rgba(255,255,255,0.92)",
}

// BuildChart monta o gráfico de linha da série diária. Com a série vazia o marcador
// vai de 0 a 0 em vez de falhar.
func BuildChart(daily domain.DailySales, region domain.Region) domain.ChartSpec {
	points := make([]domain.ChartPoint, 0, len(daily))
	for _, entry := range daily {
		points = append(points, domain.ChartPoint{
			Date:    entry.Date,
			Revenue: entry.Revenue.InexactFloat64(),
		})
	}

	priceIncrease := PriceIncreaseDate()

	top := 0.0
	if peak, ok := daily.MaxRevenue(); ok {
		top = peak.InexactFloat64()
	}

	return domain.ChartSpec{
		Title:      fmt.Sprintf(titleFormat, region.Label()),
		XAxisLabel: xAxisLabel,
		YAxisLabel: yAxisLabel,
		Region:     region,
		Points:     points,
		Marker: domain.ReferenceMarker{
			Date:         priceIncrease,
			Y0:           0,
			Y1:           top,
			Color:        markerColor,
			Dash:         markerDash,
			Label:        fmt.Sprintf("Price increase: %s", priceIncrease.Format(time.DateOnly)),
			LabelXAnchor: "left",
			LabelYAnchor: "bottom",
		},
		Style: defaultStyle,
	}
}
