package handler

import (
	"time"

	"github.com/vfg2006/sales-visualiser/internal/domain"
)

// Figure é a representação Plotly (data + layout) de um domain.ChartSpec.
// O navegador só desenha, todo o cálculo fica no servidor.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type string    `json:"type"`
	Mode string    `json:"mode"`
	Name string    `json:"name"`
	X    []string  `json:"x"`
	Y    []float64 `json:"y"`
	Line TraceLine `json:"line"`
}

type TraceLine struct {
	Width int `json:"width"`
}

type Layout struct {
	Title         Text         `json:"title"`
	XAxis         Axis         `json:"xaxis"`
	YAxis         Axis         `json:"yaxis"`
	Margin        Margin       `json:"margin"`
	PaperBGColor  string       `json:"paper_bgcolor"`
	PlotBGColor   string       `json:"plot_bgcolor"`
	Shapes        []Shape      `json:"shapes"`
	Annotations   []Annotation `json:"annotations"`
	ShowLegend    bool         `json:"showlegend"`
	UIRevisionKey string       `json:"uirevision"`
}

type Text struct {
	Text string `json:"text"`
}

type Axis struct {
	Title Text   `json:"title"`
	Type  string `json:"type,omitempty"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

type Shape struct {
	Type string    `json:"type"`
	XRef string    `json:"xref"`
	YRef string    `json:"yref"`
	X0   string    `json:"x0"`
	X1   string    `json:"x1"`
	Y0   float64   `json:"y0"`
	Y1   float64   `json:"y1"`
	Line ShapeLine `json:"line"`
}

type ShapeLine struct {
	Color string `json:"color"`
	Dash  string `json:"dash"`
}

type Annotation struct {
	X         string  `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	XAnchor   string  `json:"xanchor"`
	YAnchor   string  `json:"yanchor"`
}

// NewFigure converte o gráfico do domínio para o formato aceito por Plotly.newPlot
func NewFigure(chart domain.ChartSpec) Figure {
	x := make([]string, 0, len(chart.Points))
	y := make([]float64, 0, len(chart.Points))
	for _, point := range chart.Points {
		x = append(x, point.Date.Format(time.DateOnly))
		y = append(y, point.Revenue)
	}

	markerDate := chart.Marker.Date.Format(time.DateOnly)

	return Figure{
		Data: []Trace{
			{
				Type: "scatter",
				Mode: chart.Style.Mode,
				Name: chart.YAxisLabel,
				X:    x,
				Y:    y,
				Line: TraceLine{Width: chart.Style.LineWidth},
			},
		},
		Layout: Layout{
			Title: Text{Text: chart.Title},
			XAxis: Axis{Title: Text{Text: chart.XAxisLabel}, Type: "date"},
			YAxis: Axis{Title: Text{Text: chart.YAxisLabel}},
			Margin: Margin{
				L: chart.Style.MarginLeft,
				R: chart.Style.MarginRight,
				T: chart.Style.MarginTop,
				B: chart.Style.MarginBottom,
			},
			PaperBGColor: chart.Style.PaperBackground,
			PlotBGColor:  chart.Style.PlotBackground,
			Shapes: []Shape{
				{
					Type: "line",
					XRef: "x",
					YRef: "y",
					X0:   markerDate,
					X1:   markerDate,
					Y0:   chart.Marker.Y0,
					Y1:   chart.Marker.Y1,
					Line: ShapeLine{Color: chart.Marker.Color, Dash: chart.Marker.Dash},
				},
			},
			Annotations: []Annotation{
				{
					X:         markerDate,
					Y:         chart.Marker.Y1,
					XRef:      "x",
					YRef:      "y",
					Text:      chart.Marker.Label,
					ShowArrow: false,
					XAnchor:   chart.Marker.LabelXAnchor,
					YAnchor:   chart.Marker.LabelYAnchor,
				},
			},
			UIRevisionKey: string(chart.Region),
		},
	}
}
