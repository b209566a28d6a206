package domain

import "time"

// ChartPoint é um ponto da linha de vendas
type ChartPoint struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}

// ReferenceMarker é a linha vertical que marca um evento (aumento de preço)
type ReferenceMarker struct {
	Date         time.Time `json:"date"`
	Y0           float64   `json:"y0"`
	Y1           float64   `json:"y1"`
	Color        string    `json:"color"`
	Dash         string    `json:"dash"`
	Label        string    `json:"label"`
	LabelXAnchor string    `json:"label_x_anchor"`
	LabelYAnchor string    `json:"label_y_anchor"`
}

type ChartStyle struct {
	LineWidth       int    `json:"line_width"`
	Mode            string `json:"mode"`
	MarginLeft      int    `json:"margin_left"`
	MarginRight     int    `json:"margin_right"`
	MarginTop       int    `json:"margin_top"`
	MarginBottom    int    `json:"margin_bottom"`
	PaperBackground string `json:"paper_background"`
	PlotBackground  string `json:"plot_background"`
}

// ChartSpec descreve o gráfico de linha por completo. É um valor: não guarda referências
// para o dataset e pode ser comparado diretamente.
type ChartSpec struct {
	Title      string          `json:"title"`
	XAxisLabel string          `json:"x_axis_label"`
	YAxisLabel string          `json:"y_axis_label"`
	Region     Region          `json:"region"`
	Points     []ChartPoint    `json:"points"`
	Marker     ReferenceMarker `json:"marker"`
	Style      ChartStyle      `json:"style"`
}
