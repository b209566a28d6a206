package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySalesEntry é a receita total de um dia
type DailySalesEntry struct {
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}

// DailySales é a série diária, estritamente crescente por data e sem datas sintetizadas
type DailySales []DailySalesEntry

// Total soma a receita de todas as entradas
func (d DailySales) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range d {
		total = total.Add(entry.Revenue)
	}
	return total
}

// MaxRevenue retorna a maior receita diária e false quando a série está vazia
func (d DailySales) MaxRevenue() (decimal.Decimal, bool) {
	if len(d) == 0 {
		return decimal.Zero, false
	}

	peak := d[0].Revenue
	for _, entry := range d[1:] {
		if entry.Revenue.GreaterThan(peak) {
			peak = entry.Revenue
		}
	}
	return peak, true
}
