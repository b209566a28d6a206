package aggregating

import (
	"iter"
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

// Aggregate filtra as vendas pela região (exceto "all") e soma a receita por dia.
// O resultado é ordenado por data e só contém dias com vendas.
func Aggregate(sales []domain.NormalizedSale, region domain.Region) domain.DailySales {
	return AggregateSeq(slices.Values(sales), region)
}

// AggregateSeq é o Aggregate sobre um iterador, para ler o dataset sem cloná-lo
func AggregateSeq(sales iter.Seq[domain.NormalizedSale], region domain.Region) domain.DailySales {
	totals := make(map[time.Time]decimal.Decimal)
	for sale := range sales {
		if !region.IsAll() && !region.Matches(sale.Region) {
			continue
		}

		day := truncateToDay(sale.Date)
		if current, ok := totals[day]; ok {
			totals[day] = current.Add(sale.Revenue)
		} else {
			totals[day] = sale.Revenue
		}
	}

	daily := make(domain.DailySales, 0, len(totals))
	for day, revenue := range totals {
		daily = append(daily, domain.DailySalesEntry{
			Date:    day,
			Revenue: revenue,
		})
	}

	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date.Before(daily[j].Date)
	})

	return daily
}

// Datas são chaves de mapa, então precisam estar na mesma localização e sem horário
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
