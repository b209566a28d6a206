package aggregating

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func sale(region string, date time.Time, revenue string) domain.NormalizedSale {
	return domain.NormalizedSale{
		Product: "pink morsel",
		Region:  region,
		Date:    date,
		Revenue: decimal.RequireFromString(revenue),
	}
}

func assertSeries(t *testing.T, want []domain.DailySalesEntry, got domain.DailySales) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Date, got[i].Date, "data na posição %d", i)
		assert.True(t, want[i].Revenue.Equal(got[i].Revenue), "receita na posição %d: esperado %s, obtido %s", i, want[i].Revenue, got[i].Revenue)
	}
}

func TestAggregate(t *testing.T) {
	sameDay := []domain.NormalizedSale{
		sale("east", day(2021, time.February, 1), "6"),
		sale("west", day(2021, time.February, 1), "3"),
	}

	tests := []struct {
		name   string
		sales  []domain.NormalizedSale
		region domain.Region
		want   []domain.DailySalesEntry
	}{
		{
			name: "Todas as regiões, um registro por dia",
			sales: []domain.NormalizedSale{
				sale("north", day(2021, time.January, 10), "10"),
				sale("north", day(2021, time.January, 11), "5"),
			},
			region: domain.RegionAll,
			want: []domain.DailySalesEntry{
				{Date: day(2021, time.January, 10), Revenue: decimal.NewFromInt(10)},
				{Date: day(2021, time.January, 11), Revenue: decimal.NewFromInt(5)},
			},
		},
		{
			name:   "Mesmo dia em regiões diferentes é somado",
			sales:  sameDay,
			region: domain.RegionAll,
			want: []domain.DailySalesEntry{
				{Date: day(2021, time.February, 1), Revenue: decimal.NewFromInt(9)},
			},
		},
		{
			name:   "Filtro por região",
			sales:  sameDay,
			region: domain.RegionEast,
			want: []domain.DailySalesEntry{
				{Date: day(2021, time.February, 1), Revenue: decimal.NewFromInt(6)},
			},
		},
		{
			name:   "Região sem vendas retorna série vazia",
			sales:  sameDay,
			region: domain.RegionSouth,
			want:   []domain.DailySalesEntry{},
		},
		{
			name:   "Entrada vazia",
			sales:  nil,
			region: domain.RegionAll,
			want:   []domain.DailySalesEntry{},
		},
		{
			name: "Região do registro é comparada sem diferenciar maiúsculas",
			sales: []domain.NormalizedSale{
				sale("East", day(2021, time.February, 1), "6"),
				sale("EAST", day(2021, time.February, 2), "1"),
			},
			region: domain.RegionEast,
			want: []domain.DailySalesEntry{
				{Date: day(2021, time.February, 1), Revenue: decimal.NewFromInt(6)},
				{Date: day(2021, time.February, 2), Revenue: decimal.NewFromInt(1)},
			},
		},
		{
			name:   "Valor fora da enumeração filtra em vez de liberar tudo",
			sales:  sameDay,
			region: domain.Region("everywhere"),
			want:   []domain.DailySalesEntry{},
		},
		{
			name:   "Só o literal all libera todas as regiões",
			sales:  sameDay,
			region: domain.Region("ALL"),
			want:   []domain.DailySalesEntry{},
		},
		{
			name: "Dias sem vendas não são criados",
			sales: []domain.NormalizedSale{
				sale("north", day(2021, time.January, 20), "1"),
				sale("north", day(2021, time.January, 1), "2"),
			},
			region: domain.RegionAll,
			want: []domain.DailySalesEntry{
				{Date: day(2021, time.January, 1), Revenue: decimal.NewFromInt(2)},
				{Date: day(2021, time.January, 20), Revenue: decimal.NewFromInt(1)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.sales, tt.region)
			assert.NotNil(t, got)
			assertSeries(t, tt.want, got)
		})
	}
}

func randomSales(r *rand.Rand, n int) []domain.NormalizedSale {
	regions := []string{"north", "east", "south", "west"}
	sales := make([]domain.NormalizedSale, 0, n)
	for i := 0; i < n; i++ {
		sales = append(sales, domain.NormalizedSale{
			Product: "pink morsel",
			Region:  regions[r.Intn(len(regions))],
			Date:    day(2020, time.December, 1).AddDate(0, 0, r.Intn(90)),
			Revenue: decimal.New(int64(r.Intn(100000)), -2).Mul(decimal.NewFromInt(int64(r.Intn(20)))),
		})
	}
	return sales
}

func TestAggregate_IsSortedWithoutDuplicates(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	sales := randomSales(r, 500)

	for _, region := range domain.Regions {
		daily := Aggregate(sales, region)
		for i := 1; i < len(daily); i++ {
			assert.True(t, daily[i-1].Date.Before(daily[i].Date), "região %s: datas fora de ordem na posição %d", region, i)
		}
	}
}

func TestAggregate_ConservesRevenue(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	sales := randomSales(r, 300)

	expected := decimal.Zero
	for _, s := range sales {
		expected = expected.Add(s.Revenue)
	}

	assert.True(t, expected.Equal(Aggregate(sales, domain.RegionAll).Total()))
}

func TestAggregate_RegionsPartitionAll(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	sales := randomSales(r, 400)

	combined := make(map[time.Time]decimal.Decimal)
	for _, region := range []domain.Region{domain.RegionNorth, domain.RegionEast, domain.RegionSouth, domain.RegionWest} {
		for _, entry := range Aggregate(sales, region) {
			combined[entry.Date] = combined[entry.Date].Add(entry.Revenue)
		}
	}

	all := Aggregate(sales, domain.RegionAll)
	require.Len(t, combined, len(all))
	for _, entry := range all {
		assert.True(t, entry.Revenue.Equal(combined[entry.Date]), "data %s", entry.Date.Format(time.DateOnly))
	}
}

func TestAggregate_DoesNotModifyInput(t *testing.T) {
	sales := []domain.NormalizedSale{
		sale("north", day(2021, time.January, 10), "10"),
		sale("north", day(2021, time.January, 10), "5"),
	}

	Aggregate(sales, domain.RegionAll)

	assert.True(t, decimal.NewFromInt(10).Equal(sales[0].Revenue))
	assert.True(t, decimal.NewFromInt(5).Equal(sales[1].Revenue))
}

func TestAggregateSeq_MatchesAggregate(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	sales := randomSales(r, 300)

	for _, region := range append(slices.Clone(domain.Regions), "central") {
		assert.Equal(t, Aggregate(sales, region), AggregateSeq(slices.Values(sales), region), "região %s", region)
	}
}
