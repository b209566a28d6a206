package visualising

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-visualiser/infrastructure/dataset/csvfile"
	"github.com/vfg2006/sales-visualiser/internal/domain"
	"github.com/vfg2006/sales-visualiser/internal/usecases/loading"
)

const header = "product,region,quantity,price,date\n"

func loadDataset(t *testing.T, files map[string]string) *loading.Dataset {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	dataset, err := loading.NewService(csvfile.NewSource(dir, "daily_sales_data_*.csv"), "pink morsel").Load()
	require.NoError(t, err)
	return dataset
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestService_OnRegionChange(t *testing.T) {
	dataset := loadDataset(t, map[string]string{
		"daily_sales_data_0.csv": header +
			"Pink Morsel,east,2,$3.00,2021-02-01\n" +
			"Gumnut Scrolls,east,100,$2.00,2021-02-01\n",
		"daily_sales_data_1.csv": header +
			"Pink Morsel,west,1,$3.00,2021-02-01\n",
	})
	service := NewService(dataset)

	tests := []struct {
		region domain.Region
		title  string
		points []domain.ChartPoint
		top    float64
	}{
		{
			region: domain.RegionAll,
			title:  "Pink Morsel Daily Sales Over Time (All Regions)",
			points: []domain.ChartPoint{{Date: day(2021, time.February, 1), Revenue: 9}},
			top:    9,
		},
		{
			region: domain.RegionEast,
			title:  "Pink Morsel Daily Sales Over Time (East)",
			points: []domain.ChartPoint{{Date: day(2021, time.February, 1), Revenue: 6}},
			top:    6,
		},
		{
			region: domain.RegionSouth,
			title:  "Pink Morsel Daily Sales Over Time (South)",
			points: []domain.ChartPoint{},
			top:    0,
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.region), func(t *testing.T) {
			chart := service.OnRegionChange(tt.region)
			assert.Equal(t, tt.title, chart.Title)
			assert.Equal(t, tt.points, chart.Points)
			assert.Equal(t, tt.top, chart.Marker.Y1)
		})
	}
}

func TestService_InitialChartUsesDefaultRegion(t *testing.T) {
	dataset := loadDataset(t, map[string]string{
		"daily_sales_data_0.csv": header + "Pink Morsel,north,10,$1.00,2021-01-10\n",
		"daily_sales_data_1.csv": header + "Pink Morsel,north,5,$1.00,2021-01-11\n",
	})
	service := NewService(dataset)

	initial := service.InitialChart()
	assert.Equal(t, service.OnRegionChange(domain.RegionAll), initial)
	assert.Equal(t, []domain.ChartPoint{
		{Date: day(2021, time.January, 10), Revenue: 10},
		{Date: day(2021, time.January, 11), Revenue: 5},
	}, initial.Points)

	initial.Points[0].Revenue = -1
	assert.Equal(t, 10.0, service.InitialChart().Points[0].Revenue)
}

func TestService_DailySales(t *testing.T) {
	dataset := loadDataset(t, map[string]string{
		"daily_sales_data_0.csv": header + "Pink Morsel,east,2,\"$1,234.50\",2021-03-01\n",
	})
	service := NewService(dataset)

	daily := service.DailySales(domain.RegionEast)
	require.Len(t, daily, 1)
	assert.Equal(t, "2469", daily[0].Revenue.String())
	assert.Empty(t, service.DailySales(domain.RegionWest))
}

func TestService_ConcurrentCallsAreIndependent(t *testing.T) {
	dataset := loadDataset(t, map[string]string{
		"daily_sales_data_0.csv": header +
			"Pink Morsel,north,1,$1.00,2021-01-10\n" +
			"Pink Morsel,east,2,$1.00,2021-01-10\n" +
			"Pink Morsel,south,3,$1.00,2021-01-11\n" +
			"Pink Morsel,west,4,$1.00,2021-01-12\n",
	})
	service := NewService(dataset)

	expected := make(map[domain.Region]domain.ChartSpec)
	for _, region := range domain.Regions {
		expected[region] = service.OnRegionChange(region)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		for _, region := range domain.Regions {
			wg.Add(1)
			go func(region domain.Region) {
				defer wg.Done()
				assert.Equal(t, expected[region], service.OnRegionChange(region))
			}(region)
		}
	}
	wg.Wait()

	assert.Equal(t, 4, service.Summary().SalesKept)
}
