package loading

import (
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

// RecordSource entrega as linhas cruas dos arquivos de vendas
type RecordSource interface {
	Files() ([]string, error)
	ReadFile(path string) ([]domain.SalesRecord, error)
}

// Loader carrega e normaliza o dataset de vendas do produto alvo
type Loader interface {
	Load() (*Dataset, error)
}

type Service struct {
	source        RecordSource
	targetProduct string
	now           func() time.Time
}

// NewService cria o carregador para o produto informado
func NewService(source RecordSource, targetProduct string) *Service {
	return &Service{
		source:        source,
		targetProduct: targetProduct,
		now:           time.Now,
	}
}

// Load lê todos os arquivos, concatena as linhas (ordem dos arquivos e depois das linhas),
// mantém apenas o produto alvo e normaliza cada venda. Qualquer linha inválida do produto
// alvo invalida a carga inteira.
func (s *Service) Load() (*Dataset, error) {
	files, err := s.source.Files()
	if err != nil {
		return nil, err
	}

	records := make([]domain.SalesRecord, 0)
	for _, file := range files {
		fileRecords, err := s.source.ReadFile(file)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler %s", filepath.Base(file))
		}
		records = append(records, fileRecords...)
	}

	sales := make([]domain.NormalizedSale, 0)
	total := decimal.Zero
	for _, record := range records {
		if !IsTargetProduct(record.Product, s.targetProduct) {
			continue
		}

		sale, err := Normalize(record)
		if err != nil {
			return nil, err
		}

		total = total.Add(sale.Revenue)
		sales = append(sales, sale)
	}

	dataset := newDataset(sales, domain.LoadSummary{
		Files:        baseNames(files),
		RowsRead:     len(records),
		SalesKept:    len(sales),
		TotalRevenue: total,
		LoadedAt:     s.now(),
	})

	logrus.WithFields(logrus.Fields{
		"files":       len(files),
		"rows_read":   len(records),
		"sales_kept":  len(sales),
		"product":     s.targetProduct,
		"fingerprint": dataset.Fingerprint(),
	}).Info("Dataset de vendas carregado")

	return dataset, nil
}

func baseNames(files []string) []string {
	names := make([]string, 0, len(files))
	for _, file := range files {
		names = append(names, filepath.Base(file))
	}
	return names
}
