package loading

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"iter"
	"slices"

	"github.com/vfg2006/sales-visualiser/internal/domain"
)

// Dataset é o conjunto normalizado mantido durante toda a vida do processo.
// Não é alterado depois de criado, então pode ser lido por várias goroutines sem lock.
type Dataset struct {
	sales   []domain.NormalizedSale
	summary domain.LoadSummary
}

func newDataset(sales []domain.NormalizedSale, summary domain.LoadSummary) *Dataset {
	summary.Fingerprint = fingerprint(sales)
	return &Dataset{
		sales:   sales,
		summary: summary,
	}
}

// Sales retorna uma cópia das vendas na ordem de carga
func (d *Dataset) Sales() []domain.NormalizedSale {
	return slices.Clone(d.sales)
}

// All percorre as vendas na ordem de carga sem copiar o conjunto
func (d *Dataset) All() iter.Seq[domain.NormalizedSale] {
	return slices.Values(d.sales)
}

func (d *Dataset) Len() int {
	return len(d.sales)
}

func (d *Dataset) Summary() domain.LoadSummary {
	summary := d.summary
	summary.Files = slices.Clone(d.summary.Files)
	return summary
}

func (d *Dataset) Fingerprint() string {
	return d.summary.Fingerprint
}

func fingerprint(sales []domain.NormalizedSale) string {
	hash := sha256.New()
	for _, sale := range sales {
		fmt.Fprintf(hash, "%s|%s|%s|%s\n",
			sale.Product,
			sale.Region,
			sale.Date.Format("2006-01-02"),
			sale.Revenue.String(),
		)
	}
	return hex.EncodeToString(hash.Sum(nil))
}
