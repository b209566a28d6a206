package loading

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

var priceCleaner = strings.NewReplacer("$", "", ",", "")

// Formatos de data aceitos; qualquer horário é descartado
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// IsTargetProduct compara o produto da linha com o produto alvo sem diferenciar maiúsculas
func IsTargetProduct(product, target string) bool {
	return strings.ToLower(product) == strings.ToLower(target)
}

// Normalize converte uma linha crua em venda. Preço, quantidade e data precisam ser válidos.
func Normalize(record domain.SalesRecord) (domain.NormalizedSale, error) {
	price, err := ParsePrice(record.Price)
	if err != nil {
		return domain.NormalizedSale{}, newLoadError(ErrInvalidPrice, record.File, record.Row, domain.ColumnPrice, record.Price)
	}

	quantity, err := strconv.ParseInt(strings.TrimSpace(record.Quantity), 10, 64)
	if err != nil {
		return domain.NormalizedSale{}, newLoadError(ErrInvalidQuantity, record.File, record.Row, domain.ColumnQuantity, record.Quantity)
	}

	date, err := ParseDate(record.Date)
	if err != nil {
		return domain.NormalizedSale{}, newLoadError(ErrInvalidDate, record.File, record.Row, domain.ColumnDate, record.Date)
	}

	return domain.NormalizedSale{
		Product: strings.ToLower(record.Product),
		Region:  record.Region,
		Date:    date,
		Revenue: price.Mul(decimal.NewFromInt(quantity)),
	}, nil
}

// ParsePrice remove "$" e "," e converte o restante
func ParsePrice(raw string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(priceCleaner.Replace(raw)))
}

// ParseDate retorna a data (UTC, meia-noite) do texto informado
func ParseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}

	return time.Time{}, lastErr
}
