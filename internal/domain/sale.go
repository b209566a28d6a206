package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Colunas obrigatórias dos arquivos de vendas diárias
const (
	ColumnProduct  = "product"
	ColumnRegion   = "region"
	ColumnQuantity = "quantity"
	ColumnPrice    = "price"
	ColumnDate     = "date"
)

// RequiredColumns lista as colunas que todo arquivo precisa ter (a ordem não importa)
var RequiredColumns = []string{ColumnProduct, ColumnRegion, ColumnQuantity, ColumnPrice, ColumnDate}

// SalesRecord representa uma linha crua lida de um arquivo CSV, sem nenhuma conversão
type SalesRecord struct {
	Product  string
	Region   string
	Quantity string
	Price    string
	Date     string

	// Origem da linha, usada apenas para mensagens de erro
	File string
	Row  int
}

// NormalizedSale é uma venda do produto alvo já convertida. Imutável depois de criada.
type NormalizedSale struct {
	Product string          `json:"product"`
	Region  string          `json:"region"`
	Date    time.Time       `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
}
