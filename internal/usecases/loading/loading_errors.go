package loading

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-visualiser/infrastructure/dataset/csvfile"
)

// Erros fatais de carga. Nenhum deles é recuperável: o dataset inteiro é rejeitado.
var (
	ErrNoInputFiles    = csvfile.ErrNoInputFiles
	ErrMissingColumn   = csvfile.ErrMissingColumn
	ErrDuplicateColumn = csvfile.ErrDuplicateColumn
	ErrInvalidPrice    = errors.New("invalid price")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidQuantity = errors.New("invalid quantity")
)

// LoadError aponta a linha e a coluna que impediram a carga
type LoadError struct {
	Err    error  // Erro base
	File   string // Arquivo de origem
	Row    int    // Linha de dados (1 = primeira linha após o cabeçalho)
	Column string // Coluna com o valor inválido
	Value  string // Valor encontrado
}

// Error implementa a interface error
func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %s linha %d coluna %s: valor %q", e.Err.Error(), e.File, e.Row, e.Column, e.Value)
}

// Unwrap retorna o erro subjacente
func (e *LoadError) Unwrap() error {
	return e.Err
}

func newLoadError(err error, file string, row int, column, value string) *LoadError {
	return &LoadError{
		Err:    err,
		File:   file,
		Row:    row,
		Column: column,
		Value:  value,
	}
}
