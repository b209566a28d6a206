// Package csvfile lê os arquivos CSV de vendas diárias do diretório de dados
package csvfile

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

const utf8BOM = "\ufeff"

var (
	ErrNoInputFiles    = errors.New("no input files found")
	ErrMissingColumn   = errors.New("missing required column")
	ErrDuplicateColumn = errors.New("duplicate required column")
)

// Source descobre e lê os arquivos de um diretório que casam com o padrão configurado
type Source struct {
	dir     string
	pattern string
}

func NewSource(dir, pattern string) *Source {
	return &Source{
		dir:     dir,
		pattern: pattern,
	}
}

// Files retorna os arquivos encontrados, ordenados pelo nome
func (s *Source) Files() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(s.dir, s.pattern))
	if err != nil {
		return nil, errors.Wrapf(err, "padrão de arquivos inválido %q", s.pattern)
	}

	if len(matches) == 0 {
		return nil, errors.Wrapf(ErrNoInputFiles, "dir=%s pattern=%s", s.dir, s.pattern)
	}

	sort.Strings(matches)
	return matches, nil
}

// ReadFile lê todas as linhas de um arquivo mantendo a ordem original
func (s *Source) ReadFile(path string) ([]domain.SalesRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer file.Close()

	records, err := ReadRecords(file, path)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"file": filepath.Base(path),
		"rows": len(records),
	}).Debug("csv: arquivo lido")

	return records, nil
}

// ReadRecords converte o conteúdo CSV em registros crus. O cabeçalho precisa conter
// todas as colunas obrigatórias; colunas extras são ignoradas.
func ReadRecords(r io.Reader, name string) ([]domain.SalesRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.Wrapf(ErrMissingColumn, "%s: cabeçalho ausente", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s: erro ao ler cabeçalho", name)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}

	records := make([]domain.SalesRecord, 0)
	for row := 1; ; row++ {
		line, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s: erro ao ler linha %d", name, row)
		}

		records = append(records, domain.SalesRecord{
			Product:  line[index[domain.ColumnProduct]],
			Region:   line[index[domain.ColumnRegion]],
			Quantity: line[index[domain.ColumnQuantity]],
			Price:    line[index[domain.ColumnPrice]],
			Date:     line[index[domain.ColumnDate]],
			File:     name,
			Row:      row,
		})
	}

	return records, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, column := range header {
		if i == 0 {
			column = strings.TrimPrefix(column, utf8BOM)
		}
		column = strings.TrimSpace(column)

		// Colunas extras repetidas não importam, as obrigatórias precisam ser únicas
		if _, seen := index[column]; seen && slices.Contains(domain.RequiredColumns, column) {
			return nil, errors.Wrapf(ErrDuplicateColumn, "coluna %q", column)
		}
		index[column] = i
	}

	for _, required := range domain.RequiredColumns {
		if _, ok := index[required]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "coluna %q", required)
		}
	}

	return index, nil
}
