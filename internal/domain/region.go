package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Region é o valor escolhido no seletor de regiões
type Region string

const (
	RegionNorth Region = "north"
	RegionEast  Region = "east"
	RegionSouth Region = "south"
	RegionWest  Region = "west"
	RegionAll   Region = "all"
)

// Regions mantém a ordem exibida no seletor
var Regions = []Region{RegionNorth, RegionEast, RegionSouth, RegionWest, RegionAll}

// DefaultRegion é a seleção usada na inicialização
const DefaultRegion = RegionAll

// IsAll indica se a seleção não restringe região. Só o literal "all" tem esse efeito.
func (r Region) IsAll() bool {
	return r == RegionAll
}

// Matches compara a região de uma venda com a seleção sem diferenciar maiúsculas
func (r Region) Matches(region string) bool {
	return strings.EqualFold(region, string(r))
}

// Label retorna o texto usado no título do gráfico
func (r Region) Label() string {
	if r.IsAll() {
		return "All Regions"
	}

	first, size := utf8.DecodeRuneInString(string(r))
	if first == utf8.RuneError {
		return string(r)
	}

	return string(unicode.ToUpper(first)) + strings.ToLower(string(r)[size:])
}

type RegionOption struct {
	Label string `json:"label"`
	Value Region `json:"value"`
}

type RegionOptions struct {
	Options []RegionOption `json:"options"`
	Default Region         `json:"default"`
}

// NewRegionOptions monta as opções do seletor
func NewRegionOptions() RegionOptions {
	options := make([]RegionOption, 0, len(Regions))
	for _, region := range Regions {
		options = append(options, RegionOption{Label: string(region), Value: region})
	}

	return RegionOptions{
		Options: options,
		Default: DefaultRegion,
	}
}
