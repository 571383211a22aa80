package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// CampoVazio detecta células sem valor. O "nan" literal é um artefato da
// coerção numérica do sistema de origem e deve ser tratado como nulo,
// nunca como um valor.
func CampoVazio(valor string) bool {
	limpo := strings.TrimSpace(valor)
	return limpo == "" || strings.EqualFold(limpo, "nan")
}

// ParseValor interpreta valores monetários nos formatos brasileiro
// ("1.234,56", "R$ 1.234,56") e anglo ("1,234.56"). Célula vazia vale zero.
func ParseValor(valor string) (float64, error) {
	s := strings.TrimSpace(valor)
	if CampoVazio(s) {
		return 0, nil
	}

	s = strings.ReplaceAll(s, "R$", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")

	negativo := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negativo = true
		s = strings.TrimPrefix(strings.TrimSuffix(s, ")"), "(")
	}
	if strings.HasPrefix(s, "-") {
		negativo = true
		s = strings.TrimPrefix(s, "-")
	}

	// A posição do último ponto e da última vírgula decide o formato.
	ultimoPonto := strings.LastIndex(s, ".")
	ultimaVirgula := strings.LastIndex(s, ",")

	switch {
	case ultimaVirgula > ultimoPonto:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case ultimoPonto > ultimaVirgula:
		s = strings.ReplaceAll(s, ",", "")
	}

	parsed, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("valor numérico inválido: %q", valor)
	}

	if negativo {
		parsed = -parsed
	}
	return parsed, nil
}

// Layouts de data aceitos nas planilhas, no que chega com mais frequência.
var layoutsData = []string{
	"02/01/2006",
	"2006-01-02",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"02/01/2006 15:04:05",
	"02/01/06",
}

// ParseData interpreta datas nos layouts usuais das planilhas e também o
// serial numérico do Excel (dias desde 30/12/1899).
func ParseData(valor string) (time.Time, error) {
	s := strings.TrimSpace(valor)
	if CampoVazio(s) {
		return time.Time{}, fmt.Errorf("data vazia")
	}

	for _, layout := range layoutsData {
		if data, err := time.Parse(layout, s); err == nil {
			return data, nil
		}
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil && serial > 0 {
		base := time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)
		return base.AddDate(0, 0, int(serial)), nil
	}

	return time.Time{}, fmt.Errorf("data inválida: %q", valor)
}
