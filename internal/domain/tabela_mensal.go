package domain

import (
	"regexp"
	"time"
)

var mesReferenciaRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// TabelaMensal agrupa as vendas de um mês de referência ("2024-10").
// É criada na primeira importação que toca o mês e nunca é removida
// automaticamente.
type TabelaMensal struct {
	ID            string    `json:"id"`
	MesReferencia string    `json:"mes_referencia"`
	CreatedAt     time.Time `json:"created_at"`
}

// MesReferenciaValido valida o formato YYYY-MM.
func MesReferenciaValido(mes string) bool {
	return mesReferenciaRegex.MatchString(mes)
}
