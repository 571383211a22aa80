package domain

import "time"

// Cliente é criado de forma preguiçosa durante a importação da planilha de
// acompanhamento quando nenhum cliente existente tem o mesmo nome. O nome
// não é garantidamente único como texto bruto: o matching entre planilhas
// usa a forma normalizada (pkg/names).
type Cliente struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CPF       *string   `json:"cpf,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
