package domain

import "time"

// Empreendimento segue a mesma política de criação preguiçosa do Cliente.
type Empreendimento struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	CreatedAt time.Time `json:"created_at"`
}
