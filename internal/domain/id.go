package domain

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	idLength     = 6
	idCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// NovoID gera um identificador curto para as entidades do sistema.
func NovoID() (string, error) {
	return gonanoid.Generate(idCharacters, idLength)
}
