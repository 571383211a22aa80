package managing

import (
	"errors"
	"fmt"
)

var (
	ErrDadosObrigatorios    = errors.New("dados obrigatórios ausentes")
	ErrClienteNaoEncontrado = errors.New("cliente não encontrado")
	ErrVendaNaoEncontrada   = errors.New("venda não encontrada")
	ErrTabelaNaoEncontrada  = errors.New("tabela mensal não encontrada")
	ErrDatabaseOperation    = errors.New("erro em operação com o banco de dados")
	ErrGenerateID           = errors.New("erro ao gerar identificador único")
)

type ManagementError struct {
	Err     error
	Code    string
	Details string
}

func (e *ManagementError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ManagementError) Unwrap() error {
	return e.Err
}

func NewManagementError(err error, code string, details string) *ManagementError {
	return &ManagementError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
