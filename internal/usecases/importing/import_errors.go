package importing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de importações
var (
	// Erros de validação
	ErrArquivoObrigatorio    = errors.New("nenhum arquivo enviado")
	ErrMesReferenciaInvalido = errors.New("mês de referência inválido")
	ErrLeituraPlanilha       = errors.New("erro ao ler a planilha")
	ErrLinhaInvalida         = errors.New("linha da planilha inválida")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// ImportError é um erro com contexto adicional para importações
type ImportError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ImportError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError cria um novo ImportError
func NewImportError(err error, code string, details string) *ImportError {
	return &ImportError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
