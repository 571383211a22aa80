package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de análises EPR
var (
	// Erros de validação
	ErrArquivoObrigatorio = errors.New("nenhum arquivo enviado")
	ErrLeituraPlanilha    = errors.New("erro ao ler a planilha")

	// Erros do fluxo analisar/confirmar
	ErrAnaliseNaoEncontrada = errors.New("análise não encontrada")
	ErrEstadoInvalido       = errors.New("transição de estado inválida")
	ErrSemDados             = errors.New("nenhum dado encontrado para exportação")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating ID")
)

// AnalysisError é um erro com contexto adicional para análises
type AnalysisError struct {
	Err       error  // Erro base
	Code      string // Código de erro para API
	AnaliseID string // ID da análise envolvida (quando aplicável)
	Details   string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AnalysisError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// NewAnalysisError cria um novo AnalysisError
func NewAnalysisError(err error, code string, details string) *AnalysisError {
	return &AnalysisError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// NewAnalysisErrorWithID cria um novo AnalysisError com o ID da análise
func NewAnalysisErrorWithID(err error, code string, analiseID string, details string) *AnalysisError {
	return &AnalysisError{
		Err:       err,
		Code:      code,
		AnaliseID: analiseID,
		Details:   details,
	}
}
