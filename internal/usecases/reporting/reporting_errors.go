package reporting

import (
	"errors"
	"fmt"
)

var (
	ErrDatabaseOperation = errors.New("erro em operação com o banco de dados")
)

type ReportingError struct {
	Err     error
	Code    string
	Details string
}

func (e *ReportingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ReportingError) Unwrap() error {
	return e.Err
}

func NewReportingError(err error, code string, details string) *ReportingError {
	return &ReportingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
