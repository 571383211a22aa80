package postgres

import (
	"database/sql"
)

// Queryer é o conjunto de operações comum a *sql.DB e *sql.Tx. Os métodos de
// escrita em lote dos repositórios recebem um Queryer para que os casos de uso
// possam executá-los dentro da transação da importação.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

var (
	_ Queryer = (*sql.DB)(nil)
	_ Queryer = (*sql.Tx)(nil)
)
