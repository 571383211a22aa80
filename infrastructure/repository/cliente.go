package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/recebimentos-api/infrastructure/database/postgres"
	"github.com/vfg2006/recebimentos-api/internal/domain"
)

const clientesTable = "clientes"

type ClienteRepository interface {
	GetByID(clienteID string) (*domain.Cliente, error)
	List() ([]*domain.Cliente, error)
	MapByNomes(q postgres.Queryer, nomes []string) (map[string]*domain.Cliente, error)
	BulkInsert(q postgres.Queryer, clientes []*domain.Cliente) error
}

type clienteRepository struct {
	conn *postgres.Connection
}

func NewClienteRepository(conn *postgres.Connection) ClienteRepository {
	return &clienteRepository{
		conn: conn,
	}
}

func (r *clienteRepository) GetByID(clienteID string) (*domain.Cliente, error) {
	cliente := &domain.Cliente{}

	err := r.conn.QueryRow(
		"SELECT id, nome, cpf, created_at FROM clientes WHERE id = $1",
		clienteID,
	).Scan(&cliente.ID, &cliente.Nome, &cliente.CPF, &cliente.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao consultar cliente: %w", err)
	}

	return cliente, nil
}

func (r *clienteRepository) List() ([]*domain.Cliente, error) {
	return r.list(r.conn, nil)
}

// MapByNomes retorna os clientes existentes indexados pelo nome EXATO
// (sem normalização: a planilha de acompanhamento é a fonte de verdade dos
// nomes). Usado na criação preguiçosa em lote.
func (r *clienteRepository) MapByNomes(q postgres.Queryer, nomes []string) (map[string]*domain.Cliente, error) {
	porNome := make(map[string]*domain.Cliente, len(nomes))
	if len(nomes) == 0 {
		return porNome, nil
	}

	clientes, err := r.list(q, squirrel.Eq{"nome": nomes})
	if err != nil {
		return nil, err
	}

	for _, cliente := range clientes {
		porNome[cliente.Nome] = cliente
	}

	return porNome, nil
}

func (r *clienteRepository) list(q postgres.Queryer, where squirrel.Eq) ([]*domain.Cliente, error) {
	queryBuilder := squirrel.
		Select("id, nome, cpf, created_at").
		From(clientesTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(where) > 0 {
		queryBuilder = queryBuilder.Where(where)
	}

	clientesSQL, clientesArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.Query(clientesSQL, clientesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao consultar clientes: %w", err)
	}
	defer rows.Close()

	clientes := make([]*domain.Cliente, 0)
	for rows.Next() {
		cliente := &domain.Cliente{}
		if err := rows.Scan(&cliente.ID, &cliente.Nome, &cliente.CPF, &cliente.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o cliente: %w", err)
		}
		clientes = append(clientes, cliente)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return clientes, nil
}

func (r *clienteRepository) BulkInsert(q postgres.Queryer, clientes []*domain.Cliente) error {
	if len(clientes) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(clientesTable).
		Columns("id", "nome", "cpf").
		PlaceholderFormat(squirrel.Dollar)

	for _, cliente := range clientes {
		query = query.Values(cliente.ID, cliente.Nome, cliente.CPF)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err = q.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
