package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/recebimentos-api/infrastructure/database/postgres"
	"github.com/vfg2006/recebimentos-api/internal/domain"
)

const empreendimentosTable = "empreendimentos"

type EmpreendimentoRepository interface {
	List() ([]*domain.Empreendimento, error)
	MapByNomes(q postgres.Queryer, nomes []string) (map[string]*domain.Empreendimento, error)
	BulkInsert(q postgres.Queryer, empreendimentos []*domain.Empreendimento) error
}

type empreendimentoRepository struct {
	conn *postgres.Connection
}

func NewEmpreendimentoRepository(conn *postgres.Connection) EmpreendimentoRepository {
	return &empreendimentoRepository{
		conn: conn,
	}
}

func (r *empreendimentoRepository) List() ([]*domain.Empreendimento, error) {
	return r.list(r.conn, nil)
}

// MapByNomes segue a mesma política do ClienteRepository: nome exato,
// sem normalização.
func (r *empreendimentoRepository) MapByNomes(q postgres.Queryer, nomes []string) (map[string]*domain.Empreendimento, error) {
	porNome := make(map[string]*domain.Empreendimento, len(nomes))
	if len(nomes) == 0 {
		return porNome, nil
	}

	empreendimentos, err := r.list(q, squirrel.Eq{"nome": nomes})
	if err != nil {
		return nil, err
	}

	for _, empreendimento := range empreendimentos {
		porNome[empreendimento.Nome] = empreendimento
	}

	return porNome, nil
}

func (r *empreendimentoRepository) list(q postgres.Queryer, where squirrel.Eq) ([]*domain.Empreendimento, error) {
	queryBuilder := squirrel.
		Select("id, nome, created_at").
		From(empreendimentosTable).
		OrderBy("nome ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(where) > 0 {
		queryBuilder = queryBuilder.Where(where)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao consultar empreendimentos: %w", err)
	}
	defer rows.Close()

	empreendimentos := make([]*domain.Empreendimento, 0)
	for rows.Next() {
		empreendimento := &domain.Empreendimento{}
		if err := rows.Scan(&empreendimento.ID, &empreendimento.Nome, &empreendimento.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao deserializar o empreendimento: %w", err)
		}
		empreendimentos = append(empreendimentos, empreendimento)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return empreendimentos, nil
}

func (r *empreendimentoRepository) BulkInsert(q postgres.Queryer, empreendimentos []*domain.Empreendimento) error {
	if len(empreendimentos) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert(empreendimentosTable).
		Columns("id", "nome").
		PlaceholderFormat(squirrel.Dollar)

	for _, empreendimento := range empreendimentos {
		query = query.Values(empreendimento.ID, empreendimento.Nome)
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
