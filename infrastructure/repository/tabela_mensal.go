package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/recebimentos-api/infrastructure/database/postgres"
	"github.com/vfg2006/recebimentos-api/internal/domain"
)

const tabelasMensaisTable = "tabelas_mensais"

type TabelaMensalRepository interface {
	List() ([]*domain.TabelaMensal, error)
	GetByID(tabelaID string) (*domain.TabelaMensal, error)
	GetByMes(q postgres.Queryer, mesReferencia string) (*domain.TabelaMensal, error)
	GetOrCreate(q postgres.Queryer, mesReferencia string) (*domain.TabelaMensal, error)
	Delete(tabelaID string) (bool, error)
}

type tabelaMensalRepository struct {
	conn *postgres.Connection
}

func NewTabelaMensalRepository(conn *postgres.Connection) TabelaMensalRepository {
	return &tabelaMensalRepository{
		conn: conn,
	}
}

func (r *tabelaMensalRepository) List() ([]*domain.TabelaMensal, error) {
	sqlQuery, args, err := squirrel.
		Select("id, mes_referencia, created_at").
		From(tabelasMensaisTable).
		OrderBy("mes_referencia DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao consultar tabelas mensais: %w", err)
	}
	defer rows.Close()

	tabelas := make([]*domain.TabelaMensal, 0)
	for rows.Next() {
		tabela := &domain.TabelaMensal{}
		if err := rows.Scan(&tabela.ID, &tabela.MesReferencia, &tabela.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao deserializar a tabela mensal: %w", err)
		}
		tabelas = append(tabelas, tabela)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return tabelas, nil
}

func (r *tabelaMensalRepository) GetByID(tabelaID string) (*domain.TabelaMensal, error) {
	return r.getBy(r.conn, squirrel.Eq{"id": tabelaID})
}

func (r *tabelaMensalRepository) GetByMes(q postgres.Queryer, mesReferencia string) (*domain.TabelaMensal, error) {
	return r.getBy(q, squirrel.Eq{"mes_referencia": mesReferencia})
}

func (r *tabelaMensalRepository) getBy(q postgres.Queryer, where squirrel.Eq) (*domain.TabelaMensal, error) {
	sqlQuery, args, err := squirrel.
		Select("id, mes_referencia, created_at").
		From(tabelasMensaisTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	tabela := &domain.TabelaMensal{}
	err = q.QueryRow(sqlQuery, args...).Scan(&tabela.ID, &tabela.MesReferencia, &tabela.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao consultar tabela mensal: %w", err)
	}

	return tabela, nil
}

// GetOrCreate devolve a tabela do mês, criando-a na primeira importação que
// tocar o mês. O upsert com RETURNING resolve a corrida entre importações
// concorrentes do mesmo mês.
func (r *tabelaMensalRepository) GetOrCreate(q postgres.Queryer, mesReferencia string) (*domain.TabelaMensal, error) {
	novoID, err := domain.NovoID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar identificador: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert(tabelasMensaisTable).
		Columns("id", "mes_referencia").
		Values(novoID, mesReferencia).
		Suffix(`
			ON CONFLICT (mes_referencia) DO UPDATE SET
				mes_referencia = EXCLUDED.mes_referencia
			RETURNING id, mes_referencia, created_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	tabela := &domain.TabelaMensal{}
	err = q.QueryRow(sqlQuery, args...).Scan(&tabela.ID, &tabela.MesReferencia, &tabela.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar tabela mensal %s: %w", mesReferencia, err)
	}

	return tabela, nil
}

func (r *tabelaMensalRepository) Delete(tabelaID string) (bool, error) {
	result, err := r.conn.Exec("DELETE FROM tabelas_mensais WHERE id = $1", tabelaID)
	if err != nil {
		return false, fmt.Errorf("erro ao remover tabela mensal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
