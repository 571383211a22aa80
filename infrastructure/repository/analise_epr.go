package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/recebimentos-api/infrastructure/database/postgres"
	"github.com/vfg2006/recebimentos-api/internal/domain"
)

const analisesEPRTable = "analises_epr"

type AnaliseEPRRepository interface {
	Create(q postgres.Queryer, analise *domain.AnaliseEPR) error
	GetByID(analiseID string) (*domain.AnaliseEPR, error)
	List(status *domain.StatusAnalise) ([]*domain.AnaliseEPR, error)
	// MarcarConfirmada e MarcarCancelada só transicionam registros ainda
	// pendentes; retornam false quando outra chamada venceu a corrida.
	MarcarConfirmada(q postgres.Queryer, analiseID string, confirmadoEm time.Time) (bool, error)
	MarcarCancelada(q postgres.Queryer, analiseID string) (bool, error)
}

type analiseEPRRepository struct {
	conn *postgres.Connection
}

func NewAnaliseEPRRepository(conn *postgres.Connection) AnaliseEPRRepository {
	return &analiseEPRRepository{
		conn: conn,
	}
}

func (r *analiseEPRRepository) Create(q postgres.Queryer, analise *domain.AnaliseEPR) error {
	vendasIDs, err := json.Marshal(analise.VendasIDs)
	if err != nil {
		return fmt.Errorf("erro ao serializar vendas_ids: %w", err)
	}

	dadosEPR, err := json.Marshal(analise.DadosEPR)
	if err != nil {
		return fmt.Errorf("erro ao serializar dados_epr: %w", err)
	}

	resumoPorMes, err := json.Marshal(analise.ResumoPorMes)
	if err != nil {
		return fmt.Errorf("erro ao serializar resumo_por_mes: %w", err)
	}

	sqlQuery, args, err := squirrel.StatementBuilder.
		Insert(analisesEPRTable).
		Columns("id", "status", "vendas_ids", "dados_epr", "total_encontradas", "resumo_por_mes").
		Values(analise.ID, analise.Status, vendasIDs, dadosEPR, analise.TotalEncontradas, resumoPorMes).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if err := q.QueryRow(sqlQuery, args...).Scan(&analise.CreatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao criar análise: %w", err)
	}

	return nil
}

func (r *analiseEPRRepository) GetByID(analiseID string) (*domain.AnaliseEPR, error) {
	sqlQuery, args, err := r.selectBuilder().
		Where(squirrel.Eq{"id": analiseID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar análise: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	return deserializeAnalise(rows)
}

func (r *analiseEPRRepository) List(status *domain.StatusAnalise) ([]*domain.AnaliseEPR, error) {
	queryBuilder := r.selectBuilder().OrderBy("created_at DESC")
	if status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"status": *status})
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao consultar análises: %w", err)
	}
	defer rows.Close()

	analises := make([]*domain.AnaliseEPR, 0)
	for rows.Next() {
		analise, err := deserializeAnalise(rows)
		if err != nil {
			return nil, err
		}
		analises = append(analises, analise)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return analises, nil
}

func (r *analiseEPRRepository) selectBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select("id, status, vendas_ids, dados_epr, total_encontradas, resumo_por_mes, created_at, confirmado_em").
		From(analisesEPRTable).
		PlaceholderFormat(squirrel.Dollar)
}

func deserializeAnalise(rows *sql.Rows) (*domain.AnaliseEPR, error) {
	analise := &domain.AnaliseEPR{}

	var vendasIDs, dadosEPR, resumoPorMes []byte
	var confirmadoEm sql.NullTime

	if err := rows.Scan(
		&analise.ID,
		&analise.Status,
		&vendasIDs,
		&dadosEPR,
		&analise.TotalEncontradas,
		&resumoPorMes,
		&analise.CreatedAt,
		&confirmadoEm,
	); err != nil {
		return nil, fmt.Errorf("erro ao deserializar a análise: %w", err)
	}

	if err := json.Unmarshal(vendasIDs, &analise.VendasIDs); err != nil {
		return nil, fmt.Errorf("erro ao ler vendas_ids: %w", err)
	}
	if err := json.Unmarshal(dadosEPR, &analise.DadosEPR); err != nil {
		return nil, fmt.Errorf("erro ao ler dados_epr: %w", err)
	}
	if err := json.Unmarshal(resumoPorMes, &analise.ResumoPorMes); err != nil {
		return nil, fmt.Errorf("erro ao ler resumo_por_mes: %w", err)
	}
	if confirmadoEm.Valid {
		analise.ConfirmadoEm = &confirmadoEm.Time
	}

	return analise, nil
}

func (r *analiseEPRRepository) MarcarConfirmada(q postgres.Queryer, analiseID string, confirmadoEm time.Time) (bool, error) {
	return r.transicionar(q, analiseID, domain.AnaliseConfirmada, &confirmadoEm)
}

func (r *analiseEPRRepository) MarcarCancelada(q postgres.Queryer, analiseID string) (bool, error) {
	return r.transicionar(q, analiseID, domain.AnaliseCancelada, nil)
}

// transicionar só sai do estado pendente: o WHERE garante que, entre duas
// chamadas concorrentes sobre a mesma análise, apenas a primeira vence.
func (r *analiseEPRRepository) transicionar(q postgres.Queryer, analiseID string, destino domain.StatusAnalise, confirmadoEm *time.Time) (bool, error) {
	queryBuilder := squirrel.
		Update(analisesEPRTable).
		Set("status", destino).
		Where(squirrel.Eq{"id": analiseID, "status": domain.AnalisePendente}).
		PlaceholderFormat(squirrel.Dollar)

	if confirmadoEm != nil {
		queryBuilder = queryBuilder.Set("confirmado_em", *confirmadoEm)
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := q.Exec(sqlQuery, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao transicionar análise: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
