package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/recebimentos-api/infrastructure/database/postgres"
	"github.com/vfg2006/recebimentos-api/internal/domain"
)

const (
	vendasTable  = "vendas v"
	vendasSelect = `v.id, v.cliente_id, v.empreendimento_id, v.tabela_mensal_id, v.data_venda,
		v.status, v.forma_pagamento, v.valor_venda, v.valor_comissao, v.fgts,
		v.corretor, v.imobiliaria, v.unidade, v.etapa, v.observacoes,
		v.data_faturamento, v.created_at, c.nome, e.nome, t.mes_referencia`
)

type VendaRepository interface {
	GetByID(vendaID string) (*domain.VendaDetalhada, error)
	ListDetalhadas(q postgres.Queryer, filtro domain.FiltroVendas) ([]*domain.VendaDetalhada, error)
	Create(q postgres.Queryer, venda *domain.Venda) error
	Delete(vendaID string) (bool, error)
	BulkInsert(q postgres.Queryer, vendas []*domain.Venda) error
	BulkUpdateAcompanhamento(q postgres.Queryer, atualizacoes []*domain.AtualizacaoAcompanhamento) error
	BulkUpdatePagamento(q postgres.Queryer, atualizacoes []*domain.AtualizacaoPagamento) error
	FaturarPendentes(q postgres.Queryer, vendaIDs []string, dataFaturamento time.Time) (int64, error)
	Resumo() (*domain.ResumoVendas, error)
	ResumoPorTabela(tabela *domain.TabelaMensal) (*domain.ResumoMensal, error)
}

type vendaRepository struct {
	conn *postgres.Connection
}

func NewVendaRepository(conn *postgres.Connection) VendaRepository {
	return &vendaRepository{
		conn: conn,
	}
}

func (r *vendaRepository) GetByID(vendaID string) (*domain.VendaDetalhada, error) {
	vendas, err := r.listDetalhadas(r.conn, squirrel.Eq{"v.id": vendaID})
	if err != nil {
		return nil, err
	}

	if len(vendas) == 0 {
		return nil, nil
	}

	return vendas[0], nil
}

// ListDetalhadas consulta vendas por igualdade de campos, com os nomes de
// cliente e empreendimento resolvidos por join. É a consulta usada para
// montar os índices de matching das importações, por isso recebe o Queryer:
// dentro de uma importação a leitura precisa enxergar o mesmo snapshot da
// transação que fará as escritas.
func (r *vendaRepository) ListDetalhadas(q postgres.Queryer, filtro domain.FiltroVendas) ([]*domain.VendaDetalhada, error) {
	where := squirrel.Eq{}
	if filtro.FormaPagamento != nil {
		where["v.forma_pagamento"] = *filtro.FormaPagamento
	}
	if filtro.Status != nil {
		where["v.status"] = *filtro.Status
	}
	if filtro.TabelaMensalID != nil {
		where["v.tabela_mensal_id"] = *filtro.TabelaMensalID
	}

	return r.listDetalhadas(q, where)
}

func (r *vendaRepository) listDetalhadas(q postgres.Queryer, where squirrel.Eq) ([]*domain.VendaDetalhada, error) {
	queryBuilder := squirrel.
		Select(vendasSelect).
		From(vendasTable).
		Join("clientes c ON v.cliente_id = c.id").
		Join("empreendimentos e ON v.empreendimento_id = e.id").
		Join("tabelas_mensais t ON v.tabela_mensal_id = t.id").
		OrderBy("v.data_venda ASC, v.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if len(where) > 0 {
		queryBuilder = queryBuilder.Where(where)
	}

	vendasSQL, vendasArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.Query(vendasSQL, vendasArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao consultar vendas: %w", err)
	}
	defer rows.Close()

	vendas := make([]*domain.VendaDetalhada, 0)
	for rows.Next() {
		venda, err := deserializeVenda(rows)
		if err != nil {
			return nil, err
		}
		vendas = append(vendas, venda)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar sobre os resultados: %w", err)
	}

	return vendas, nil
}

func deserializeVenda(rows *sql.Rows) (*domain.VendaDetalhada, error) {
	venda := &domain.VendaDetalhada{}

	var formaPagamento sql.NullString
	var dataFaturamento sql.NullTime

	if err := rows.Scan(
		&venda.ID,
		&venda.ClienteID,
		&venda.EmpreendimentoID,
		&venda.TabelaMensalID,
		&venda.DataVenda,
		&venda.Status,
		&formaPagamento,
		&venda.ValorVenda,
		&venda.ValorComissao,
		&venda.FGTS,
		&venda.Corretor,
		&venda.Imobiliaria,
		&venda.Unidade,
		&venda.Etapa,
		&venda.Observacoes,
		&dataFaturamento,
		&venda.CreatedAt,
		&venda.ClienteNome,
		&venda.EmpreendimentoNome,
		&venda.MesReferencia,
	); err != nil {
		return nil, fmt.Errorf("erro ao deserializar a venda: %w", err)
	}

	if formaPagamento.Valid {
		venda.FormaPagamento = domain.FormaPagamento(formaPagamento.String)
	}
	if dataFaturamento.Valid {
		venda.DataFaturamento = &dataFaturamento.Time
	}

	return venda, nil
}

// Create grava uma venda avulsa. Recebe o Queryer para poder participar da
// transação que cria a tabela mensal sob demanda.
func (r *vendaRepository) Create(q postgres.Queryer, venda *domain.Venda) error {
	return r.BulkInsert(q, []*domain.Venda{venda})
}

func (r *vendaRepository) Delete(vendaID string) (bool, error) {
	deleteSQL, deleteArgs, err := squirrel.
		Delete("vendas").
		Where(squirrel.Eq{"id": vendaID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, err
	}

	result, err := r.conn.Exec(deleteSQL, deleteArgs...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover venda: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// BulkInsert grava todas as vendas novas em uma única operação. O índice
// único (cliente, empreendimento, unidade, data da venda) protege contra
// duplicatas caso duas importações concorrentes decidam criar a mesma venda.
func (r *vendaRepository) BulkInsert(q postgres.Queryer, vendas []*domain.Venda) error {
	if len(vendas) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("vendas").
		Columns(
			"id", "cliente_id", "empreendimento_id", "tabela_mensal_id", "data_venda",
			"status", "forma_pagamento", "valor_venda", "valor_comissao", "fgts",
			"corretor", "imobiliaria", "unidade", "etapa", "observacoes",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, venda := range vendas {
		var formaPagamento interface{}
		if venda.FormaPagamento != "" {
			formaPagamento = string(venda.FormaPagamento)
		}

		query = query.Values(
			venda.ID,
			venda.ClienteID,
			venda.EmpreendimentoID,
			venda.TabelaMensalID,
			venda.DataVenda,
			venda.Status,
			formaPagamento,
			venda.ValorVenda,
			venda.ValorComissao,
			venda.FGTS,
			venda.Corretor,
			venda.Imobiliaria,
			venda.Unidade,
			venda.Etapa,
			venda.Observacoes,
		)
	}

	query = query.Suffix("ON CONFLICT DO NOTHING")

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

// BulkUpdateAcompanhamento aplica em lote os campos de enriquecimento da
// planilha de acompanhamento. A lista de colunas é fechada: nenhuma outra
// coluna da venda é tocada por essa importação.
func (r *vendaRepository) BulkUpdateAcompanhamento(q postgres.Queryer, atualizacoes []*domain.AtualizacaoAcompanhamento) error {
	if len(atualizacoes) == 0 {
		return nil
	}

	colunas := []string{"id::text", "corretor::text", "imobiliaria::text", "etapa::text", "fgts::numeric", "observacoes::text"}
	args := make([]interface{}, 0, len(atualizacoes)*len(colunas))
	for _, a := range atualizacoes {
		args = append(args, a.VendaID, a.Corretor, a.Imobiliaria, a.Etapa, a.FGTS, a.Observacoes)
	}

	query := fmt.Sprintf(`
		UPDATE vendas AS v SET
			corretor = COALESCE(d.corretor, v.corretor),
			imobiliaria = COALESCE(d.imobiliaria, v.imobiliaria),
			etapa = COALESCE(d.etapa, v.etapa),
			fgts = COALESCE(d.fgts, v.fgts),
			observacoes = COALESCE(d.observacoes, v.observacoes)
		FROM (VALUES %s) AS d(id, corretor, imobiliaria, etapa, fgts, observacoes)
		WHERE v.id = d.id`,
		valuesPlaceholders(len(atualizacoes), colunas),
	)

	if _, err := q.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar vendas do acompanhamento: %w", err)
	}

	return nil
}

// BulkUpdatePagamento aplica em lote a forma de pagamento, o valor da venda
// e a comissão derivada, vindos da planilha de gestão. Somente essas três
// colunas são atualizadas.
func (r *vendaRepository) BulkUpdatePagamento(q postgres.Queryer, atualizacoes []*domain.AtualizacaoPagamento) error {
	if len(atualizacoes) == 0 {
		return nil
	}

	colunas := []string{"id::text", "forma_pagamento::text", "valor_venda::numeric", "valor_comissao::numeric"}
	args := make([]interface{}, 0, len(atualizacoes)*len(colunas))
	for _, a := range atualizacoes {
		args = append(args, a.VendaID, string(a.FormaPagamento), a.ValorVenda, a.ValorComissao)
	}

	query := fmt.Sprintf(`
		UPDATE vendas AS v SET
			forma_pagamento = d.forma_pagamento,
			valor_venda = COALESCE(d.valor_venda, v.valor_venda),
			valor_comissao = COALESCE(d.valor_comissao, v.valor_comissao)
		FROM (VALUES %s) AS d(id, forma_pagamento, valor_venda, valor_comissao)
		WHERE v.id = d.id`,
		valuesPlaceholders(len(atualizacoes), colunas),
	)

	if _, err := q.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar pagamento das vendas: %w", err)
	}

	return nil
}

// FaturarPendentes marca como faturadas apenas as vendas informadas que
// AINDA estão pendentes, carimbando a data de faturamento. Retorna quantas
// de fato mudaram de estado.
func (r *vendaRepository) FaturarPendentes(q postgres.Queryer, vendaIDs []string, dataFaturamento time.Time) (int64, error) {
	if len(vendaIDs) == 0 {
		return 0, nil
	}

	updateSQL, updateArgs, err := squirrel.
		Update("vendas").
		Set("status", domain.StatusFaturado).
		Set("data_faturamento", dataFaturamento).
		Where(squirrel.Eq{"id": vendaIDs, "status": domain.StatusPendente}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := q.Exec(updateSQL, updateArgs...)
	if err != nil {
		return 0, fmt.Errorf("erro ao faturar vendas: %w", err)
	}

	return result.RowsAffected()
}

func (r *vendaRepository) Resumo() (*domain.ResumoVendas, error) {
	resumo := &domain.ResumoVendas{}

	err := r.conn.QueryRow(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PE'),
			COUNT(*) FILTER (WHERE status = 'FA'),
			COALESCE(SUM(valor_venda), 0),
			COALESCE(SUM(valor_comissao), 0),
			COALESCE(SUM(valor_comissao) FILTER (WHERE status = 'PE'), 0),
			COALESCE(SUM(valor_comissao) FILTER (WHERE status = 'FA'), 0),
			COUNT(*) FILTER (WHERE forma_pagamento = 'AV'),
			COUNT(*) FILTER (WHERE forma_pagamento = 'FI')
		FROM vendas`,
	).Scan(
		&resumo.TotalVendas,
		&resumo.VendasPendentes,
		&resumo.VendasFaturadas,
		&resumo.TotalValorVendas,
		&resumo.TotalComissao,
		&resumo.ComissaoPendente,
		&resumo.ComissaoFaturada,
		&resumo.VendasAVista,
		&resumo.VendasFinanciadas,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar o resumo de vendas: %w", err)
	}

	return resumo, nil
}

func (r *vendaRepository) ResumoPorTabela(tabela *domain.TabelaMensal) (*domain.ResumoMensal, error) {
	resumo := &domain.ResumoMensal{
		TabelaMensalID: tabela.ID,
		MesReferencia:  tabela.MesReferencia,
	}

	err := r.conn.QueryRow(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'PE'),
			COUNT(*) FILTER (WHERE status = 'FA'),
			COALESCE(SUM(valor_comissao), 0),
			COALESCE(SUM(valor_comissao) FILTER (WHERE status = 'FA'), 0)
		FROM vendas
		WHERE tabela_mensal_id = $1`,
		tabela.ID,
	).Scan(
		&resumo.TotalVendas,
		&resumo.Pendentes,
		&resumo.Faturadas,
		&resumo.TotalComissao,
		&resumo.ComissaoFaturada,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar o resumo da tabela %s: %w", tabela.MesReferencia, err)
	}

	return resumo, nil
}

// valuesPlaceholders monta a lista de tuplas "($1::text, $2::numeric), ..."
// de um UPDATE ... FROM (VALUES ...). Os casts garantem o tipo das colunas
// mesmo quando o argumento é NULL.
func valuesPlaceholders(linhas int, colunas []string) string {
	var b strings.Builder
	n := 1

	for i := 0; i < linhas; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		for j, coluna := range colunas {
			if j > 0 {
				b.WriteString(", ")
			}
			cast := ""
			if idx := strings.Index(coluna, "::"); idx >= 0 {
				cast = coluna[idx:]
			}
			fmt.Fprintf(&b, "$%d%s", n, cast)
			n++
		}
		b.WriteString(")")
	}

	return b.String()
}
