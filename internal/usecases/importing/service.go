package importing

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recebimentos-api/infrastructure/database/postgres"
	"github.com/vfg2006/recebimentos-api/infrastructure/repository"
	"github.com/vfg2006/recebimentos-api/infrastructure/spreadsheet"
	"github.com/vfg2006/recebimentos-api/internal/domain"
	"github.com/vfg2006/recebimentos-api/pkg/apiErrors"
	"github.com/vfg2006/recebimentos-api/pkg/names"
	"github.com/vfg2006/recebimentos-api/pkg/utils"
)

// percentualComissao é a fração do valor da venda repassada como comissão
// pela planilha de gestão.
// TODO: confirmar com o financeiro a origem do percentual 0.00195.
const percentualComissao = 0.00195

// maxNomesNaoEncontrados limita a amostra de nomes sem correspondência
// devolvida ao chamador. O total segue sendo reportado por inteiro.
const maxNomesNaoEncontrados = 10

// Regras de detecção de colunas de cada planilha. A busca é por substring
// do rótulo, sem acento e sem caixa; a primeira coluna que casar vence.
var (
	regrasAcompanhamento = []spreadsheet.RegraColuna{
		{Campo: "data", PalavrasChave: []string{"data"}, Obrigatoria: true},
		{Campo: "nome", PalavrasChave: []string{"nome", "cliente"}, Obrigatoria: true},
		{Campo: "corretor", PalavrasChave: []string{"corretor"}},
		{Campo: "imobiliaria", PalavrasChave: []string{"imobiliaria"}},
		{Campo: "empreendimento", PalavrasChave: []string{"empreendimento"}, Obrigatoria: true},
		{Campo: "unidade", PalavrasChave: []string{"unidade"}},
		{Campo: "etapa", PalavrasChave: []string{"etapa"}},
		{Campo: "fgts", PalavrasChave: []string{"fgts"}},
		{Campo: "observacoes", PalavrasChave: []string{"observa"}},
	}

	regrasGestao = []spreadsheet.RegraColuna{
		{Campo: "nome", PalavrasChave: []string{"nome", "cliente"}, Obrigatoria: true},
		{Campo: "forma_pagamento", PalavrasChave: []string{"pagamento", "forma"}, Obrigatoria: true},
		{Campo: "valor", PalavrasChave: []string{"valor"}},
	}

	regrasSienge = []spreadsheet.RegraColuna{
		{Campo: "nome", PalavrasChave: []string{"nome", "cliente"}, Obrigatoria: true},
	}
)

type ImportService interface {
	ImportarAcompanhamento(ctx context.Context, file io.Reader, mesReferencia string) (*domain.ResultadoImportacao, error)
	ImportarGestao(ctx context.Context, file io.Reader) (*domain.ResultadoImportacao, error)
	ImportarSienge(ctx context.Context, file io.Reader) (*domain.ResultadoImportacao, error)
}

type Service struct {
	conn               postgres.Conn
	vendaRepo          repository.VendaRepository
	clienteRepo        repository.ClienteRepository
	empreendimentoRepo repository.EmpreendimentoRepository
	tabelaRepo         repository.TabelaMensalRepository
}

func NewService(
	conn postgres.Conn,
	vendaRepo repository.VendaRepository,
	clienteRepo repository.ClienteRepository,
	empreendimentoRepo repository.EmpreendimentoRepository,
	tabelaRepo repository.TabelaMensalRepository,
) ImportService {
	return &Service{
		conn:               conn,
		vendaRepo:          vendaRepo,
		clienteRepo:        clienteRepo,
		empreendimentoRepo: empreendimentoRepo,
		tabelaRepo:         tabelaRepo,
	}
}

// ImportarAcompanhamento processa a planilha de acompanhamento, a fonte de
// verdade para nomes de clientes e empreendimentos. Clientes e
// empreendimentos ausentes são criados em lote; cada linha vira uma venda
// nova ou uma atualização dos campos de acompanhamento de uma venda já
// existente, conforme a chave (cliente, empreendimento, unidade, data).
// Se mesReferencia vier vazio, o mês de cada venda deriva da data da venda.
func (s *Service) ImportarAcompanhamento(ctx context.Context, file io.Reader, mesReferencia string) (*domain.ResultadoImportacao, error) {
	if file == nil {
		return nil, NewImportError(ErrArquivoObrigatorio, apiErrors.ErrMissingRequiredData, "")
	}

	if mesReferencia != "" && !domain.MesReferenciaValido(mesReferencia) {
		return nil, NewImportError(ErrMesReferenciaInvalido, apiErrors.ErrInvalidFormat, mesReferencia)
	}

	brutas, err := spreadsheet.LerXLSX(file)
	if err != nil {
		return nil, NewImportError(ErrLeituraPlanilha, apiErrors.ErrImportFailed, err.Error())
	}

	registros, err := spreadsheet.MapearColunas(brutas, regrasAcompanhamento)
	if err != nil {
		return nil, NewImportError(ErrLeituraPlanilha, apiErrors.ErrImportFailed, err.Error())
	}

	linhas, err := extrairLinhasAcompanhamento(registros)
	if err != nil {
		return nil, err
	}

	var plano *planoAcompanhamento
	err = s.conn.RunInSerializableTransaction(ctx, func(tx *sql.Tx) error {
		plano, err = s.planejarAcompanhamento(tx, linhas, mesReferencia)
		if err != nil {
			return err
		}

		if err := s.vendaRepo.BulkInsert(tx, plano.Criar); err != nil {
			return NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		if err := s.vendaRepo.BulkUpdateAcompanhamento(tx, plano.Atualizar); err != nil {
			return NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof(
		"Importação de acompanhamento concluída: %d vendas criadas, %d atualizadas, %d clientes novos",
		len(plano.Criar), len(plano.Atualizar), plano.ClientesCriados,
	)

	return &domain.ResultadoImportacao{
		Criadas:              len(plano.Criar),
		Atualizadas:          len(plano.Atualizar),
		ClientesCriados:      plano.ClientesCriados,
		EmpreendimentosNovos: plano.EmpreendimentosNovos,
	}, nil
}

// ImportarGestao processa a planilha de controle da gestão, que enriquece
// vendas existentes com a forma de pagamento e o valor da venda. O matching
// é por nome normalizado contra todas as vendas cadastradas; nomes sem
// correspondência são reportados, nunca tratados como erro.
func (s *Service) ImportarGestao(ctx context.Context, file io.Reader) (*domain.ResultadoImportacao, error) {
	if file == nil {
		return nil, NewImportError(ErrArquivoObrigatorio, apiErrors.ErrMissingRequiredData, "")
	}

	brutas, err := spreadsheet.LerXLSX(file)
	if err != nil {
		return nil, NewImportError(ErrLeituraPlanilha, apiErrors.ErrImportFailed, err.Error())
	}

	registros, err := spreadsheet.MapearColunas(brutas, regrasGestao)
	if err != nil {
		return nil, NewImportError(ErrLeituraPlanilha, apiErrors.ErrImportFailed, err.Error())
	}

	resultado := &domain.ResultadoImportacao{}

	err = s.conn.RunInSerializableTransaction(ctx, func(tx *sql.Tx) error {
		vendas, err := s.vendaRepo.ListDetalhadas(tx, domain.FiltroVendas{})
		if err != nil {
			return NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		indice := names.Construir(vendas, func(v *domain.VendaDetalhada) string {
			return v.ClienteNome
		})

		// Linhas repetidas para a mesma venda: a última prevalece, na mesma
		// política do índice de nomes.
		porVenda := make(map[string]*domain.AtualizacaoPagamento)
		ordem := make([]string, 0, len(registros))
		naoEncontrados := make([]string, 0)

		for i, registro := range registros {
			nome := strings.TrimSpace(registro["nome"])
			if spreadsheet.CampoVazio(nome) {
				continue
			}

			venda, _, ok := indice.Resolver(nome)
			if !ok {
				naoEncontrados = append(naoEncontrados, nome)
				continue
			}

			forma, ok := mapearFormaPagamento(registro["forma_pagamento"])
			if !ok {
				// A linha casou com uma venda mas a forma de pagamento não
				// é reconhecida; reportar em vez de descartar em silêncio.
				naoEncontrados = append(naoEncontrados, fmt.Sprintf(
					"%s (forma de pagamento não reconhecida: %s)",
					nome, strings.TrimSpace(registro["forma_pagamento"]),
				))
				continue
			}

			atualizacao := &domain.AtualizacaoPagamento{
				VendaID:        venda.ID,
				FormaPagamento: forma,
			}

			if valorBruto := registro["valor"]; !spreadsheet.CampoVazio(valorBruto) {
				valor, err := spreadsheet.ParseValor(valorBruto)
				if err != nil {
					return NewImportError(ErrLinhaInvalida, apiErrors.ErrImportFailed,
						fmt.Sprintf("linha %d: valor inválido %q", i+1, valorBruto))
				}

				comissao := utils.RoundWithTwoDecimalPlace(valor * percentualComissao)
				atualizacao.ValorVenda = &valor
				atualizacao.ValorComissao = &comissao
			}

			if _, visto := porVenda[venda.ID]; !visto {
				ordem = append(ordem, venda.ID)
			}
			porVenda[venda.ID] = atualizacao
		}

		atualizacoes := make([]*domain.AtualizacaoPagamento, 0, len(ordem))
		for _, vendaID := range ordem {
			atualizacoes = append(atualizacoes, porVenda[vendaID])
		}

		if err := s.vendaRepo.BulkUpdatePagamento(tx, atualizacoes); err != nil {
			return NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		resultado.Atualizadas = len(atualizacoes)
		resultado.TotalNaoEncontrados = len(naoEncontrados)
		resultado.NaoEncontrados = capNaoEncontrados(naoEncontrados)

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof(
		"Importação de gestão concluída: %d vendas atualizadas, %d nomes sem correspondência",
		resultado.Atualizadas, resultado.TotalNaoEncontrados,
	)

	return resultado, nil
}

// ImportarSienge processa o extrato do gateway de pagamentos. Só considera
// vendas à vista ainda pendentes: as encontradas são faturadas com a data
// de hoje; as demais linhas são reportadas como sem correspondência.
func (s *Service) ImportarSienge(ctx context.Context, file io.Reader) (*domain.ResultadoImportacao, error) {
	if file == nil {
		return nil, NewImportError(ErrArquivoObrigatorio, apiErrors.ErrMissingRequiredData, "")
	}

	brutas, err := spreadsheet.LerXLSX(file)
	if err != nil {
		return nil, NewImportError(ErrLeituraPlanilha, apiErrors.ErrImportFailed, err.Error())
	}

	registros, err := spreadsheet.MapearColunas(brutas, regrasSienge)
	if err != nil {
		return nil, NewImportError(ErrLeituraPlanilha, apiErrors.ErrImportFailed, err.Error())
	}

	resultado := &domain.ResultadoImportacao{}

	err = s.conn.RunInSerializableTransaction(ctx, func(tx *sql.Tx) error {
		formaPagamento := domain.PagamentoAVista
		status := domain.StatusPendente
		vendas, err := s.vendaRepo.ListDetalhadas(tx, domain.FiltroVendas{
			FormaPagamento: &formaPagamento,
			Status:         &status,
		})
		if err != nil {
			return NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		indice := names.Construir(vendas, func(v *domain.VendaDetalhada) string {
			return v.ClienteNome
		})

		vistos := make(map[string]struct{})
		vendaIDs := make([]string, 0, len(registros))
		naoEncontrados := make([]string, 0)

		for _, registro := range registros {
			nome := strings.TrimSpace(registro["nome"])
			if spreadsheet.CampoVazio(nome) {
				continue
			}

			venda, _, ok := indice.Resolver(nome)
			if !ok {
				naoEncontrados = append(naoEncontrados, nome)
				continue
			}

			if _, visto := vistos[venda.ID]; visto {
				continue
			}
			vistos[venda.ID] = struct{}{}
			vendaIDs = append(vendaIDs, venda.ID)
		}

		faturadas, err := s.vendaRepo.FaturarPendentes(tx, vendaIDs, time.Now())
		if err != nil {
			return NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		resultado.Atualizadas = int(faturadas)
		resultado.TotalNaoEncontrados = len(naoEncontrados)
		resultado.NaoEncontrados = capNaoEncontrados(naoEncontrados)

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof(
		"Importação do Sienge concluída: %d vendas faturadas, %d nomes sem correspondência",
		resultado.Atualizadas, resultado.TotalNaoEncontrados,
	)

	return resultado, nil
}

// mapearFormaPagamento traduz o texto livre da coluna de pagamento para o
// enum interno. A ordem das verificações importa: "financiado" é testado
// antes das variações de pagamento à vista.
func mapearFormaPagamento(valor string) (domain.FormaPagamento, bool) {
	chave := names.Normalizar(valor)

	switch {
	case strings.Contains(chave, "fin"):
		return domain.PagamentoFinanciado, true
	case strings.Contains(chave, "pix"),
		strings.Contains(chave, "cartao"),
		strings.Contains(chave, "vista"):
		return domain.PagamentoAVista, true
	case strings.Contains(chave, "quitado"),
		strings.Contains(chave, "desconto"):
		return domain.PagamentoDesconto, true
	}

	return "", false
}

func capNaoEncontrados(nomes []string) []string {
	if len(nomes) > maxNomesNaoEncontrados {
		return nomes[:maxNomesNaoEncontrados]
	}
	return nomes
}
