package analyzing

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
)

// Regras de colunas da planilha EPR. A coluna de nome procura primeiro o
// radical "mutuario" em toda a linha de cabeçalho antes de recorrer a
// "nome", que também aparece no rótulo do empreendimento.
var regrasEPR = []spreadsheet.RegraColuna{
	{Campo: "nome", PalavrasChave: []string{"mutuario", "nome"}, Obrigatoria: true},
	{Campo: "nome_empreendimento", PalavrasChave: []string{"empreendimento"}},
	{Campo: "numero_contrato", PalavrasChave: []string{"contrato"}},
	{Campo: "cpf_cnpj", PalavrasChave: []string{"cpf"}},
	{Campo: "data_assinatura", PalavrasChave: []string{"assinatura"}},
	{Campo: "valor_financiamento", PalavrasChave: []string{"valor de financiamento"}},
	{Campo: "valor_financiamento_terreno", PalavrasChave: []string{"terreno"}},
	{Campo: "valor_subsidio", PalavrasChave: []string{"subsidio"}},
	{Campo: "valor_fgts", PalavrasChave: []string{"fgts"}},
	{Campo: "valor_recursos_proprios", PalavrasChave: []string{"recursos"}},
	{Campo: "valor_compra_venda", PalavrasChave: []string{"compra"}},
}

type AnalysisService interface {
	Analisar(ctx context.Context, file io.Reader) (*domain.ResultadoAnaliseEPR, error)
	Confirmar(ctx context.Context, analiseID string) (*domain.ConfirmacaoAnalise, error)
	Cancelar(ctx context.Context, analiseID string) error
	Exportar(ctx context.Context, analiseID string, mesFiltro string) ([]byte, string, error)
	Listar(status *domain.StatusAnalise) ([]*domain.AnaliseEPR, error)
	Detalhar(analiseID string) (*domain.AnaliseEPR, error)
}

type Service struct {
	conn        postgres.Conn
	vendaRepo   repository.VendaRepository
	analiseRepo repository.AnaliseEPRRepository
}

func NewService(
	conn postgres.Conn,
	vendaRepo repository.VendaRepository,
	analiseRepo repository.AnaliseEPRRepository,
) AnalysisService {
	return &Service{
		conn:        conn,
		vendaRepo:   vendaRepo,
		analiseRepo: analiseRepo,
	}
}

// Analisar cruza a planilha EPR com as vendas financiadas pendentes e
// registra uma análise pendente com o retrato completo do que foi
// encontrado. Nenhuma venda é alterada nesta etapa; o faturamento só
// acontece na confirmação. Quando nada casa, devolve apenas o relatório,
// sem criar registro.
func (s *Service) Analisar(ctx context.Context, file io.Reader) (*domain.ResultadoAnaliseEPR, error) {
	if file == nil {
		return nil, NewAnalysisError(ErrArquivoObrigatorio, apiErrors.ErrMissingRequiredData, "")
	}

	brutas, err := spreadsheet.LerXLS(file)
	if err != nil {
		return nil, NewAnalysisError(ErrLeituraPlanilha, apiErrors.ErrImportFailed, err.Error())
	}

	registros, err := spreadsheet.MapearColunas(brutas, regrasEPR)
	if err != nil {
		return nil, NewAnalysisError(ErrLeituraPlanilha, apiErrors.ErrImportFailed, err.Error())
	}

	resultado := &domain.ResultadoAnaliseEPR{
		TotalLinhas: len(registros),
	}

	err = s.conn.RunInSerializableTransaction(ctx, func(tx *sql.Tx) error {
		formaPagamento := domain.PagamentoFinanciado
		status := domain.StatusPendente
		vendas, err := s.vendaRepo.ListDetalhadas(tx, domain.FiltroVendas{
			FormaPagamento: &formaPagamento,
			Status:         &status,
		})
		if err != nil {
			return NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		indice := names.Construir(vendas, func(v *domain.VendaDetalhada) string {
			return v.ClienteNome
		})

		// Linhas repetidas para a mesma venda: a última prevalece, na mesma
		// política do índice de nomes.
		porVenda := make(map[string]domain.DadosLinhaEPR)
		ordem := make([]string, 0, len(registros))

		for _, registro := range registros {
			nome := strings.TrimSpace(registro["nome"])
			if spreadsheet.CampoVazio(nome) {
				continue
			}

			venda, _, ok := indice.Resolver(nome)
			if !ok {
				continue
			}

			if _, visto := porVenda[venda.ID]; !visto {
				ordem = append(ordem, venda.ID)
			}
			porVenda[venda.ID] = extrairDadosLinha(registro, nome, venda)
		}

		if len(ordem) == 0 {
			resultado.Mensagem = "Nenhuma venda pendente encontrada na planilha EPR"
			return nil
		}

		analiseID, err := domain.NovoID()
		if err != nil {
			return NewAnalysisError(ErrGenerateID, apiErrors.ErrInternalServer, "análise")
		}

		dadosEPR := make([]domain.DadosLinhaEPR, 0, len(ordem))
		resumoPorMes := make(map[string]int)
		detalhesPorMes := make(map[string][]domain.PreviaLinhaEPR)

		for _, vendaID := range ordem {
			dados := porVenda[vendaID]
			dadosEPR = append(dadosEPR, dados)

			if dados.MesReferencia == "" {
				continue
			}
			resumoPorMes[dados.MesReferencia]++
			detalhesPorMes[dados.MesReferencia] = append(detalhesPorMes[dados.MesReferencia], domain.PreviaLinhaEPR{
				VendaID:        dados.VendaID,
				Cliente:        dados.NomeMutuario,
				Empreendimento: dados.EmpreendimentoSistema,
				ValorComissao:  dados.ValorComissao,
			})
		}

		analise := &domain.AnaliseEPR{
			ID:               analiseID,
			Status:           domain.AnalisePendente,
			VendasIDs:        ordem,
			DadosEPR:         dadosEPR,
			TotalEncontradas: len(ordem),
			ResumoPorMes:     resumoPorMes,
		}

		if err := s.analiseRepo.Create(tx, analise); err != nil {
			return NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		resultado.AnaliseID = analiseID
		resultado.Mensagem = "Análise criada com sucesso. Aguardando confirmação."
		resultado.VendasEncontradas = len(ordem)
		resultado.ResumoPorMes = resumoPorMes
		resultado.DetalhesPorMes = detalhesPorMes

		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof(
		"Análise EPR processada: %d linhas, %d vendas encontradas",
		resultado.TotalLinhas, resultado.VendasEncontradas,
	)

	return resultado, nil
}

// Confirmar fatura as vendas alvo de uma análise pendente. A transição da
// análise é condicionada ao status atual, então entre duas confirmações
// concorrentes só a primeira passa; a segunda enxerga o estado inválido.
// Vendas que deixaram de estar pendentes entre a análise e a confirmação
// ficam de fora da contagem, o que é reportado e não é erro.
func (s *Service) Confirmar(ctx context.Context, analiseID string) (*domain.ConfirmacaoAnalise, error) {
	analise, err := s.buscarAnalise(analiseID)
	if err != nil {
		return nil, err
	}

	if analise.Status != domain.AnalisePendente {
		return nil, s.estadoInvalido(analise)
	}

	confirmadoEm := time.Now()
	confirmacao := &domain.ConfirmacaoAnalise{
		AnaliseID:    analiseID,
		ConfirmadoEm: confirmadoEm,
	}

	err = s.conn.RunInSerializableTransaction(ctx, func(tx *sql.Tx) error {
		transicionada, err := s.analiseRepo.MarcarConfirmada(tx, analiseID, confirmadoEm)
		if err != nil {
			return NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}
		if !transicionada {
			// Outra chamada venceu a corrida depois da verificação inicial.
			return s.estadoInvalidoAtual(analiseID)
		}

		faturadas, err := s.vendaRepo.FaturarPendentes(tx, analise.VendasIDs, confirmadoEm)
		if err != nil {
			return NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		confirmacao.VendasFaturadas = faturadas
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof(
		"Análise %s confirmada: %d de %d vendas faturadas",
		analiseID, confirmacao.VendasFaturadas, analise.TotalEncontradas,
	)

	return confirmacao, nil
}

// Cancelar descarta uma análise pendente. Nenhuma venda é alterada.
func (s *Service) Cancelar(ctx context.Context, analiseID string) error {
	analise, err := s.buscarAnalise(analiseID)
	if err != nil {
		return err
	}

	if analise.Status != domain.AnalisePendente {
		return s.estadoInvalido(analise)
	}

	return s.conn.RunInSerializableTransaction(ctx, func(tx *sql.Tx) error {
		transicionada, err := s.analiseRepo.MarcarCancelada(tx, analiseID)
		if err != nil {
			return NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}
		if !transicionada {
			return s.estadoInvalidoAtual(analiseID)
		}
		return nil
	})
}

// Exportar gera a planilha de recebimentos de uma análise confirmada a
// partir do payload congelado na análise, nunca de uma nova consulta: o
// arquivo baixado reflete exatamente o que foi confirmado, mesmo que as
// vendas tenham mudado depois.
func (s *Service) Exportar(ctx context.Context, analiseID string, mesFiltro string) ([]byte, string, error) {
	analise, err := s.buscarAnalise(analiseID)
	if err != nil {
		return nil, "", err
	}

	if analise.Status != domain.AnaliseConfirmada {
		return nil, "", NewAnalysisErrorWithID(ErrEstadoInvalido, apiErrors.ErrInvalidState, analiseID,
			"análise não foi confirmada, não é possível exportar")
	}

	dados := analise.DadosEPR
	if mesFiltro != "" {
		filtrados := make([]domain.DadosLinhaEPR, 0, len(dados))
		for _, linha := range dados {
			if linha.MesReferencia == mesFiltro {
				filtrados = append(filtrados, linha)
			}
		}
		dados = filtrados
	}

	if len(dados) == 0 {
		return nil, "", NewAnalysisErrorWithID(ErrSemDados, apiErrors.ErrResourceNotFound, analiseID, mesFiltro)
	}

	planilha, err := spreadsheet.GerarPlanilhaRecebimentos(dados)
	if err != nil {
		return nil, "", NewAnalysisErrorWithID(ErrLeituraPlanilha, apiErrors.ErrInternalServer, analiseID, err.Error())
	}

	var nomeArquivo string
	if mesFiltro != "" {
		nomeArquivo = fmt.Sprintf("%s - Planilha Recebimentos.xlsx", strings.ReplaceAll(mesFiltro, "-", "."))
	} else {
		nomeArquivo = fmt.Sprintf("Analise_%s - Planilha Recebimentos.xlsx", analiseID)
	}

	return planilha, nomeArquivo, nil
}

func (s *Service) Listar(status *domain.StatusAnalise) ([]*domain.AnaliseEPR, error) {
	analises, err := s.analiseRepo.List(status)
	if err != nil {
		return nil, NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return analises, nil
}

func (s *Service) Detalhar(analiseID string) (*domain.AnaliseEPR, error) {
	return s.buscarAnalise(analiseID)
}

func (s *Service) buscarAnalise(analiseID string) (*domain.AnaliseEPR, error) {
	analise, err := s.analiseRepo.GetByID(analiseID)
	if err != nil {
		return nil, NewAnalysisError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if analise == nil {
		return nil, NewAnalysisErrorWithID(ErrAnaliseNaoEncontrada, apiErrors.ErrResourceNotFound, analiseID, "")
	}
	return analise, nil
}

func (s *Service) estadoInvalido(analise *domain.AnaliseEPR) error {
	return NewAnalysisErrorWithID(ErrEstadoInvalido, apiErrors.ErrInvalidState, analise.ID,
		fmt.Sprintf("análise já foi %s", analise.Status.Descricao()))
}

// estadoInvalidoAtual relata o estado corrente quando a transição condicional
// não encontrou a análise pendente.
func (s *Service) estadoInvalidoAtual(analiseID string) error {
	analise, err := s.analiseRepo.GetByID(analiseID)
	if err != nil || analise == nil {
		return NewAnalysisErrorWithID(ErrEstadoInvalido, apiErrors.ErrInvalidState, analiseID,
			"análise não está mais pendente")
	}
	return s.estadoInvalido(analise)
}

func extrairDadosLinha(registro spreadsheet.Linha, nome string, venda *domain.VendaDetalhada) domain.DadosLinhaEPR {
	var comissao float64
	if venda.ValorComissao != nil {
		comissao = *venda.ValorComissao
	}

	return domain.DadosLinhaEPR{
		VendaID:                   venda.ID,
		NomeEmpreendimento:        strings.TrimSpace(registro["nome_empreendimento"]),
		NumeroContrato:            strings.TrimSpace(registro["numero_contrato"]),
		NomeMutuario:              nome,
		CPFCNPJ:                   strings.TrimSpace(registro["cpf_cnpj"]),
		DataAssinatura:            strings.TrimSpace(registro["data_assinatura"]),
		ValorFinanciamento:        valorOuZero(registro["valor_financiamento"]),
		ValorFinanciamentoTerreno: valorOuZero(registro["valor_financiamento_terreno"]),
		ValorSubsidio:             valorOuZero(registro["valor_subsidio"]),
		ValorFGTS:                 valorOuZero(registro["valor_fgts"]),
		ValorRecursosProprios:     valorOuZero(registro["valor_recursos_proprios"]),
		ValorCompraVenda:          valorOuZero(registro["valor_compra_venda"]),
		ValorComissao:             comissao,
		MesReferencia:             venda.MesReferencia,
		EmpreendimentoSistema:     venda.EmpreendimentoNome,
	}
}

// valorOuZero é tolerante: célula ilegível vale zero, pois os valores da
// EPR são informativos para o relatório, não disparam decisão de negócio.
func valorOuZero(valor string) float64 {
	parsed, err := spreadsheet.ParseValor(valor)
	if err != nil {
		return 0
	}
	return parsed
}
