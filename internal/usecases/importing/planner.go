package importing

import (
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/recebimentos-api/infrastructure/database/postgres"
	"github.com/vfg2006/recebimentos-api/infrastructure/spreadsheet"
	"github.com/vfg2006/recebimentos-api/internal/domain"
	"github.com/vfg2006/recebimentos-api/pkg/apiErrors"
)

// linhaAcompanhamento é uma linha da planilha de acompanhamento já extraída
// e validada, pronta para o planejamento das escritas.
type linhaAcompanhamento struct {
	NomeCliente        string
	NomeEmpreendimento string
	DataVenda          time.Time
	Corretor           *string
	Imobiliaria        *string
	Unidade            *string
	Etapa              *string
	FGTS               *float64
	Observacoes        *string
}

// planoAcompanhamento é o resultado do planejamento: as vendas a criar, as
// atualizações a aplicar e os contadores de entidades criadas de forma
// preguiçosa. O plano inteiro é executado dentro de uma única transação.
type planoAcompanhamento struct {
	Criar                []*domain.Venda
	Atualizar            []*domain.AtualizacaoAcompanhamento
	ClientesCriados      int
	EmpreendimentosNovos int
}

func extrairLinhasAcompanhamento(registros []spreadsheet.Linha) ([]*linhaAcompanhamento, error) {
	linhas := make([]*linhaAcompanhamento, 0, len(registros))

	for i, registro := range registros {
		nomeCliente := strings.TrimSpace(registro["nome"])
		if spreadsheet.CampoVazio(nomeCliente) {
			continue
		}

		nomeEmpreendimento := strings.TrimSpace(registro["empreendimento"])
		if spreadsheet.CampoVazio(nomeEmpreendimento) {
			continue
		}

		dataVenda, err := spreadsheet.ParseData(registro["data"])
		if err != nil {
			return nil, NewImportError(ErrLinhaInvalida, apiErrors.ErrImportFailed,
				fmt.Sprintf("linha %d: data inválida %q", i+1, registro["data"]))
		}

		linha := &linhaAcompanhamento{
			NomeCliente:        nomeCliente,
			NomeEmpreendimento: nomeEmpreendimento,
			DataVenda:          dataVenda,
			Corretor:           campoTexto(registro["corretor"]),
			Imobiliaria:        campoTexto(registro["imobiliaria"]),
			Unidade:            campoTexto(registro["unidade"]),
			Etapa:              campoTexto(registro["etapa"]),
			Observacoes:        campoTexto(registro["observacoes"]),
		}

		if fgtsBruto := registro["fgts"]; !spreadsheet.CampoVazio(fgtsBruto) {
			fgts, err := spreadsheet.ParseValor(fgtsBruto)
			if err != nil {
				return nil, NewImportError(ErrLinhaInvalida, apiErrors.ErrImportFailed,
					fmt.Sprintf("linha %d: valor de FGTS inválido %q", i+1, fgtsBruto))
			}
			linha.FGTS = &fgts
		}

		linhas = append(linhas, linha)
	}

	return linhas, nil
}

// planejarAcompanhamento decide o destino de cada linha. O matching de
// cliente e empreendimento usa o nome exato sem normalização, pois esta
// planilha é a fonte de verdade para esses nomes; entidades ausentes são
// criadas em lote antes da classificação. A chave composta (cliente,
// empreendimento, unidade, data) contra o banco define criar ou atualizar,
// e linhas repetidas no próprio arquivo são descartadas pela mesma chave.
func (s *Service) planejarAcompanhamento(tx postgres.Queryer, linhas []*linhaAcompanhamento, mesReferencia string) (*planoAcompanhamento, error) {
	plano := &planoAcompanhamento{
		Criar:     make([]*domain.Venda, 0),
		Atualizar: make([]*domain.AtualizacaoAcompanhamento, 0),
	}

	clientes, clientesCriados, err := s.resolverClientes(tx, linhas)
	if err != nil {
		return nil, err
	}
	plano.ClientesCriados = clientesCriados

	empreendimentos, empreendimentosNovos, err := s.resolverEmpreendimentos(tx, linhas)
	if err != nil {
		return nil, err
	}
	plano.EmpreendimentosNovos = empreendimentosNovos

	tabelas, err := s.resolverTabelas(tx, linhas, mesReferencia)
	if err != nil {
		return nil, err
	}

	existentes, err := s.vendasExistentes(tx, tabelas)
	if err != nil {
		return nil, err
	}

	vistas := make(map[string]struct{})

	for _, linha := range linhas {
		cliente := clientes[linha.NomeCliente]
		empreendimento := empreendimentos[linha.NomeEmpreendimento]
		tabela := tabelas[mesDaLinha(linha, mesReferencia)]

		chave := chaveVenda(cliente.ID, empreendimento.ID, linha.Unidade, linha.DataVenda)
		if _, vista := vistas[chave]; vista {
			continue
		}
		vistas[chave] = struct{}{}

		if vendaID, existe := existentes[chave]; existe {
			plano.Atualizar = append(plano.Atualizar, &domain.AtualizacaoAcompanhamento{
				VendaID:     vendaID,
				Corretor:    linha.Corretor,
				Imobiliaria: linha.Imobiliaria,
				Etapa:       linha.Etapa,
				FGTS:        linha.FGTS,
				Observacoes: linha.Observacoes,
			})
			continue
		}

		vendaID, err := domain.NovoID()
		if err != nil {
			return nil, NewImportError(ErrGenerateID, apiErrors.ErrInternalServer, "venda")
		}

		plano.Criar = append(plano.Criar, &domain.Venda{
			ID:               vendaID,
			ClienteID:        cliente.ID,
			EmpreendimentoID: empreendimento.ID,
			TabelaMensalID:   tabela.ID,
			DataVenda:        linha.DataVenda,
			Status:           domain.StatusPendente,
			FGTS:             linha.FGTS,
			Corretor:         linha.Corretor,
			Imobiliaria:      linha.Imobiliaria,
			Unidade:          linha.Unidade,
			Etapa:            linha.Etapa,
			Observacoes:      linha.Observacoes,
		})
	}

	return plano, nil
}

func (s *Service) resolverClientes(tx postgres.Queryer, linhas []*linhaAcompanhamento) (map[string]*domain.Cliente, int, error) {
	nomes := nomesUnicos(linhas, func(l *linhaAcompanhamento) string { return l.NomeCliente })

	existentes, err := s.clienteRepo.MapByNomes(tx, nomes)
	if err != nil {
		return nil, 0, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	novos := make([]*domain.Cliente, 0)
	for _, nome := range nomes {
		if _, existe := existentes[nome]; existe {
			continue
		}

		clienteID, err := domain.NovoID()
		if err != nil {
			return nil, 0, NewImportError(ErrGenerateID, apiErrors.ErrInternalServer, "cliente")
		}

		novos = append(novos, &domain.Cliente{ID: clienteID, Nome: nome})
	}

	if len(novos) > 0 {
		if err := s.clienteRepo.BulkInsert(tx, novos); err != nil {
			return nil, 0, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		// Recarrega para resolver os IDs definitivos, inclusive de registros
		// que outra importação concorrente possa ter criado antes.
		existentes, err = s.clienteRepo.MapByNomes(tx, nomes)
		if err != nil {
			return nil, 0, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}
	}

	return existentes, len(novos), nil
}

func (s *Service) resolverEmpreendimentos(tx postgres.Queryer, linhas []*linhaAcompanhamento) (map[string]*domain.Empreendimento, int, error) {
	nomes := nomesUnicos(linhas, func(l *linhaAcompanhamento) string { return l.NomeEmpreendimento })

	existentes, err := s.empreendimentoRepo.MapByNomes(tx, nomes)
	if err != nil {
		return nil, 0, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	novos := make([]*domain.Empreendimento, 0)
	for _, nome := range nomes {
		if _, existe := existentes[nome]; existe {
			continue
		}

		empreendimentoID, err := domain.NovoID()
		if err != nil {
			return nil, 0, NewImportError(ErrGenerateID, apiErrors.ErrInternalServer, "empreendimento")
		}

		novos = append(novos, &domain.Empreendimento{ID: empreendimentoID, Nome: nome})
	}

	if len(novos) > 0 {
		if err := s.empreendimentoRepo.BulkInsert(tx, novos); err != nil {
			return nil, 0, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		existentes, err = s.empreendimentoRepo.MapByNomes(tx, nomes)
		if err != nil {
			return nil, 0, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}
	}

	return existentes, len(novos), nil
}

func (s *Service) resolverTabelas(tx postgres.Queryer, linhas []*linhaAcompanhamento, mesReferencia string) (map[string]*domain.TabelaMensal, error) {
	tabelas := make(map[string]*domain.TabelaMensal)

	for _, linha := range linhas {
		mes := mesDaLinha(linha, mesReferencia)
		if _, existe := tabelas[mes]; existe {
			continue
		}

		tabela, err := s.tabelaRepo.GetOrCreate(tx, mes)
		if err != nil {
			return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		tabelas[mes] = tabela
	}

	return tabelas, nil
}

func (s *Service) vendasExistentes(tx postgres.Queryer, tabelas map[string]*domain.TabelaMensal) (map[string]string, error) {
	existentes := make(map[string]string)

	for _, tabela := range tabelas {
		tabelaID := tabela.ID
		vendas, err := s.vendaRepo.ListDetalhadas(tx, domain.FiltroVendas{TabelaMensalID: &tabelaID})
		if err != nil {
			return nil, NewImportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		for _, venda := range vendas {
			existentes[chaveVenda(venda.ClienteID, venda.EmpreendimentoID, venda.Unidade, venda.DataVenda)] = venda.ID
		}
	}

	return existentes, nil
}

func mesDaLinha(linha *linhaAcompanhamento, mesReferencia string) string {
	if mesReferencia != "" {
		return mesReferencia
	}
	return linha.DataVenda.Format("2006-01")
}

func chaveVenda(clienteID, empreendimentoID string, unidade *string, dataVenda time.Time) string {
	u := ""
	if unidade != nil {
		u = *unidade
	}
	return fmt.Sprintf("%s|%s|%s|%s", clienteID, empreendimentoID, u, dataVenda.Format("2006-01-02"))
}

func nomesUnicos(linhas []*linhaAcompanhamento, nomeDe func(*linhaAcompanhamento) string) []string {
	vistos := make(map[string]struct{}, len(linhas))
	nomes := make([]string, 0, len(linhas))

	for _, linha := range linhas {
		nome := nomeDe(linha)
		if _, visto := vistos[nome]; visto {
			continue
		}
		vistos[nome] = struct{}{}
		nomes = append(nomes, nome)
	}

	return nomes
}

func campoTexto(valor string) *string {
	valor = strings.TrimSpace(valor)
	if spreadsheet.CampoVazio(valor) {
		return nil
	}
	return &valor
}
