package analyzing

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/recebimentos-api/infrastructure/database/postgres"
	"github.com/vfg2006/recebimentos-api/infrastructure/repository/mocks"
	"github.com/vfg2006/recebimentos-api/internal/domain"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

// fakeConn executa o corpo da transação diretamente, sem banco.
type fakeConn struct{}

func (fakeConn) Exec(query string, args ...interface{}) (sql.Result, error) { return nil, nil }
func (fakeConn) Query(query string, args ...interface{}) (*sql.Rows, error) { return nil, nil }
func (fakeConn) QueryRow(query string, args ...interface{}) *sql.Row        { return nil }
func (fakeConn) Begin(ctx context.Context) (*sql.Tx, error)                 { return nil, nil }
func (fakeConn) Close() error                                               { return nil }
func (fakeConn) Ping(ctx context.Context) error                             { return nil }

func (fakeConn) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return fn(nil)
}

func (fakeConn) RunInSerializableTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	return fn(nil)
}

var _ postgres.Conn = fakeConn{}

// A EPR chega em .xls, mas o leitor recai em xlsx quando o formato antigo
// não abre, então os testes usam xlsx direto.
func planilhaEPR(t *testing.T, linhas [][]interface{}) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	for i, linha := range linhas {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &linha))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	return bytes.NewReader(buf.Bytes())
}

func vendaFinanciada(id, cliente, mes string, comissao float64) *domain.VendaDetalhada {
	return &domain.VendaDetalhada{
		Venda: domain.Venda{
			ID:            id,
			Status:        domain.StatusPendente,
			ValorComissao: &comissao,
		},
		ClienteNome:        cliente,
		EmpreendimentoNome: "Residencial Sistema",
		MesReferencia:      mes,
	}
}

func TestAnalisar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	analiseRepo := mocks.NewMockAnaliseEPRRepository(ctrl)
	service := &Service{conn: fakeConn{}, vendaRepo: vendaRepo, analiseRepo: analiseRepo}

	vendaRepo.EXPECT().
		ListDetalhadas(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ postgres.Queryer, filtro domain.FiltroVendas) ([]*domain.VendaDetalhada, error) {
			require.NotNil(t, filtro.FormaPagamento)
			require.NotNil(t, filtro.Status)
			assert.Equal(t, domain.PagamentoFinanciado, *filtro.FormaPagamento)
			assert.Equal(t, domain.StatusPendente, *filtro.Status)

			return []*domain.VendaDetalhada{
				vendaFinanciada("V1", "Maria José Silva", "2025-11", 195.0),
				vendaFinanciada("V2", "João Pereira", "2025-12", 80.5),
			}, nil
		})

	var criada *domain.AnaliseEPR
	analiseRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ postgres.Queryer, analise *domain.AnaliseEPR) error {
			criada = analise
			return nil
		})

	file := planilhaEPR(t, [][]interface{}{
		{"Nome Empreendimento", "Número Contrato", "Nome Mutuário", "CPF/CNPJ Mutuário", "Data de Assinatura", "Valor de Financiamento", "Valor do FGTS"},
		{"Residencial EPR", "123456", "MARIA JOSE SILVA", "111.222.333-44", "10/11/2025", "R$ 100.000,00", "R$ 5.000,00"},
		{"Residencial EPR", "654321", "Fulano Sem Venda", "555.666.777-88", "12/11/2025", "90000", "0"},
		{"Residencial EPR", "777777", "joão pereira", "999.888.777-66", "01/12/2025", "80.000,00", ""},
	})

	resultado, err := service.Analisar(context.Background(), file)
	require.NoError(t, err)

	assert.Equal(t, 3, resultado.TotalLinhas)
	assert.Equal(t, 2, resultado.VendasEncontradas)
	assert.NotEmpty(t, resultado.AnaliseID)
	assert.Equal(t, map[string]int{"2025-11": 1, "2025-12": 1}, resultado.ResumoPorMes)

	require.Len(t, resultado.DetalhesPorMes["2025-11"], 1)
	previa := resultado.DetalhesPorMes["2025-11"][0]
	assert.Equal(t, "V1", previa.VendaID)
	assert.Equal(t, "MARIA JOSE SILVA", previa.Cliente)
	assert.Equal(t, 195.0, previa.ValorComissao)

	require.NotNil(t, criada)
	assert.Equal(t, domain.AnalisePendente, criada.Status)
	assert.Equal(t, []string{"V1", "V2"}, criada.VendasIDs)
	assert.Equal(t, 2, criada.TotalEncontradas)

	require.Len(t, criada.DadosEPR, 2)
	linha := criada.DadosEPR[0]
	assert.Equal(t, "V1", linha.VendaID)
	assert.Equal(t, "Residencial EPR", linha.NomeEmpreendimento)
	assert.Equal(t, "123456", linha.NumeroContrato)
	assert.Equal(t, 100000.0, linha.ValorFinanciamento)
	assert.Equal(t, 5000.0, linha.ValorFGTS)
	assert.Equal(t, 195.0, linha.ValorComissao)
	assert.Equal(t, "2025-11", linha.MesReferencia)
	assert.Equal(t, "Residencial Sistema", linha.EmpreendimentoSistema)
}

func TestAnalisar_SemCorrespondencia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	analiseRepo := mocks.NewMockAnaliseEPRRepository(ctrl)
	service := &Service{conn: fakeConn{}, vendaRepo: vendaRepo, analiseRepo: analiseRepo}

	vendaRepo.EXPECT().
		ListDetalhadas(gomock.Any(), gomock.Any()).
		Return([]*domain.VendaDetalhada{
			vendaFinanciada("V1", "Maria José Silva", "2025-11", 195.0),
		}, nil)

	// Nenhum Create esperado: sem correspondência não se cria registro.
	file := planilhaEPR(t, [][]interface{}{
		{"Nome Mutuário"},
		{"Fulano Desconhecido"},
	})

	resultado, err := service.Analisar(context.Background(), file)
	require.NoError(t, err)

	assert.Empty(t, resultado.AnaliseID)
	assert.Equal(t, 1, resultado.TotalLinhas)
	assert.Equal(t, 0, resultado.VendasEncontradas)
	assert.Equal(t, "Nenhuma venda pendente encontrada na planilha EPR", resultado.Mensagem)
}

func TestConfirmar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	analiseRepo := mocks.NewMockAnaliseEPRRepository(ctrl)
	service := &Service{conn: fakeConn{}, vendaRepo: vendaRepo, analiseRepo: analiseRepo}

	analiseRepo.EXPECT().
		GetByID("AN1").
		Return(&domain.AnaliseEPR{
			ID:               "AN1",
			Status:           domain.AnalisePendente,
			VendasIDs:        []string{"V1", "V2", "V3"},
			TotalEncontradas: 3,
		}, nil)

	analiseRepo.EXPECT().
		MarcarConfirmada(gomock.Any(), "AN1", gomock.Any()).
		Return(true, nil)

	// Uma das vendas deixou de estar pendente entre a análise e a
	// confirmação: a contagem encolhe sem virar erro.
	vendaRepo.EXPECT().
		FaturarPendentes(gomock.Any(), []string{"V1", "V2", "V3"}, gomock.Any()).
		Return(int64(2), nil)

	confirmacao, err := service.Confirmar(context.Background(), "AN1")
	require.NoError(t, err)

	assert.Equal(t, "AN1", confirmacao.AnaliseID)
	assert.Equal(t, int64(2), confirmacao.VendasFaturadas)
	assert.WithinDuration(t, time.Now(), confirmacao.ConfirmadoEm, time.Minute)
}

func TestConfirmar_NaoEncontrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analiseRepo := mocks.NewMockAnaliseEPRRepository(ctrl)
	service := &Service{conn: fakeConn{}, analiseRepo: analiseRepo}

	analiseRepo.EXPECT().GetByID("AN9").Return(nil, nil)

	_, err := service.Confirmar(context.Background(), "AN9")
	assert.ErrorIs(t, err, ErrAnaliseNaoEncontrada)
}

func TestConfirmar_JaCancelada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analiseRepo := mocks.NewMockAnaliseEPRRepository(ctrl)
	service := &Service{conn: fakeConn{}, analiseRepo: analiseRepo}

	analiseRepo.EXPECT().
		GetByID("AN1").
		Return(&domain.AnaliseEPR{ID: "AN1", Status: domain.AnaliseCancelada}, nil)

	_, err := service.Confirmar(context.Background(), "AN1")
	require.ErrorIs(t, err, ErrEstadoInvalido)
	assert.Contains(t, err.Error(), "cancelada")
}

func TestConfirmar_CorridaPerdida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	analiseRepo := mocks.NewMockAnaliseEPRRepository(ctrl)
	service := &Service{conn: fakeConn{}, vendaRepo: vendaRepo, analiseRepo: analiseRepo}

	analiseRepo.EXPECT().
		GetByID("AN1").
		Return(&domain.AnaliseEPR{ID: "AN1", Status: domain.AnalisePendente, VendasIDs: []string{"V1"}}, nil)

	// A transição condicional não encontrou mais a análise pendente.
	analiseRepo.EXPECT().
		MarcarConfirmada(gomock.Any(), "AN1", gomock.Any()).
		Return(false, nil)

	analiseRepo.EXPECT().
		GetByID("AN1").
		Return(&domain.AnaliseEPR{ID: "AN1", Status: domain.AnaliseConfirmada}, nil)

	_, err := service.Confirmar(context.Background(), "AN1")
	require.ErrorIs(t, err, ErrEstadoInvalido)
	assert.Contains(t, err.Error(), "confirmada")
}

func TestCancelar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	analiseRepo := mocks.NewMockAnaliseEPRRepository(ctrl)
	service := &Service{conn: fakeConn{}, vendaRepo: vendaRepo, analiseRepo: analiseRepo}

	analiseRepo.EXPECT().
		GetByID("AN1").
		Return(&domain.AnaliseEPR{ID: "AN1", Status: domain.AnalisePendente, VendasIDs: []string{"V1"}}, nil)

	// Nenhuma chamada ao repositório de vendas: cancelar nunca toca vendas.
	analiseRepo.EXPECT().
		MarcarCancelada(gomock.Any(), "AN1").
		Return(true, nil)

	err := service.Cancelar(context.Background(), "AN1")
	assert.NoError(t, err)
}

func analiseConfirmada() *domain.AnaliseEPR {
	confirmadoEm := time.Now()
	return &domain.AnaliseEPR{
		ID:     "AN1",
		Status: domain.AnaliseConfirmada,
		DadosEPR: []domain.DadosLinhaEPR{
			{VendaID: "V1", NomeMutuario: "Maria", MesReferencia: "2025-11", ValorComissao: 195.0},
			{VendaID: "V2", NomeMutuario: "João", MesReferencia: "2025-12", ValorComissao: 80.5},
		},
		TotalEncontradas: 2,
		ConfirmadoEm:     &confirmadoEm,
	}
}

func TestExportar_AntesDeConfirmar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analiseRepo := mocks.NewMockAnaliseEPRRepository(ctrl)
	service := &Service{conn: fakeConn{}, analiseRepo: analiseRepo}

	analiseRepo.EXPECT().
		GetByID("AN1").
		Return(&domain.AnaliseEPR{ID: "AN1", Status: domain.AnalisePendente}, nil)

	_, _, err := service.Exportar(context.Background(), "AN1", "")
	assert.ErrorIs(t, err, ErrEstadoInvalido)
}

func TestExportar_FiltroPorMes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analiseRepo := mocks.NewMockAnaliseEPRRepository(ctrl)
	service := &Service{conn: fakeConn{}, analiseRepo: analiseRepo}

	analiseRepo.EXPECT().GetByID("AN1").Return(analiseConfirmada(), nil)

	planilha, nomeArquivo, err := service.Exportar(context.Background(), "AN1", "2025-11")
	require.NoError(t, err)

	assert.Equal(t, "2025.11 - Planilha Recebimentos.xlsx", nomeArquivo)

	f, err := excelize.OpenReader(bytes.NewReader(planilha))
	require.NoError(t, err)
	defer f.Close()

	linhas, err := f.GetRows("Recebimentos")
	require.NoError(t, err)

	// Cabeçalho mais a única linha de novembro.
	require.Len(t, linhas, 2)
	assert.Equal(t, "Maria", linhas[1][2])
}

func TestExportar_SemFiltro(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analiseRepo := mocks.NewMockAnaliseEPRRepository(ctrl)
	service := &Service{conn: fakeConn{}, analiseRepo: analiseRepo}

	analiseRepo.EXPECT().GetByID("AN1").Return(analiseConfirmada(), nil)

	planilha, nomeArquivo, err := service.Exportar(context.Background(), "AN1", "")
	require.NoError(t, err)

	assert.Equal(t, "Analise_AN1 - Planilha Recebimentos.xlsx", nomeArquivo)
	assert.NotEmpty(t, planilha)
}

func TestExportar_SemDados(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analiseRepo := mocks.NewMockAnaliseEPRRepository(ctrl)
	service := &Service{conn: fakeConn{}, analiseRepo: analiseRepo}

	analiseRepo.EXPECT().GetByID("AN1").Return(analiseConfirmada(), nil)

	_, _, err := service.Exportar(context.Background(), "AN1", "2024-01")
	assert.ErrorIs(t, err, ErrSemDados)
}

func TestDetalhar_NaoEncontrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analiseRepo := mocks.NewMockAnaliseEPRRepository(ctrl)
	service := &Service{conn: fakeConn{}, analiseRepo: analiseRepo}

	analiseRepo.EXPECT().GetByID("AN9").Return(nil, nil)

	_, err := service.Detalhar("AN9")
	assert.ErrorIs(t, err, ErrAnaliseNaoEncontrada)
}
