package importing

import (
	"bytes"
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/recebimentos-api/infrastructure/database/postgres"
	"github.com/vfg2006/recebimentos-api/infrastructure/repository/mocks"
	"github.com/vfg2006/recebimentos-api/internal/domain"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

// fakeConn executa o corpo da transação diretamente, sem banco. Os
// repositórios por trás dela são mocks, então o Queryer nunca é usado.
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

func planilhaDeTeste(t *testing.T, linhas [][]interface{}) *bytes.Reader {
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

func vendaDetalhada(id, cliente string) *domain.VendaDetalhada {
	return &domain.VendaDetalhada{
		Venda:       domain.Venda{ID: id, Status: domain.StatusPendente},
		ClienteNome: cliente,
	}
}

func TestImportarGestao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	service := &Service{conn: fakeConn{}, vendaRepo: vendaRepo}

	vendas := []*domain.VendaDetalhada{
		vendaDetalhada("V1", "Maria José Silva"),
		vendaDetalhada("V2", "João Pereira"),
	}

	vendaRepo.EXPECT().
		ListDetalhadas(gomock.Any(), gomock.Any()).
		Return(vendas, nil)

	var aplicadas []*domain.AtualizacaoPagamento
	vendaRepo.EXPECT().
		BulkUpdatePagamento(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ postgres.Queryer, atualizacoes []*domain.AtualizacaoPagamento) error {
			aplicadas = atualizacoes
			return nil
		})

	file := planilhaDeTeste(t, [][]interface{}{
		{"Cliente", "Forma de Pagamento", "Valor"},
		{"maria jose silva", "Financiado", "R$ 100.000,00"},
		{"JOÃO PEREIRA", "PIX", ""},
		{"Desconhecido", "Quitado", "10"},
	})

	resultado, err := service.ImportarGestao(context.Background(), file)
	require.NoError(t, err)

	assert.Equal(t, 2, resultado.Atualizadas)
	assert.Equal(t, 1, resultado.TotalNaoEncontrados)
	assert.Equal(t, []string{"Desconhecido"}, resultado.NaoEncontrados)

	require.Len(t, aplicadas, 2)

	assert.Equal(t, "V1", aplicadas[0].VendaID)
	assert.Equal(t, domain.PagamentoFinanciado, aplicadas[0].FormaPagamento)
	require.NotNil(t, aplicadas[0].ValorVenda)
	assert.Equal(t, 100000.0, *aplicadas[0].ValorVenda)
	require.NotNil(t, aplicadas[0].ValorComissao)
	assert.Equal(t, 195.0, *aplicadas[0].ValorComissao)

	assert.Equal(t, "V2", aplicadas[1].VendaID)
	assert.Equal(t, domain.PagamentoAVista, aplicadas[1].FormaPagamento)
	assert.Nil(t, aplicadas[1].ValorVenda)
	assert.Nil(t, aplicadas[1].ValorComissao)
}

// Uma linha que casa com uma venda mas traz uma forma de pagamento fora do
// vocabulário não pode sumir do resultado: entra no relatório de não
// processados para que Atualizadas + TotalNaoEncontrados feche a conta.
func TestImportarGestao_FormaNaoReconhecida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	service := &Service{conn: fakeConn{}, vendaRepo: vendaRepo}

	vendaRepo.EXPECT().
		ListDetalhadas(gomock.Any(), gomock.Any()).
		Return([]*domain.VendaDetalhada{vendaDetalhada("V1", "Ana Costa")}, nil)

	vendaRepo.EXPECT().
		BulkUpdatePagamento(gomock.Any(), gomock.Len(0)).
		Return(nil)

	file := planilhaDeTeste(t, [][]interface{}{
		{"Nome", "Pagamento", "Valor"},
		{"Ana Costa", "Permuta", "50"},
	})

	resultado, err := service.ImportarGestao(context.Background(), file)
	require.NoError(t, err)

	assert.Equal(t, 0, resultado.Atualizadas)
	assert.Equal(t, 1, resultado.TotalNaoEncontrados)
	assert.Equal(t, []string{"Ana Costa (forma de pagamento não reconhecida: Permuta)"}, resultado.NaoEncontrados)
}

func TestImportarGestao_UltimaLinhaPrevalece(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	service := &Service{conn: fakeConn{}, vendaRepo: vendaRepo}

	vendaRepo.EXPECT().
		ListDetalhadas(gomock.Any(), gomock.Any()).
		Return([]*domain.VendaDetalhada{vendaDetalhada("V1", "Ana Costa")}, nil)

	var aplicadas []*domain.AtualizacaoPagamento
	vendaRepo.EXPECT().
		BulkUpdatePagamento(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ postgres.Queryer, atualizacoes []*domain.AtualizacaoPagamento) error {
			aplicadas = atualizacoes
			return nil
		})

	file := planilhaDeTeste(t, [][]interface{}{
		{"Nome", "Pagamento", "Valor"},
		{"Ana Costa", "PIX", "50"},
		{"Ana Costa", "Financiado", "80"},
	})

	resultado, err := service.ImportarGestao(context.Background(), file)
	require.NoError(t, err)

	assert.Equal(t, 1, resultado.Atualizadas)
	require.Len(t, aplicadas, 1)
	assert.Equal(t, domain.PagamentoFinanciado, aplicadas[0].FormaPagamento)
	assert.Equal(t, 80.0, *aplicadas[0].ValorVenda)
}

func TestImportarSienge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	service := &Service{conn: fakeConn{}, vendaRepo: vendaRepo}

	vendaRepo.EXPECT().
		ListDetalhadas(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ postgres.Queryer, filtro domain.FiltroVendas) ([]*domain.VendaDetalhada, error) {
			require.NotNil(t, filtro.FormaPagamento)
			require.NotNil(t, filtro.Status)
			assert.Equal(t, domain.PagamentoAVista, *filtro.FormaPagamento)
			assert.Equal(t, domain.StatusPendente, *filtro.Status)

			return []*domain.VendaDetalhada{
				vendaDetalhada("V1", "Ana Costa"),
				vendaDetalhada("V2", "Bruno Dias"),
			}, nil
		})

	vendaRepo.EXPECT().
		FaturarPendentes(gomock.Any(), []string{"V1"}, gomock.Any()).
		Return(int64(1), nil)

	file := planilhaDeTeste(t, [][]interface{}{
		{"Nome do Cliente"},
		{"ANA COSTA"},
		{"ana costa"},
		{"Carlos Souza"},
	})

	resultado, err := service.ImportarSienge(context.Background(), file)
	require.NoError(t, err)

	assert.Equal(t, 1, resultado.Atualizadas)
	assert.Equal(t, 1, resultado.TotalNaoEncontrados)
	assert.Equal(t, []string{"Carlos Souza"}, resultado.NaoEncontrados)
}

func TestImportarSemArquivo(t *testing.T) {
	service := &Service{conn: fakeConn{}}

	_, err := service.ImportarAcompanhamento(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrArquivoObrigatorio)

	_, err = service.ImportarGestao(context.Background(), nil)
	assert.ErrorIs(t, err, ErrArquivoObrigatorio)

	_, err = service.ImportarSienge(context.Background(), nil)
	assert.ErrorIs(t, err, ErrArquivoObrigatorio)
}

func TestImportarAcompanhamento_MesInvalido(t *testing.T) {
	service := &Service{conn: fakeConn{}}

	file := planilhaDeTeste(t, [][]interface{}{{"Data", "Nome", "Empreendimento"}})

	_, err := service.ImportarAcompanhamento(context.Background(), file, "2025-13")
	assert.ErrorIs(t, err, ErrMesReferenciaInvalido)
}

func TestMapearFormaPagamento(t *testing.T) {
	tests := []struct {
		valor    string
		esperado domain.FormaPagamento
		ok       bool
	}{
		{"Financiado", domain.PagamentoFinanciado, true},
		{"FINANCIAMENTO CAIXA", domain.PagamentoFinanciado, true},
		{"PIX", domain.PagamentoAVista, true},
		{"Cartão de crédito", domain.PagamentoAVista, true},
		{"À Vista", domain.PagamentoAVista, true},
		{"Quitado", domain.PagamentoDesconto, true},
		{"Desconto em folha", domain.PagamentoDesconto, true},
		{"Permuta", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.valor, func(t *testing.T) {
			forma, ok := mapearFormaPagamento(tt.valor)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.esperado, forma)
		})
	}
}
