package managing

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/recebimentos-api/infrastructure/database/postgres"
	"github.com/vfg2006/recebimentos-api/infrastructure/repository/mocks"
	"github.com/vfg2006/recebimentos-api/internal/domain"
	"go.uber.org/mock/gomock"
)

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

func TestCriarVenda(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	clienteRepo := mocks.NewMockClienteRepository(ctrl)
	tabelaRepo := mocks.NewMockTabelaMensalRepository(ctrl)
	service := &Service{conn: fakeConn{}, vendaRepo: vendaRepo, clienteRepo: clienteRepo, tabelaRepo: tabelaRepo}

	clienteRepo.EXPECT().GetByID("C1").Return(&domain.Cliente{ID: "C1", Nome: "Maria"}, nil)

	// Tabela derivada do mês da data da venda quando não informada
	tabelaRepo.EXPECT().
		GetOrCreate(gomock.Any(), "2025-11").
		Return(&domain.TabelaMensal{ID: "T1", MesReferencia: "2025-11"}, nil)

	vendaRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(q postgres.Queryer, venda *domain.Venda) error {
			assert.NotEmpty(t, venda.ID)
			assert.Equal(t, domain.StatusPendente, venda.Status)
			assert.Equal(t, "T1", venda.TabelaMensalID)
			assert.Nil(t, venda.DataFaturamento)
			return nil
		})

	venda, err := service.CriarVenda(context.Background(), &domain.Venda{
		ClienteID:        "C1",
		EmpreendimentoID: "E1",
		DataVenda:        time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "T1", venda.TabelaMensalID)
}

// A criação da tabela mensal e a inserção da venda precisam compartilhar a
// mesma transação: fora dela o INSERT não enxerga a tabela recém-criada e a
// chave estrangeira rejeita a primeira venda de um mês novo.
func TestCriarVenda_InsereNaMesmaTransacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	clienteRepo := mocks.NewMockClienteRepository(ctrl)
	tabelaRepo := mocks.NewMockTabelaMensalRepository(ctrl)
	service := &Service{conn: fakeConn{}, vendaRepo: vendaRepo, clienteRepo: clienteRepo, tabelaRepo: tabelaRepo}

	clienteRepo.EXPECT().GetByID("C1").Return(&domain.Cliente{ID: "C1", Nome: "Maria"}, nil)

	var qTabela, qVenda postgres.Queryer

	tabelaRepo.EXPECT().
		GetOrCreate(gomock.Any(), "2025-11").
		DoAndReturn(func(q postgres.Queryer, mes string) (*domain.TabelaMensal, error) {
			qTabela = q
			return &domain.TabelaMensal{ID: "T1", MesReferencia: "2025-11"}, nil
		})

	vendaRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(q postgres.Queryer, venda *domain.Venda) error {
			qVenda = q
			return nil
		})

	_, err := service.CriarVenda(context.Background(), &domain.Venda{
		ClienteID:        "C1",
		EmpreendimentoID: "E1",
		DataVenda:        time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, qTabela, qVenda, "a venda deve ser inserida na transação da tabela mensal")
	assert.NotEqual(t, postgres.Queryer(fakeConn{}), qVenda, "a venda não deve usar a conexão do pool")
}

func TestCriarVenda_ClienteInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	clienteRepo := mocks.NewMockClienteRepository(ctrl)
	service := &Service{conn: fakeConn{}, clienteRepo: clienteRepo}

	clienteRepo.EXPECT().GetByID("C9").Return(nil, nil)

	_, err := service.CriarVenda(context.Background(), &domain.Venda{
		ClienteID:        "C9",
		EmpreendimentoID: "E1",
		DataVenda:        time.Now(),
	})
	assert.ErrorIs(t, err, ErrClienteNaoEncontrado)
}

func TestCriarVenda_DadosObrigatorios(t *testing.T) {
	service := &Service{conn: fakeConn{}}

	_, err := service.CriarVenda(context.Background(), &domain.Venda{ClienteID: "C1"})
	assert.ErrorIs(t, err, ErrDadosObrigatorios)
}

func TestRemoverVenda_NaoEncontrada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	service := &Service{conn: fakeConn{}, vendaRepo: vendaRepo}

	vendaRepo.EXPECT().Delete("V9").Return(false, nil)

	err := service.RemoverVenda("V9")
	assert.ErrorIs(t, err, ErrVendaNaoEncontrada)
}

func TestVendasDaTabela(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	tabelaRepo := mocks.NewMockTabelaMensalRepository(ctrl)
	service := &Service{conn: fakeConn{}, vendaRepo: vendaRepo, tabelaRepo: tabelaRepo}

	tabelaRepo.EXPECT().
		GetByID("T1").
		Return(&domain.TabelaMensal{ID: "T1", MesReferencia: "2025-11"}, nil)

	vendaRepo.EXPECT().
		ListDetalhadas(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ postgres.Queryer, filtro domain.FiltroVendas) ([]*domain.VendaDetalhada, error) {
			require.NotNil(t, filtro.TabelaMensalID)
			assert.Equal(t, "T1", *filtro.TabelaMensalID)
			return []*domain.VendaDetalhada{{Venda: domain.Venda{ID: "V1"}}}, nil
		})

	vendas, err := service.VendasDaTabela("T1")
	require.NoError(t, err)
	require.Len(t, vendas, 1)
}

func TestVendasDaTabela_TabelaInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tabelaRepo := mocks.NewMockTabelaMensalRepository(ctrl)
	service := &Service{conn: fakeConn{}, tabelaRepo: tabelaRepo}

	tabelaRepo.EXPECT().GetByID("T9").Return(nil, nil)

	_, err := service.VendasDaTabela("T9")
	assert.ErrorIs(t, err, ErrTabelaNaoEncontrada)
}
