package importing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/recebimentos-api/infrastructure/repository/mocks"
	"github.com/vfg2006/recebimentos-api/infrastructure/spreadsheet"
	"github.com/vfg2006/recebimentos-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func linhaDeVenda(cliente, empreendimento, unidade string, dataVenda time.Time) *linhaAcompanhamento {
	linha := &linhaAcompanhamento{
		NomeCliente:        cliente,
		NomeEmpreendimento: empreendimento,
		DataVenda:          dataVenda,
	}
	if unidade != "" {
		linha.Unidade = &unidade
	}
	return linha
}

func TestPlanejarAcompanhamento_PrimeiraImportacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	clienteRepo := mocks.NewMockClienteRepository(ctrl)
	empreendimentoRepo := mocks.NewMockEmpreendimentoRepository(ctrl)
	tabelaRepo := mocks.NewMockTabelaMensalRepository(ctrl)

	service := &Service{
		vendaRepo:          vendaRepo,
		clienteRepo:        clienteRepo,
		empreendimentoRepo: empreendimentoRepo,
		tabelaRepo:         tabelaRepo,
	}

	dataVenda := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	linhas := []*linhaAcompanhamento{
		linhaDeVenda("Maria", "Residencial A", "101", dataVenda),
		// Linha repetida no arquivo: mesma chave composta, deve ser descartada.
		linhaDeVenda("Maria", "Residencial A", "101", dataVenda),
		linhaDeVenda("Pedro", "Residencial A", "", dataVenda.AddDate(0, 0, 2)),
	}

	clienteRepo.EXPECT().
		MapByNomes(gomock.Any(), []string{"Maria", "Pedro"}).
		Return(map[string]*domain.Cliente{}, nil)
	clienteRepo.EXPECT().
		BulkInsert(gomock.Any(), gomock.Len(2)).
		Return(nil)
	clienteRepo.EXPECT().
		MapByNomes(gomock.Any(), []string{"Maria", "Pedro"}).
		Return(map[string]*domain.Cliente{
			"Maria": {ID: "C1", Nome: "Maria"},
			"Pedro": {ID: "C2", Nome: "Pedro"},
		}, nil)

	empreendimentoRepo.EXPECT().
		MapByNomes(gomock.Any(), []string{"Residencial A"}).
		Return(map[string]*domain.Empreendimento{}, nil)
	empreendimentoRepo.EXPECT().
		BulkInsert(gomock.Any(), gomock.Len(1)).
		Return(nil)
	empreendimentoRepo.EXPECT().
		MapByNomes(gomock.Any(), []string{"Residencial A"}).
		Return(map[string]*domain.Empreendimento{
			"Residencial A": {ID: "E1", Nome: "Residencial A"},
		}, nil)

	tabelaRepo.EXPECT().
		GetOrCreate(gomock.Any(), "2025-03").
		Return(&domain.TabelaMensal{ID: "T1", MesReferencia: "2025-03"}, nil)

	vendaRepo.EXPECT().
		ListDetalhadas(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	plano, err := service.planejarAcompanhamento(nil, linhas, "")
	require.NoError(t, err)

	assert.Len(t, plano.Criar, 2)
	assert.Empty(t, plano.Atualizar)
	assert.Equal(t, 2, plano.ClientesCriados)
	assert.Equal(t, 1, plano.EmpreendimentosNovos)

	for _, venda := range plano.Criar {
		assert.NotEmpty(t, venda.ID)
		assert.Equal(t, domain.StatusPendente, venda.Status)
		assert.Equal(t, "T1", venda.TabelaMensalID)
	}
	assert.Equal(t, "C1", plano.Criar[0].ClienteID)
	assert.Equal(t, "C2", plano.Criar[1].ClienteID)
}

func TestPlanejarAcompanhamento_ReimportacaoIdentica(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	clienteRepo := mocks.NewMockClienteRepository(ctrl)
	empreendimentoRepo := mocks.NewMockEmpreendimentoRepository(ctrl)
	tabelaRepo := mocks.NewMockTabelaMensalRepository(ctrl)

	service := &Service{
		vendaRepo:          vendaRepo,
		clienteRepo:        clienteRepo,
		empreendimentoRepo: empreendimentoRepo,
		tabelaRepo:         tabelaRepo,
	}

	dataVenda := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	corretor := "Carlos"
	linhas := []*linhaAcompanhamento{
		linhaDeVenda("Maria", "Residencial A", "101", dataVenda),
	}
	linhas[0].Corretor = &corretor

	clienteRepo.EXPECT().
		MapByNomes(gomock.Any(), []string{"Maria"}).
		Return(map[string]*domain.Cliente{"Maria": {ID: "C1", Nome: "Maria"}}, nil)

	empreendimentoRepo.EXPECT().
		MapByNomes(gomock.Any(), []string{"Residencial A"}).
		Return(map[string]*domain.Empreendimento{"Residencial A": {ID: "E1", Nome: "Residencial A"}}, nil)

	tabelaRepo.EXPECT().
		GetOrCreate(gomock.Any(), "2025-03").
		Return(&domain.TabelaMensal{ID: "T1", MesReferencia: "2025-03"}, nil)

	unidade := "101"
	vendaRepo.EXPECT().
		ListDetalhadas(gomock.Any(), gomock.Any()).
		Return([]*domain.VendaDetalhada{
			{
				Venda: domain.Venda{
					ID:               "V1",
					ClienteID:        "C1",
					EmpreendimentoID: "E1",
					TabelaMensalID:   "T1",
					DataVenda:        dataVenda,
					Unidade:          &unidade,
					Status:           domain.StatusPendente,
				},
			},
		}, nil)

	plano, err := service.planejarAcompanhamento(nil, linhas, "")
	require.NoError(t, err)

	// A segunda passada com dados idênticos não cria nada: a chave composta
	// leva tudo para o caminho de atualização.
	assert.Empty(t, plano.Criar)
	require.Len(t, plano.Atualizar, 1)
	assert.Equal(t, 0, plano.ClientesCriados)
	assert.Equal(t, 0, plano.EmpreendimentosNovos)

	atualizacao := plano.Atualizar[0]
	assert.Equal(t, "V1", atualizacao.VendaID)
	require.NotNil(t, atualizacao.Corretor)
	assert.Equal(t, "Carlos", *atualizacao.Corretor)
}

func TestPlanejarAcompanhamento_MesReferenciaFixo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vendaRepo := mocks.NewMockVendaRepository(ctrl)
	clienteRepo := mocks.NewMockClienteRepository(ctrl)
	empreendimentoRepo := mocks.NewMockEmpreendimentoRepository(ctrl)
	tabelaRepo := mocks.NewMockTabelaMensalRepository(ctrl)

	service := &Service{
		vendaRepo:          vendaRepo,
		clienteRepo:        clienteRepo,
		empreendimentoRepo: empreendimentoRepo,
		tabelaRepo:         tabelaRepo,
	}

	// Datas de meses diferentes, mas o mês de referência informado prevalece.
	linhas := []*linhaAcompanhamento{
		linhaDeVenda("Maria", "Residencial A", "", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)),
		linhaDeVenda("Pedro", "Residencial A", "", time.Date(2025, 2, 7, 0, 0, 0, 0, time.UTC)),
	}

	clienteRepo.EXPECT().
		MapByNomes(gomock.Any(), gomock.Any()).
		Return(map[string]*domain.Cliente{
			"Maria": {ID: "C1"},
			"Pedro": {ID: "C2"},
		}, nil)

	empreendimentoRepo.EXPECT().
		MapByNomes(gomock.Any(), gomock.Any()).
		Return(map[string]*domain.Empreendimento{"Residencial A": {ID: "E1"}}, nil)

	tabelaRepo.EXPECT().
		GetOrCreate(gomock.Any(), "2025-06").
		Return(&domain.TabelaMensal{ID: "T6", MesReferencia: "2025-06"}, nil)

	vendaRepo.EXPECT().
		ListDetalhadas(gomock.Any(), gomock.Any()).
		Return(nil, nil)

	plano, err := service.planejarAcompanhamento(nil, linhas, "2025-06")
	require.NoError(t, err)

	require.Len(t, plano.Criar, 2)
	for _, venda := range plano.Criar {
		assert.Equal(t, "T6", venda.TabelaMensalID)
	}
}

func TestExtrairLinhasAcompanhamento(t *testing.T) {
	registros := []spreadsheet.Linha{
		{"nome": "Maria", "empreendimento": "Residencial A", "data": "10/03/2025", "fgts": "R$ 1.000,00", "corretor": "Zé"},
		{"nome": "nan", "empreendimento": "Residencial A", "data": "11/03/2025"},
		{"nome": "Pedro", "empreendimento": "", "data": "12/03/2025"},
		{"nome": "Ana", "empreendimento": "Residencial B", "data": "2025-03-13", "observacoes": "nan"},
	}

	linhas, err := extrairLinhasAcompanhamento(registros)
	require.NoError(t, err)

	// Linhas sem nome ou sem empreendimento são puladas, "nan" incluído.
	require.Len(t, linhas, 2)

	assert.Equal(t, "Maria", linhas[0].NomeCliente)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), linhas[0].DataVenda)
	require.NotNil(t, linhas[0].FGTS)
	assert.Equal(t, 1000.0, *linhas[0].FGTS)
	require.NotNil(t, linhas[0].Corretor)
	assert.Equal(t, "Zé", *linhas[0].Corretor)

	assert.Equal(t, "Ana", linhas[1].NomeCliente)
	assert.Nil(t, linhas[1].Observacoes)
}

func TestExtrairLinhasAcompanhamento_DataInvalida(t *testing.T) {
	registros := []spreadsheet.Linha{
		{"nome": "Maria", "empreendimento": "Residencial A", "data": "não é data"},
	}

	_, err := extrairLinhasAcompanhamento(registros)
	assert.ErrorIs(t, err, ErrLinhaInvalida)
}
