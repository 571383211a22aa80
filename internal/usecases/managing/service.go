package managing

import (
	"context"
	"database/sql"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/recebimentos-api/infrastructure/database/postgres"
	"github.com/vfg2006/recebimentos-api/infrastructure/repository"
	"github.com/vfg2006/recebimentos-api/internal/domain"
	"github.com/vfg2006/recebimentos-api/pkg/apiErrors"
)

// ManagementService cobre as operações diretas sobre vendas e tabelas
// mensais, disparadas por ação explícita do usuário. As importações nunca
// passam por aqui.
type ManagementService interface {
	CriarVenda(ctx context.Context, venda *domain.Venda) (*domain.Venda, error)
	BuscarVenda(vendaID string) (*domain.VendaDetalhada, error)
	RemoverVenda(vendaID string) error
	ListarVendas(filtro domain.FiltroVendas) ([]*domain.VendaDetalhada, error)
	ListarTabelas() ([]*domain.TabelaMensal, error)
	BuscarTabela(tabelaID string) (*domain.TabelaMensal, error)
	RemoverTabela(tabelaID string) error
	VendasDaTabela(tabelaID string) ([]*domain.VendaDetalhada, error)
}

type Service struct {
	conn        postgres.Conn
	vendaRepo   repository.VendaRepository
	clienteRepo repository.ClienteRepository
	tabelaRepo  repository.TabelaMensalRepository
}

func NewService(
	conn postgres.Conn,
	vendaRepo repository.VendaRepository,
	clienteRepo repository.ClienteRepository,
	tabelaRepo repository.TabelaMensalRepository,
) ManagementService {
	return &Service{
		conn:        conn,
		vendaRepo:   vendaRepo,
		clienteRepo: clienteRepo,
		tabelaRepo:  tabelaRepo,
	}
}

// CriarVenda registra uma venda avulsa. Quando a tabela mensal não é
// informada, o mês é derivado da data da venda e a tabela é criada sob
// demanda, como nas importações.
func (s *Service) CriarVenda(ctx context.Context, venda *domain.Venda) (*domain.Venda, error) {
	if venda.ClienteID == "" || venda.EmpreendimentoID == "" || venda.DataVenda.IsZero() {
		return nil, NewManagementError(ErrDadosObrigatorios, apiErrors.ErrMissingRequiredData,
			"cliente, empreendimento e data da venda são obrigatórios")
	}

	cliente, err := s.clienteRepo.GetByID(venda.ClienteID)
	if err != nil {
		return nil, NewManagementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if cliente == nil {
		return nil, NewManagementError(ErrClienteNaoEncontrado, apiErrors.ErrResourceNotFound, venda.ClienteID)
	}

	vendaID, err := domain.NovoID()
	if err != nil {
		return nil, NewManagementError(ErrGenerateID, apiErrors.ErrInternalServer, "venda")
	}

	venda.ID = vendaID
	venda.Status = domain.StatusPendente
	venda.DataFaturamento = nil

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if venda.TabelaMensalID == "" {
			tabela, err := s.tabelaRepo.GetOrCreate(tx, venda.DataVenda.Format("2006-01"))
			if err != nil {
				return NewManagementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
			}
			venda.TabelaMensalID = tabela.ID
		}

		if err := s.vendaRepo.Create(tx, venda); err != nil {
			return NewManagementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("Venda %s criada para o cliente %s", venda.ID, venda.ClienteID)

	return venda, nil
}

func (s *Service) BuscarVenda(vendaID string) (*domain.VendaDetalhada, error) {
	venda, err := s.vendaRepo.GetByID(vendaID)
	if err != nil {
		return nil, NewManagementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if venda == nil {
		return nil, NewManagementError(ErrVendaNaoEncontrada, apiErrors.ErrResourceNotFound, vendaID)
	}
	return venda, nil
}

func (s *Service) RemoverVenda(vendaID string) error {
	removida, err := s.vendaRepo.Delete(vendaID)
	if err != nil {
		return NewManagementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if !removida {
		return NewManagementError(ErrVendaNaoEncontrada, apiErrors.ErrResourceNotFound, vendaID)
	}
	return nil
}

func (s *Service) ListarVendas(filtro domain.FiltroVendas) ([]*domain.VendaDetalhada, error) {
	vendas, err := s.vendaRepo.ListDetalhadas(s.conn, filtro)
	if err != nil {
		return nil, NewManagementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return vendas, nil
}

func (s *Service) ListarTabelas() ([]*domain.TabelaMensal, error) {
	tabelas, err := s.tabelaRepo.List()
	if err != nil {
		return nil, NewManagementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	return tabelas, nil
}

func (s *Service) BuscarTabela(tabelaID string) (*domain.TabelaMensal, error) {
	tabela, err := s.tabelaRepo.GetByID(tabelaID)
	if err != nil {
		return nil, NewManagementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if tabela == nil {
		return nil, NewManagementError(ErrTabelaNaoEncontrada, apiErrors.ErrResourceNotFound, tabelaID)
	}
	return tabela, nil
}

func (s *Service) RemoverTabela(tabelaID string) error {
	removida, err := s.tabelaRepo.Delete(tabelaID)
	if err != nil {
		return NewManagementError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}
	if !removida {
		return NewManagementError(ErrTabelaNaoEncontrada, apiErrors.ErrResourceNotFound, tabelaID)
	}
	return nil
}

func (s *Service) VendasDaTabela(tabelaID string) ([]*domain.VendaDetalhada, error) {
	tabela, err := s.BuscarTabela(tabelaID)
	if err != nil {
		return nil, err
	}

	return s.ListarVendas(domain.FiltroVendas{TabelaMensalID: &tabela.ID})
}
