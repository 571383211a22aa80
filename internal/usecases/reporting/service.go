package reporting

import (
	"github.com/vfg2006/recebimentos-api/infrastructure/repository"
	"github.com/vfg2006/recebimentos-api/internal/domain"
	"github.com/vfg2006/recebimentos-api/pkg/apiErrors"
)

type ReportingService interface {
	Resumo() (*domain.ResumoVendas, error)
	ResumoPorMes() ([]*domain.ResumoMensal, error)
}

type Service struct {
	vendaRepo  repository.VendaRepository
	tabelaRepo repository.TabelaMensalRepository
}

func NewService(
	vendaRepo repository.VendaRepository,
	tabelaRepo repository.TabelaMensalRepository,
) ReportingService {
	return &Service{
		vendaRepo:  vendaRepo,
		tabelaRepo: tabelaRepo,
	}
}

// Resumo devolve os agregados gerais do painel.
func (s *Service) Resumo() (*domain.ResumoVendas, error) {
	resumo, err := s.vendaRepo.Resumo()
	if err != nil {
		return nil, NewReportingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return resumo, nil
}

// ResumoPorMes devolve os agregados de cada tabela mensal, na mesma ordem
// da listagem de tabelas.
func (s *Service) ResumoPorMes() ([]*domain.ResumoMensal, error) {
	tabelas, err := s.tabelaRepo.List()
	if err != nil {
		return nil, NewReportingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	resumos := make([]*domain.ResumoMensal, 0, len(tabelas))
	for _, tabela := range tabelas {
		resumo, err := s.vendaRepo.ResumoPorTabela(tabela)
		if err != nil {
			return nil, NewReportingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		resumos = append(resumos, resumo)
	}

	return resumos, nil
}
