package spreadsheet

import (
	"bytes"
	"fmt"

	"github.com/vfg2006/recebimentos-api/internal/domain"
	"github.com/xuri/excelize/v2"
)

const abaRecebimentos = "Recebimentos"

// Ordem fixa das colunas da planilha de recebimentos, combinada com o
// financeiro. A exportação reflete exatamente o payload congelado na análise.
var cabecalhoRecebimentos = []string{
	"Nome Empreendimento",
	"Número Contrato",
	"Nome Mutuário",
	"CPF/CNPJ Mutuário",
	"Data de Assinatura",
	"Valor de Financiamento",
	"Valor de Financiamento do Terreno",
	"Valor de Desconto Subsídio Complementar",
	"Valor do FGTS",
	"Valor Recursos Próprios",
	"Valor de Compra e Venda",
	"Valor da Comissão",
}

// GerarPlanilhaRecebimentos monta o .xlsx de exportação de uma análise EPR
// confirmada.
func GerarPlanilhaRecebimentos(dados []domain.DadosLinhaEPR) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", abaRecebimentos); err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(abaRecebimentos, "A1", &cabecalhoRecebimentos); err != nil {
		return nil, err
	}

	for i, d := range dados {
		linha := []interface{}{
			d.NomeEmpreendimento,
			d.NumeroContrato,
			d.NomeMutuario,
			d.CPFCNPJ,
			d.DataAssinatura,
			d.ValorFinanciamento,
			d.ValorFinanciamentoTerreno,
			d.ValorSubsidio,
			d.ValorFGTS,
			d.ValorRecursosProprios,
			d.ValorCompraVenda,
			d.ValorComissao,
		}

		celula := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(abaRecebimentos, celula, &linha); err != nil {
			return nil, err
		}
	}

	var buffer bytes.Buffer
	if err := f.Write(&buffer); err != nil {
		return nil, err
	}

	return buffer.Bytes(), nil
}
