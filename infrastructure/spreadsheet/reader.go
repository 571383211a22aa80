// Package spreadsheet isola a leitura e a escrita de planilhas: extrai as
// linhas brutas dos arquivos enviados, localiza colunas por palavra-chave e
// gera a planilha de exportação das análises.
package spreadsheet

import (
	"bytes"
	"io"

	"github.com/shakinm/xlsReader/xls"
	"github.com/xuri/excelize/v2"
)

// LerXLSX extrai as linhas da primeira aba de um arquivo .xlsx.
func LerXLSX(file io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	abas := f.GetSheetList()
	if len(abas) == 0 {
		return nil, errPlanilhaVazia
	}

	return f.GetRows(abas[0])
}

// LerXLS extrai as linhas da primeira aba de um arquivo .xls (formato
// antigo, usado pela exportação EPR). Se o conteúdo na verdade for um .xlsx
// com extensão errada, cai para o leitor de .xlsx.
func LerXLS(file io.Reader) ([][]string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	workbook, err := xls.OpenReader(bytes.NewReader(data))
	if err != nil {
		return LerXLSX(bytes.NewReader(data))
	}

	sheets := workbook.GetSheets()
	if len(sheets) == 0 {
		return nil, errPlanilhaVazia
	}

	var linhas [][]string
	for _, row := range sheets[0].GetRows() {
		var linha []string
		for _, cell := range row.GetCols() {
			linha = append(linha, cell.GetString())
		}
		linhas = append(linhas, linha)
	}

	return linhas, nil
}
