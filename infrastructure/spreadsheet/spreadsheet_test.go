package spreadsheet

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func planilhaDeTeste(t *testing.T, linhas [][]interface{}) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, linha := range linhas {
		celula, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", celula, &linha))
	}

	var buffer bytes.Buffer
	require.NoError(t, f.Write(&buffer))
	return bytes.NewReader(buffer.Bytes())
}

func TestLerXLSX(t *testing.T) {
	arquivo := planilhaDeTeste(t, [][]interface{}{
		{"Nome do Cliente", "Valor"},
		{"José da Silva", "1.500,00"},
	})

	linhas, err := LerXLSX(arquivo)
	require.NoError(t, err)
	require.Len(t, linhas, 2)
	assert.Equal(t, "Nome do Cliente", linhas[0][0])
	assert.Equal(t, "José da Silva", linhas[1][0])
}

func TestMapearColunas(t *testing.T) {
	regras := []RegraColuna{
		{Campo: "nome", PalavrasChave: []string{"nome", "cliente"}, Obrigatoria: true},
		{Campo: "valor", PalavrasChave: []string{"valor"}},
	}

	t.Run("cabeçalho fora da primeira linha", func(t *testing.T) {
		linhas := [][]string{
			{"RELATÓRIO DE VENDAS"},
			{},
			{"Quant", "Nome do Cliente", "Valor da Venda"},
			{"1", "Maria Souza", "1000"},
			{"2", "nan", ""},
			{"", "", ""},
		}

		dados, err := MapearColunas(linhas, regras)
		require.NoError(t, err)
		require.Len(t, dados, 2)
		assert.Equal(t, "Maria Souza", dados[0]["nome"])
		assert.Equal(t, "1000", dados[0]["valor"])
		assert.Equal(t, "nan", dados[1]["nome"])
	})

	t.Run("rótulo com acento resolve palavra-chave sem acento", func(t *testing.T) {
		linhas := [][]string{
			{"Nome do Mutuário", "Número Contrato"},
			{"Carlos Pereira", "123"},
		}

		dados, err := MapearColunas(linhas, []RegraColuna{
			{Campo: "nome", PalavrasChave: []string{"mutuario"}, Obrigatoria: true},
			{Campo: "contrato", PalavrasChave: []string{"contrato"}},
		})
		require.NoError(t, err)
		require.Len(t, dados, 1)
		assert.Equal(t, "Carlos Pereira", dados[0]["nome"])
		assert.Equal(t, "123", dados[0]["contrato"])
	})

	t.Run("coluna obrigatória ausente falha a importação inteira", func(t *testing.T) {
		linhas := [][]string{
			{"Quant", "Data"},
			{"1", "01/02/2025"},
		}

		_, err := MapearColunas(linhas, regras)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "coluna obrigatória não encontrada: nome")
	})

	t.Run("erro nomeia a coluna ausente do cabeçalho real, não do título", func(t *testing.T) {
		obrigatorias := []RegraColuna{
			{Campo: "nome", PalavrasChave: []string{"cliente"}, Obrigatoria: true},
			{Campo: "contrato", PalavrasChave: []string{"contrato"}, Obrigatoria: true},
		}

		linhas := [][]string{
			{"RELATÓRIO DE VENDAS"},
			{"Nome do Cliente", "Valor da Venda"},
			{"Maria Souza", "1000"},
		}

		_, err := MapearColunas(linhas, obrigatorias)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "coluna obrigatória não encontrada: contrato")
	})
}

func TestCampoVazio(t *testing.T) {
	assert.True(t, CampoVazio(""))
	assert.True(t, CampoVazio("   "))
	assert.True(t, CampoVazio("nan"))
	assert.True(t, CampoVazio("NaN"))
	assert.False(t, CampoVazio("0"))
	assert.False(t, CampoVazio("Nanci Oliveira"))
}

func TestParseValor(t *testing.T) {
	tests := []struct {
		entrada  string
		esperado float64
	}{
		{"1.234,56", 1234.56},
		{"R$ 2.500,00", 2500.0},
		{"1,234.56", 1234.56},
		{"1500", 1500.0},
		{"(100,00)", -100.0},
		{"-42.5", -42.5},
		{"", 0},
		{"nan", 0},
	}

	for _, tt := range tests {
		valor, err := ParseValor(tt.entrada)
		assert.NoError(t, err, "entrada %q", tt.entrada)
		assert.InDelta(t, tt.esperado, valor, 0.001, "entrada %q", tt.entrada)
	}

	_, err := ParseValor("abc")
	assert.Error(t, err)
}

func TestParseData(t *testing.T) {
	data, err := ParseData("15/03/2025")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), data)

	data, err = ParseData("2025-03-15")
	assert.NoError(t, err)
	assert.Equal(t, 15, data.Day())

	// Serial do Excel: 45731 = 15/03/2025.
	data, err = ParseData("45731")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), data)

	_, err = ParseData("")
	assert.Error(t, err)
}

func TestGerarPlanilhaRecebimentos(t *testing.T) {
	saida, err := GerarPlanilhaRecebimentos(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(saida))
	require.NoError(t, err)
	defer f.Close()

	linhas, err := f.GetRows(abaRecebimentos)
	require.NoError(t, err)
	require.Len(t, linhas, 1)
	assert.Equal(t, cabecalhoRecebimentos, linhas[0])
}
