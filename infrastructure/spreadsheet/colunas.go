package spreadsheet

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Quantas linhas iniciais são vasculhadas à procura do cabeçalho. As
// planilhas chegam com títulos, logotipos e linhas em branco antes dele.
const maxLinhasCabecalho = 40

var errPlanilhaVazia = errors.New("planilha sem dados")

// Linha é uma linha de dados já mapeada por campo canônico.
type Linha map[string]string

// RegraColuna liga um campo canônico a uma lista ordenada de palavras-chave
// procuradas nos rótulos do cabeçalho (busca por substring, sem acentos e
// sem caixa). A primeira coluna que contém uma das palavras vence. Isso é
// uma heurística deliberada, não um palpite a refinar: os sistemas de origem
// renomeiam colunas com frequência, mas preservam os radicais.
type RegraColuna struct {
	Campo         string
	PalavrasChave []string
	Obrigatoria   bool
}

var normalizaCabecalho = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func chaveCabecalho(rotulo string) string {
	semAcentos, _, err := transform.String(normalizaCabecalho, rotulo)
	if err != nil {
		semAcentos = rotulo
	}
	return strings.ToLower(strings.TrimSpace(semAcentos))
}

// MapearColunas localiza a linha de cabeçalho e converte as linhas seguintes
// em mapas campo->valor conforme as regras. Uma regra obrigatória sem coluna
// correspondente falha a importação inteira, sem processamento parcial.
func MapearColunas(linhas [][]string, regras []RegraColuna) ([]Linha, error) {
	idxCabecalho, posicoes, err := localizarCabecalho(linhas, regras)
	if err != nil {
		return nil, err
	}

	dados := make([]Linha, 0, len(linhas)-idxCabecalho-1)
	for _, linha := range linhas[idxCabecalho+1:] {
		mapeada := make(Linha, len(posicoes))
		vazia := true

		for campo, pos := range posicoes {
			var valor string
			if pos < len(linha) {
				valor = strings.TrimSpace(linha[pos])
			}
			mapeada[campo] = valor
			if !CampoVazio(valor) {
				vazia = false
			}
		}

		if vazia {
			continue
		}
		dados = append(dados, mapeada)
	}

	return dados, nil
}

// localizarCabecalho procura, nas primeiras linhas, aquela que resolve todas
// as regras obrigatórias e devolve a posição de cada campo. Quando nenhuma
// linha serve, o erro reportado vem da candidata que resolveu mais regras:
// é a linha de cabeçalho de verdade, não a de título.
func localizarCabecalho(linhas [][]string, regras []RegraColuna) (int, map[string]int, error) {
	limite := maxLinhasCabecalho
	if len(linhas) < limite {
		limite = len(linhas)
	}

	var melhorErro error
	melhorResolvidas := -1
	for i := 0; i < limite; i++ {
		posicoes, resolvidas, err := mapearCabecalho(linhas[i], regras)
		if err == nil {
			return i, posicoes, nil
		}
		if resolvidas > melhorResolvidas {
			melhorResolvidas = resolvidas
			melhorErro = err
		}
	}

	if melhorErro == nil {
		melhorErro = errPlanilhaVazia
	}
	return 0, nil, melhorErro
}

func mapearCabecalho(cabecalho []string, regras []RegraColuna) (map[string]int, int, error) {
	rotulos := make([]string, len(cabecalho))
	for i, rotulo := range cabecalho {
		rotulos[i] = chaveCabecalho(rotulo)
	}

	var faltando error
	posicoes := make(map[string]int, len(regras))
	for _, regra := range regras {
		pos := -1

	busca:
		for _, palavra := range regra.PalavrasChave {
			chave := chaveCabecalho(palavra)
			for idx, rotulo := range rotulos {
				if rotulo != "" && strings.Contains(rotulo, chave) {
					pos = idx
					break busca
				}
			}
		}

		if pos == -1 {
			if regra.Obrigatoria && faltando == nil {
				faltando = fmt.Errorf("coluna obrigatória não encontrada: %s", regra.Campo)
			}
			continue
		}
		posicoes[regra.Campo] = pos
	}

	if faltando != nil {
		return nil, len(posicoes), faltando
	}

	return posicoes, len(posicoes), nil
}
