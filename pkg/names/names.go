// Package names concentra a normalização e o matching de nomes de clientes
// entre planilhas de origens diferentes.
//
// O algoritmo prioriza a PRECISÃO para evitar falsos positivos: é melhor não
// encontrar um match do que encontrar o match errado. Por isso a resolução
// aceita apenas igualdade exata após a normalização (acentos, maiúsculas,
// espaços extras). Diferenças de conectivos ("REBECA SANTOS SOUZA" vs
// "REBECA DE SANTOS SOUZA") NÃO dão match, porque podem ser pessoas
// distintas. Similaridade parcial foi avaliada e rejeitada como arriscada
// demais; a função Similaridade existe apenas como utilitário.
package names

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Conectivos que não são sobrenomes significativos.
var conectivos = map[string]struct{}{
	"de": {}, "da": {}, "do": {}, "das": {}, "dos": {}, "e": {},
}

var (
	naoLetraRegex = regexp.MustCompile(`[^a-z\s]`)
	removeAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Normalizar produz a chave canônica de comparação de um nome:
// remove acentos por decomposição Unicode, converte para minúsculas,
// remove tudo que não for letra ou espaço e colapsa espaços repetidos.
// Entrada vazia produz "", que nunca é uma chave de busca válida.
// A função é idempotente.
func Normalizar(nome string) string {
	if nome == "" {
		return ""
	}

	semAcentos, _, err := transform.String(removeAcentos, nome)
	if err != nil {
		semAcentos = nome
	}

	semAcentos = strings.ToLower(semAcentos)
	semAcentos = naoLetraRegex.ReplaceAllString(semAcentos, "")

	return strings.Join(strings.Fields(semAcentos), " ")
}

// NormalizarSemConectivos remove também os conectivos (de, da, do, ...).
// Disponível para comparações mais estritas, mas NÃO é usada na resolução
// de matches: remover conectivos aproximaria nomes de pessoas diferentes.
func NormalizarSemConectivos(nome string) string {
	nomeNorm := Normalizar(nome)
	if nomeNorm == "" {
		return ""
	}

	partes := make([]string, 0)
	for _, p := range strings.Fields(nomeNorm) {
		if _, ehConectivo := conectivos[p]; ehConectivo {
			continue
		}
		partes = append(partes, p)
	}

	return strings.Join(partes, " ")
}

// Indice mapeia nomes normalizados para o registro alvo.
type Indice[T any] map[string]T

// Construir monta um índice a partir dos itens informados. Chaves vazias são
// descartadas. Quando dois itens normalizam para a mesma chave, o último da
// iteração vence: colisões exatas só são esperadas sobre duplicatas reais,
// então o custo dessa escolha é baixo.
func Construir[T any](itens []T, nomeDe func(T) string) Indice[T] {
	indice := make(Indice[T], len(itens))

	for _, item := range itens {
		chave := Normalizar(nomeDe(item))
		if chave == "" {
			continue
		}
		indice[chave] = item
	}

	return indice
}

// Resolver busca um nome no índice. APENAS match exato com o nome completo
// normalizado: encontrou, retorna o item com confiança 1.0; nome vazio ou
// ausente retorna o zero do tipo com confiança 0.0. Não "melhorar" esta
// resolução para matching parcial.
func (i Indice[T]) Resolver(nome string) (T, float64, bool) {
	var zero T

	chave := Normalizar(nome)
	if chave == "" {
		return zero, 0.0, false
	}

	item, encontrado := i[chave]
	if !encontrado {
		return zero, 0.0, false
	}

	return item, 1.0, true
}

// Similaridade calcula um score entre 0.0 e 1.0 para dois nomes, baseado na
// subsequência comum mais longa das formas normalizadas. Utilitário apenas:
// a resolução de matches nunca usa este score.
func Similaridade(nome1, nome2 string) float64 {
	n1 := Normalizar(nome1)
	n2 := Normalizar(nome2)

	if n1 == "" || n2 == "" {
		return 0.0
	}

	comum := tamanhoSubsequenciaComum(n1, n2)
	return 2.0 * float64(comum) / float64(len(n1)+len(n2))
}

func tamanhoSubsequenciaComum(a, b string) int {
	anterior := make([]int, len(b)+1)
	atual := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				atual[j] = anterior[j-1] + 1
			} else if anterior[j] >= atual[j-1] {
				atual[j] = anterior[j]
			} else {
				atual[j] = atual[j-1]
			}
		}
		anterior, atual = atual, anterior
	}

	return anterior[len(b)]
}
