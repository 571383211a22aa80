package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizar(t *testing.T) {
	tests := []struct {
		name     string
		entrada  string
		esperado string
	}{
		{
			name:     "remove acentos",
			entrada:  "José da Silva",
			esperado: "jose da silva",
		},
		{
			name:     "colapsa espaços extras e faz trim",
			entrada:  "  MARIA   APARECIDA  ",
			esperado: "maria aparecida",
		},
		{
			name:     "remove caracteres especiais",
			entrada:  "João D'Ávila-Neto (2ª via)",
			esperado: "joao davilaneto via",
		},
		{
			name:     "entrada vazia",
			entrada:  "",
			esperado: "",
		},
		{
			name:     "somente pontuação e números",
			entrada:  "1234 - !!!",
			esperado: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.esperado, Normalizar(tt.entrada))
		})
	}
}

func TestNormalizarIdempotente(t *testing.T) {
	nomes := []string{
		"José  DA Silva ",
		"MARINA FERREIRA DOS SANTOS",
		"Ângela Müller",
		"",
	}

	for _, nome := range nomes {
		norm := Normalizar(nome)
		assert.Equal(t, norm, Normalizar(norm), "normalizar deve ser idempotente para %q", nome)
	}
}

func TestNormalizarEquivalencias(t *testing.T) {
	// Variações apenas de acento, caixa e espaçamento devem colidir na
	// mesma chave.
	assert.Equal(t, Normalizar("José da Silva"), Normalizar("JOSE   DA   SILVA"))
	assert.Equal(t, Normalizar("André Luís"), Normalizar("andre luis"))

	// Conectivos diferentes NÃO devem colidir.
	assert.NotEqual(t, Normalizar("Rebeca Santos Souza"), Normalizar("Rebeca de Santos Souza"))
}

func TestNormalizarSemConectivos(t *testing.T) {
	assert.Equal(t, "marina ferreira santos", NormalizarSemConectivos("Marina Ferreira dos Santos"))
	assert.Equal(t, "rebeca santos souza", NormalizarSemConectivos("Rebeca DE Santos Souza"))
	assert.Equal(t, "", NormalizarSemConectivos("de da dos"))
}

func TestIndiceResolver(t *testing.T) {
	type venda struct {
		id   string
		nome string
	}

	vendas := []venda{
		{id: "v1", nome: "Jose da Silva"},
		{id: "v2", nome: "Rebeca de Santos Souza"},
	}

	indice := Construir(vendas, func(v venda) string { return v.nome })

	t.Run("acentos, caixa e espaços extras dão match com confiança 1.0", func(t *testing.T) {
		item, confianca, ok := indice.Resolver("José  DA Silva ")
		assert.True(t, ok)
		assert.Equal(t, 1.0, confianca)
		assert.Equal(t, "v1", item.id)
	})

	t.Run("diferença de conectivo NÃO dá match", func(t *testing.T) {
		_, confianca, ok := indice.Resolver("Rebeca Santos Souza")
		assert.False(t, ok)
		assert.Equal(t, 0.0, confianca)
	})

	t.Run("nome vazio nunca resolve", func(t *testing.T) {
		_, confianca, ok := indice.Resolver("   ")
		assert.False(t, ok)
		assert.Equal(t, 0.0, confianca)
	})

	t.Run("nome desconhecido retorna ausente", func(t *testing.T) {
		_, _, ok := indice.Resolver("Marina Ferreira Assis")
		assert.False(t, ok)
	})
}

func TestConstruirIgnoraChavesVazias(t *testing.T) {
	nomes := []string{"", "  ", "Carlos Pereira"}
	indice := Construir(nomes, func(s string) string { return s })

	assert.Len(t, indice, 1)
	_, _, ok := indice.Resolver("carlos pereira")
	assert.True(t, ok)
}

func TestConstruirUltimoVenceEmColisao(t *testing.T) {
	type registro struct {
		id   int
		nome string
	}

	registros := []registro{
		{id: 1, nome: "Ana Souza"},
		{id: 2, nome: "ANA SOUZA"},
	}

	indice := Construir(registros, func(r registro) string { return r.nome })

	item, _, ok := indice.Resolver("ana souza")
	assert.True(t, ok)
	assert.Equal(t, 2, item.id)
}

func TestSimilaridade(t *testing.T) {
	assert.Equal(t, 1.0, Similaridade("José da Silva", "JOSE DA SILVA"))
	assert.Equal(t, 0.0, Similaridade("", "qualquer"))

	// Nomes parecidos pontuam alto, mas isso nunca vira match na resolução.
	score := Similaridade("Rebeca Santos Souza", "Rebeca de Santos Souza")
	assert.Greater(t, score, 0.8)
	assert.Less(t, score, 1.0)
}
