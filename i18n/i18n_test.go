package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueParses(t *testing.T) {
	parsed, err := parseCatalogue(catalogue)
	require.NoError(t, err)
	assert.Equal(t, "Iniciar", parsed["Start"]["pt"])
	assert.Equal(t, "Сброс", parsed["Reset"]["ru"])
}

func TestParseCatalogueInvalid(t *testing.T) {
	_, err := parseCatalogue([]byte("Start: [unterminated"))
	assert.Error(t, err)
}

func TestT(t *testing.T) {
	prev := GetLang()
	t.Cleanup(func() { SetLang(prev) })

	SetLang("es")
	assert.Equal(t, "Reiniciar", T("Reset"))
	assert.Equal(t, "no such key", T("no such key"))

	SetLang("en")
	assert.Equal(t, "Start", T("Start"))
}

func TestMatchLang(t *testing.T) {
	assert.Equal(t, "pt", matchLang("pt-BR"))
	assert.Equal(t, "es", matchLang("es-ES"))
	assert.Equal(t, "ru", matchLang("ru"))
	assert.Equal(t, "en", matchLang("de-DE"))
}
