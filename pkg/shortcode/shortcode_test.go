package shortcode_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estatecrm-api/pkg/shortcode"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func TestNew_FormatoDelCodigo(t *testing.T) {
	code, err := shortcode.New()
	require.NoError(t, err)
	assert.Len(t, code, shortcode.Length)
	for _, r := range code {
		assert.True(t, strings.ContainsRune(alphabet, r),
			"el código solo usa mayúsculas y dígitos: %q", code)
	}
}

func TestNew_CodigosDistintos(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := shortcode.New()
		require.NoError(t, err)
		assert.False(t, seen[code], "código repetido en 100 generaciones: %s", code)
		seen[code] = true
	}
}

func TestNewUnique_ReintentaAnteColision(t *testing.T) {
	calls := 0
	exists := func(code string) (bool, error) {
		calls++
		// Las dos primeras generaciones "chocan"; la tercera queda libre.
		return calls <= 2, nil
	}

	code, err := shortcode.NewUnique(exists)
	require.NoError(t, err)
	assert.Len(t, code, shortcode.Length)
	assert.Equal(t, 3, calls)
}

func TestNewUnique_SeRindeTrasAgotarIntentos(t *testing.T) {
	exists := func(code string) (bool, error) { return true, nil }

	_, err := shortcode.NewUnique(exists)
	assert.Error(t, err, "si todo código está tomado debe fallar en vez de colgarse")
}

func TestNewUnique_PropagaErrorDelRepositorio(t *testing.T) {
	dbErr := errors.New("db caída")
	exists := func(code string) (bool, error) { return false, dbErr }

	_, err := shortcode.NewUnique(exists)
	assert.ErrorIs(t, err, dbErr)
}
