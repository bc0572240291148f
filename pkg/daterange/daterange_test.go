package daterange_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estatecrm-api/pkg/daterange"
)

// miércoles 15 de julio de 2026, 14:30 UTC
var now = time.Date(2026, time.July, 15, 14, 30, 0, 0, time.UTC)

func TestWindow_Today(t *testing.T) {
	from, to := daterange.Window(daterange.Today, now)
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC), *from)
	assert.Nil(t, to, "today es abierto hacia adelante")
}

func TestWindow_Yesterday(t *testing.T) {
	from, to := daterange.Window(daterange.Yesterday, now)
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, time.Date(2026, time.July, 14, 0, 0, 0, 0, time.UTC), *from)
	assert.Equal(t, time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC), *to)
}

func TestWindow_ThisWeek_EmpiezaEnLunes(t *testing.T) {
	from, to := daterange.Window(daterange.ThisWeek, now)
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2026, time.July, 13, 0, 0, 0, 0, time.UTC), *from)
	assert.Equal(t, time.Monday, from.Weekday())
	assert.Nil(t, to)
}

func TestWindow_ThisWeek_DomingoCuentaComoFinDeSemana(t *testing.T) {
	sunday := time.Date(2026, time.July, 19, 10, 0, 0, 0, time.UTC)
	from, _ := daterange.Window(daterange.ThisWeek, sunday)
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2026, time.July, 13, 0, 0, 0, 0, time.UTC), *from,
		"el domingo pertenece a la semana que empezó el lunes anterior")
}

func TestWindow_LastWeek(t *testing.T) {
	from, to := daterange.Window(daterange.LastWeek, now)
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC), *from)
	assert.Equal(t, time.Date(2026, time.July, 13, 0, 0, 0, 0, time.UTC), *to)
}

func TestWindow_ThisMonth(t *testing.T) {
	from, to := daterange.Window(daterange.ThisMonth, now)
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), *from)
	assert.Nil(t, to)
}

func TestWindow_LastMonth(t *testing.T) {
	from, to := daterange.Window(daterange.LastMonth, now)
	require.NotNil(t, from)
	require.NotNil(t, to)
	assert.Equal(t, time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC), *from)
	assert.Equal(t, time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC), *to)
}

func TestWindow_ThisYear(t *testing.T) {
	from, to := daterange.Window(daterange.ThisYear, now)
	require.NotNil(t, from)
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), *from)
	assert.Nil(t, to)
}

func TestWindow_PresetDesconocido_SinFiltro(t *testing.T) {
	from, to := daterange.Window("hace_tres_lunas", now)
	assert.Nil(t, from)
	assert.Nil(t, to)

	from, to = daterange.Window("", now)
	assert.Nil(t, from)
	assert.Nil(t, to)
}
