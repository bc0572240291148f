package storage_test

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/internal/infrastructure/storage"
	"github.com/jhoicas/estatecrm-api/pkg/config"
)

func newStore(t *testing.T) (*storage.LocalStore, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStore(config.UploadConfig{Dir: dir, BaseURL: "/uploads/images"})
	require.NoError(t, err)
	return store, dir
}

// fileHeader arma un *multipart.FileHeader real a partir de un formulario en memoria.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["image"][0]
}

func TestSave_GuardaConNombreAleatorio(t *testing.T) {
	store, dir := newStore(t)

	url, err := store.Save(fileHeader(t, "foto.PNG", []byte("png-bytes")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/images/"), "la URL usa el prefijo configurado")
	assert.True(t, strings.HasSuffix(url, ".png"), "la extensión se normaliza a minúsculas")
	assert.NotContains(t, url, "foto", "el nombre original no se conserva")

	name := filepath.Base(url)
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)
}

func TestSave_RechazaExtensionesNoPermitidas(t *testing.T) {
	store, dir := newStore(t)

	for _, filename := range []string{"script.exe", "nota.txt", "pagina.html", "sinextension"} {
		_, err := store.Save(fileHeader(t, filename, []byte("x")))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "debe rechazarse %s", filename)
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nada debe llegar al disco")
}

func TestSave_RechazaArchivosGrandes(t *testing.T) {
	store, _ := newStore(t)

	big := make([]byte, storage.MaxImageSize+1)
	_, err := store.Save(fileHeader(t, "enorme.jpg", big))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelete_DescartaComponentesDeRuta(t *testing.T) {
	store, dir := newStore(t)

	url, err := store.Save(fileHeader(t, "foto.jpg", []byte("datos")))
	require.NoError(t, err)
	name := filepath.Base(url)

	// Un path con traversal se reduce a su nombre base dentro del directorio.
	require.NoError(t, store.Delete("../../../"+name))
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err), "el archivo debe haberse borrado del directorio de uploads")
}

func TestDelete_ArchivoInexistente(t *testing.T) {
	store, _ := newStore(t)
	err := store.Delete("no-existe.png")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
