package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/estatecrm-api/internal/domain"
	"github.com/jhoicas/estatecrm-api/pkg/config"
)

// MaxImageSize tamaño máximo aceptado por archivo (10 MB).
const MaxImageSize = 10 << 20

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// LocalStore guarda imágenes en disco local bajo un directorio raíz y las
// expone mediante URLs relativas con el prefijo configurado.
type LocalStore struct {
	dir     string
	baseURL string
}

// NewLocalStore construye el almacén y crea el directorio si no existe.
func NewLocalStore(cfg config.UploadConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: cfg.Dir, baseURL: strings.TrimRight(cfg.BaseURL, "/")}, nil
}

// Save valida y guarda un archivo subido. Devuelve la URL pública relativa.
// El nombre en disco es un UUID con la extensión original, en minúsculas.
func (s *LocalStore) Save(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxImageSize {
		return "", fmt.Errorf("%w: el archivo supera los 10MB", domain.ErrInvalidInput)
	}
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: extensión no permitida %q", domain.ErrInvalidInput, ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// Delete elimina un archivo por nombre. Se descarta cualquier componente de
// ruta para impedir traversal fuera del directorio de uploads.
func (s *LocalStore) Delete(filename string) error {
	name := filepath.Base(filename)
	if name == "." || name == ".." || name == "/" {
		return fmt.Errorf("%w: nombre de archivo inválido", domain.ErrInvalidInput)
	}
	path := filepath.Join(s.dir, name)
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// Dir devuelve el directorio raíz (para servir estáticos).
func (s *LocalStore) Dir() string {
	return s.dir
}
