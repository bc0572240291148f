// Package shortcode genera los códigos públicos de 8 caracteres que
// identifican un filtro guardado de propiedades en los widgets embebibles.
package shortcode

import (
	"crypto/rand"
	"fmt"
)

// Length longitud fija del código público.
const Length = 8

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// maxAttempts límite de reintentos ante colisiones antes de rendirse.
const maxAttempts = 10

// Exists consulta si un código ya está en uso (lo implementa el repositorio).
type Exists func(code string) (bool, error)

// New genera un código aleatorio de 8 caracteres alfanuméricos en mayúsculas.
func New() (string, error) {
	buf := make([]byte, Length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("shortcode: leer entropía: %w", err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf), nil
}

// NewUnique genera códigos hasta encontrar uno libre según exists.
// Reintenta ante colisión; con 36^8 combinaciones el primer intento casi siempre basta.
func NewUnique(exists Exists) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		code, err := New()
		if err != nil {
			return "", err
		}
		taken, err := exists(code)
		if err != nil {
			return "", err
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("shortcode: sin código libre tras %d intentos", maxAttempts)
}
