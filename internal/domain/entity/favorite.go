package entity

import "time"

// Favorite par único (usuario, propiedad).
type Favorite struct {
	ID         string
	UserID     string
	PropertyID string
	CreatedAt  time.Time

	// Property se completa en lecturas para los listados; no se persiste aquí.
	Property *Property
}
