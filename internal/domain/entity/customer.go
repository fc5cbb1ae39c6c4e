package entity

import "time"

// Customer representa un cliente de la boutique. Inmutable una vez sembrado.
type Customer struct {
	ID           string
	Name         string
	Email        string
	Region       string // wilaya; pertenece al catálogo de regiones configurado
	RegisteredAt time.Time
}
