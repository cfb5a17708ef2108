package ports

import (
	"context"
	"time"
)

// SelectionCache define el puerto de salida para memoizar selecciones resueltas.
// La clave es (versión del snapshot de categorías, nombre seleccionado); una versión nueva
// invalida implícitamente todo lo anterior. Cualquier adaptador (memoria, Redis, nop) sirve.
type SelectionCache interface {
	// Get devuelve los IDs cacheados y true si hay acierto.
	Get(ctx context.Context, version, name string) ([]string, bool, error)
	// Set guarda los IDs resueltos con el TTL indicado (0 = sin expiración).
	Set(ctx context.Context, version, name string, ids []string, ttl time.Duration) error
	// Invalidate purga todas las entradas.
	Invalidate(ctx context.Context) error
}
