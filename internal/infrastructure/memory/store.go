// Package memory implementa el inventario completo en memoria. Sirve como backend de desarrollo
// y como doble de pruebas de los casos de uso.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
	"github.com/jhoicas/inventario-web/internal/domain/repository"
)

var _ inventory.TxRunner = (*Store)(nil)

var errReadOnly = errors.New("memory: escritura dentro de una vista de solo lectura")

type state struct {
	categories *table[entity.Category]
	products   *table[entity.Product]
	sellers    *table[entity.Seller]
	sources    *table[entity.ProductSource]
}

func (s *state) clone() *state {
	return &state{
		categories: s.categories.clone(),
		products:   s.products.clone(),
		sellers:    s.sellers.clone(),
		sources:    s.sources.clone(),
	}
}

// Store mantiene el estado detrás de un RWMutex. Cada Run trabaja sobre una copia que solo
// reemplaza al estado vigente si fn termina sin error.
type Store struct {
	mu sync.RWMutex
	st *state
}

// New crea un inventario vacío.
func New() *Store {
	return &Store{st: &state{
		categories: newTable[entity.Category](),
		products:   newTable[entity.Product](),
		sellers:    newTable[entity.Seller](),
		sources:    newTable[entity.ProductSource](),
	}}
}

// Run ejecuta fn con acceso exclusivo de escritura.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(reposFor(work, false)); err != nil {
		return err
	}
	s.st = work
	return nil
}

// View ejecuta fn sobre el estado vigente; las lecturas concurrentes no se bloquean entre sí.
func (s *Store) View(ctx context.Context, fn func(repos repository.Repositories) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(reposFor(s.st, true))
}

// Close no libera nada; existe para que todos los backends compartan el ciclo de vida.
func (s *Store) Close() {}

func reposFor(st *state, readOnly bool) repository.Repositories {
	return repository.Repositories{
		Categories:     &categoryRepo{t: st.categories, readOnly: readOnly},
		Products:       &productRepo{t: st.products, readOnly: readOnly},
		Sellers:        &sellerRepo{t: st.sellers, readOnly: readOnly},
		ProductSources: &productSourceRepo{t: st.sources, readOnly: readOnly},
	}
}
