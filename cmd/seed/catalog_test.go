package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-web/pkg/config"
)

const sampleCatalog = `<?xml version="1.0" encoding="UTF-8"?>
<catalog>
  <category name="Herramientas">
    <product name="Martillo" price="10.00"/>
    <product name="Llave" price="5.00"/>
  </category>
  <category name="Pinturas">
    <product name="Vinilo" price="7.50"/>
  </category>
  <seller name="Central">
    <stock product="Martillo" quantity="4"/>
    <stock product="Vinilo" quantity="2"/>
  </seller>
</catalog>`

func newUseCase() *inventory.UseCase {
	return inventory.NewUseCase(inventory.NewStore(memory.New(), inventory.DeleteOrphan))
}

func TestLoad_CatalogoCompleto(t *testing.T) {
	c, err := parseCatalog(strings.NewReader(sampleCatalog))
	require.NoError(t, err)

	uc := newUseCase()
	s, err := load(context.Background(), uc, c)
	require.NoError(t, err)
	assert.Equal(t, summary{Categories: 2, Products: 3, Sellers: 1, Stock: 2}, s)

	idx, err := uc.Index(context.Background())
	require.NoError(t, err)
	require.Len(t, idx.ProductSources, 2)
	assert.Equal(t, int64(4), idx.ProductSources[0].Quantity)
	assert.Equal(t, idx.Sellers[0].ID, idx.ProductSources[0].SellerID)
}

func TestParseCatalog_ISO88591(t *testing.T) {
	doc := `<?xml version="1.0" encoding="ISO-8859-1"?>
<catalog><category name="Ferretería"/></catalog>`
	encoded, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(doc))
	require.NoError(t, err)

	c, err := parseCatalog(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, c.Categories, 1)
	assert.Equal(t, "Ferretería", c.Categories[0].Name)
}

func TestLoad_PrecioInvalido(t *testing.T) {
	c, err := parseCatalog(strings.NewReader(`<catalog><category name="A"><product name="p" price="diez"/></category></catalog>`))
	require.NoError(t, err)

	s, err := load(context.Background(), newUseCase(), c)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, 1, s.Categories)
	assert.Equal(t, 0, s.Products)
}

func TestLoad_StockDeProductoDesconocido(t *testing.T) {
	c, err := parseCatalog(strings.NewReader(`<catalog><seller name="S"><stock product="fantasma" quantity="1"/></seller></catalog>`))
	require.NoError(t, err)

	_, err = load(context.Background(), newUseCase(), c)
	assert.ErrorContains(t, err, "fantasma")
}

func TestLoad_ProductoDuplicado(t *testing.T) {
	c, err := parseCatalog(strings.NewReader(`<catalog>
<category name="A"><product name="p" price="1"/></category>
<category name="B"><product name="p" price="2"/></category></catalog>`))
	require.NoError(t, err)

	_, err = load(context.Background(), newUseCase(), c)
	assert.ErrorContains(t, err, "duplicado")
}

func TestLoad_ErrorConservaLoCreado(t *testing.T) {
	c, err := parseCatalog(strings.NewReader(`<catalog>
<category name="A"><product name="p" price="1"/></category>
<seller name="S"><stock product="p" quantity="x"/></seller></catalog>`))
	require.NoError(t, err)

	uc := newUseCase()
	s, err := load(context.Background(), uc, c)
	require.Error(t, err)
	assert.Equal(t, summary{Categories: 1, Products: 1, Sellers: 1}, s)

	idx, err := uc.Index(context.Background())
	require.NoError(t, err)
	assert.Len(t, idx.Categories, 1)
	assert.Len(t, idx.Products, 1)
	assert.Len(t, idx.Sellers, 1)
	assert.Empty(t, idx.ProductSources)
}

func TestCheckDriver(t *testing.T) {
	assert.Error(t, checkDriver(config.DriverMemory))
	assert.NoError(t, checkDriver(config.DriverSQLite))
	assert.NoError(t, checkDriver(config.DriverPostgres))
}
