package inventory_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/infrastructure/memory"
)

func newUseCase() *inventory.UseCase {
	return inventory.NewUseCase(inventory.NewStore(memory.New(), inventory.DeleteOrphan))
}

func TestParsePrice(t *testing.T) {
	p, err := inventory.ParsePrice(" 7.50 ")
	require.NoError(t, err)
	assert.Equal(t, "7.5", p.String())

	for _, bad := range []string{"", "abc", "1,5", "-1"} {
		_, err := inventory.ParsePrice(bad)
		assert.True(t, errors.Is(err, domain.ErrValidation), bad)
	}
}

func TestParseQuantity(t *testing.T) {
	q, err := inventory.ParseQuantity("12")
	require.NoError(t, err)
	assert.Equal(t, int64(12), q)

	for _, bad := range []string{"", "1.5", "doce", "-3"} {
		_, err := inventory.ParseQuantity(bad)
		assert.True(t, errors.Is(err, domain.ErrValidation), bad)
	}
}

func TestParseRef(t *testing.T) {
	id := uuid.New()
	got, err := inventory.ParseRef("category_id", strings.ToUpper(id.String()))
	require.NoError(t, err)
	assert.Equal(t, id.String(), got)

	_, err = inventory.ParseRef("category_id", "7")
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestAddCategory_Validacion(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	_, err := uc.AddCategory(ctx, dto.CategoryForm{})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = uc.AddCategory(ctx, dto.CategoryForm{Name: strings.Repeat("x", 101)})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	out, err := uc.AddCategory(ctx, dto.CategoryForm{Name: "A"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
}

func TestAddProduct_Coercion(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	cat, err := uc.AddCategory(ctx, dto.CategoryForm{Name: "A"})
	require.NoError(t, err)

	out, err := uc.AddProduct(ctx, dto.ProductForm{Name: "p", Price: "10.25", CategoryID: cat.ID})
	require.NoError(t, err)
	assert.Equal(t, "10.25", out.Price.String())
	assert.Equal(t, cat.ID, out.CategoryID)

	_, err = uc.AddProduct(ctx, dto.ProductForm{Name: "p", Price: "caro", CategoryID: cat.ID})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = uc.AddProduct(ctx, dto.ProductForm{Name: "p", Price: "1", CategoryID: "no-uuid"})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	_, err = uc.AddProduct(ctx, dto.ProductForm{Name: "p", Price: "1", CategoryID: uuid.NewString()})
	assert.True(t, errors.Is(err, domain.ErrReferential))
}

func TestGet_IDMalFormadoEsNotFound(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	_, err := uc.GetCategory(ctx, "abc")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	_, err = uc.GetProduct(ctx, "abc")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
	assert.True(t, errors.Is(uc.DeleteSeller(ctx, "abc"), domain.ErrNotFound))
	_, err = uc.EditProductSource(ctx, "abc", dto.ProductSourceForm{})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestGetProduct_IncluyeCategorias(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	a, err := uc.AddCategory(ctx, dto.CategoryForm{Name: "A"})
	require.NoError(t, err)
	_, err = uc.AddCategory(ctx, dto.CategoryForm{Name: "B"})
	require.NoError(t, err)
	p, err := uc.AddProduct(ctx, dto.ProductForm{Name: "p", Price: "1", CategoryID: a.ID})
	require.NoError(t, err)

	out, err := uc.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, out.Product.ID)
	assert.Len(t, out.Categories, 2)
}

func TestEditProductSource_CantidadInvalidaNoModifica(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()
	cat, err := uc.AddCategory(ctx, dto.CategoryForm{Name: "A"})
	require.NoError(t, err)
	p, err := uc.AddProduct(ctx, dto.ProductForm{Name: "p", Price: "1", CategoryID: cat.ID})
	require.NoError(t, err)
	s, err := uc.AddSeller(ctx, dto.SellerForm{Name: "S"})
	require.NoError(t, err)
	src, err := uc.AddProductSource(ctx, dto.ProductSourceForm{ProductID: p.ID, SellerID: s.ID, Quantity: "4"})
	require.NoError(t, err)

	_, err = uc.EditProductSource(ctx, src.ID, dto.ProductSourceForm{ProductID: p.ID, SellerID: s.ID, Quantity: "cuatro"})
	assert.True(t, errors.Is(err, domain.ErrValidation))

	got, err := uc.GetProductSource(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.ProductSource.Quantity)
	assert.Len(t, got.Products, 1)
	assert.Len(t, got.Sellers, 1)
}

func TestIndex_CuatroColecciones(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	idx, err := uc.Index(ctx)
	require.NoError(t, err)
	assert.Empty(t, idx.Categories)

	_, err = uc.AddSeller(ctx, dto.SellerForm{Name: "S"})
	require.NoError(t, err)
	idx, err = uc.Index(ctx)
	require.NoError(t, err)
	require.Len(t, idx.Sellers, 1)
	assert.Equal(t, "S", idx.Sellers[0].Name)
}
