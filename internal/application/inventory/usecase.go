package inventory

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/domain"
	"github.com/jhoicas/inventario-web/internal/domain/entity"
)

// UseCase es la superficie que usan los handlers: convierte los campos de texto del formulario
// a valores tipados y delega en el Store. No agrega reglas de negocio propias.
type UseCase struct {
	store    *Store
	validate *validator.Validate
}

// NewUseCase construye el caso de uso.
func NewUseCase(store *Store) *UseCase {
	return &UseCase{store: store, validate: validator.New()}
}

// Index devuelve las cuatro colecciones para la página principal.
func (uc *UseCase) Index(ctx context.Context) (*dto.IndexResponse, error) {
	snap, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.IndexResponse{
		Categories:     toCategoryResponses(snap.Categories),
		Products:       toProductResponses(snap.Products),
		Sellers:        toSellerResponses(snap.Sellers),
		ProductSources: toProductSourceResponses(snap.ProductSources),
	}, nil
}

// ── Category ─────────────────────────────────────────────────────────────────

// AddCategory crea una categoría.
func (uc *UseCase) AddCategory(ctx context.Context, in dto.CategoryForm) (*dto.CategoryResponse, error) {
	if err := uc.check(in); err != nil {
		return nil, err
	}
	c, err := uc.store.CreateCategory(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetCategory obtiene una categoría para precargar el formulario de edición.
func (uc *UseCase) GetCategory(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	if err := pathID(id); err != nil {
		return nil, err
	}
	c, err := uc.store.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// EditCategory reemplaza el nombre de la categoría.
func (uc *UseCase) EditCategory(ctx context.Context, id string, in dto.CategoryForm) (*dto.CategoryResponse, error) {
	if err := pathID(id); err != nil {
		return nil, err
	}
	if err := uc.check(in); err != nil {
		return nil, err
	}
	c, err := uc.store.UpdateCategory(ctx, id, in.Name)
	if err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// DeleteCategory borra una categoría.
func (uc *UseCase) DeleteCategory(ctx context.Context, id string) error {
	if err := pathID(id); err != nil {
		return err
	}
	return uc.store.DeleteCategory(ctx, id)
}

// ── Product ──────────────────────────────────────────────────────────────────

// AddProduct crea un producto.
func (uc *UseCase) AddProduct(ctx context.Context, in dto.ProductForm) (*dto.ProductResponse, error) {
	f, err := uc.productFields(in)
	if err != nil {
		return nil, err
	}
	p, err := uc.store.CreateProduct(ctx, f)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// GetProduct obtiene el producto junto con las categorías elegibles.
func (uc *UseCase) GetProduct(ctx context.Context, id string) (*dto.EditProductResponse, error) {
	if err := pathID(id); err != nil {
		return nil, err
	}
	p, err := uc.store.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	categories, err := uc.store.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EditProductResponse{
		Product:    *toProductResponse(p),
		Categories: toCategoryResponses(categories),
	}, nil
}

// EditProduct reemplaza nombre, precio y categoría del producto.
func (uc *UseCase) EditProduct(ctx context.Context, id string, in dto.ProductForm) (*dto.ProductResponse, error) {
	if err := pathID(id); err != nil {
		return nil, err
	}
	f, err := uc.productFields(in)
	if err != nil {
		return nil, err
	}
	p, err := uc.store.UpdateProduct(ctx, id, f)
	if err != nil {
		return nil, err
	}
	return toProductResponse(p), nil
}

// DeleteProduct borra un producto.
func (uc *UseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := pathID(id); err != nil {
		return err
	}
	return uc.store.DeleteProduct(ctx, id)
}

// ── Seller ───────────────────────────────────────────────────────────────────

// AddSeller crea un vendedor.
func (uc *UseCase) AddSeller(ctx context.Context, in dto.SellerForm) (*dto.SellerResponse, error) {
	if err := uc.check(in); err != nil {
		return nil, err
	}
	s, err := uc.store.CreateSeller(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	return toSellerResponse(s), nil
}

// GetSeller obtiene un vendedor para precargar el formulario de edición.
func (uc *UseCase) GetSeller(ctx context.Context, id string) (*dto.SellerResponse, error) {
	if err := pathID(id); err != nil {
		return nil, err
	}
	s, err := uc.store.GetSeller(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSellerResponse(s), nil
}

// EditSeller reemplaza el nombre del vendedor.
func (uc *UseCase) EditSeller(ctx context.Context, id string, in dto.SellerForm) (*dto.SellerResponse, error) {
	if err := pathID(id); err != nil {
		return nil, err
	}
	if err := uc.check(in); err != nil {
		return nil, err
	}
	s, err := uc.store.UpdateSeller(ctx, id, in.Name)
	if err != nil {
		return nil, err
	}
	return toSellerResponse(s), nil
}

// DeleteSeller borra un vendedor.
func (uc *UseCase) DeleteSeller(ctx context.Context, id string) error {
	if err := pathID(id); err != nil {
		return err
	}
	return uc.store.DeleteSeller(ctx, id)
}

// ── ProductSource ────────────────────────────────────────────────────────────

// AddProductSource registra stock de un producto en un vendedor.
func (uc *UseCase) AddProductSource(ctx context.Context, in dto.ProductSourceForm) (*dto.ProductSourceResponse, error) {
	f, err := uc.productSourceFields(in)
	if err != nil {
		return nil, err
	}
	src, err := uc.store.CreateProductSource(ctx, f)
	if err != nil {
		return nil, err
	}
	return toProductSourceResponse(src), nil
}

// GetProductSource obtiene el registro de stock con productos y vendedores elegibles.
func (uc *UseCase) GetProductSource(ctx context.Context, id string) (*dto.EditProductSourceResponse, error) {
	if err := pathID(id); err != nil {
		return nil, err
	}
	src, err := uc.store.GetProductSource(ctx, id)
	if err != nil {
		return nil, err
	}
	snap, err := uc.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EditProductSourceResponse{
		ProductSource: *toProductSourceResponse(src),
		Products:      toProductResponses(snap.Products),
		Sellers:       toSellerResponses(snap.Sellers),
	}, nil
}

// EditProductSource reemplaza producto, vendedor y cantidad.
func (uc *UseCase) EditProductSource(ctx context.Context, id string, in dto.ProductSourceForm) (*dto.ProductSourceResponse, error) {
	if err := pathID(id); err != nil {
		return nil, err
	}
	f, err := uc.productSourceFields(in)
	if err != nil {
		return nil, err
	}
	src, err := uc.store.UpdateProductSource(ctx, id, f)
	if err != nil {
		return nil, err
	}
	return toProductSourceResponse(src), nil
}

// DeleteProductSource borra un registro de stock.
func (uc *UseCase) DeleteProductSource(ctx context.Context, id string) error {
	if err := pathID(id); err != nil {
		return err
	}
	return uc.store.DeleteProductSource(ctx, id)
}

// ── Conversión de entradas ───────────────────────────────────────────────────

func (uc *UseCase) check(in any) error {
	err := uc.validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("%w: %s no cumple %q", domain.ErrValidation, strings.ToLower(fe.Field()), fe.Tag())
	}
	return fmt.Errorf("%w: %v", domain.ErrValidation, err)
}

func (uc *UseCase) productFields(in dto.ProductForm) (ProductFields, error) {
	if err := uc.check(in); err != nil {
		return ProductFields{}, err
	}
	price, err := ParsePrice(in.Price)
	if err != nil {
		return ProductFields{}, err
	}
	categoryID, err := ParseRef("category_id", in.CategoryID)
	if err != nil {
		return ProductFields{}, err
	}
	return ProductFields{Name: in.Name, Price: price, CategoryID: categoryID}, nil
}

func (uc *UseCase) productSourceFields(in dto.ProductSourceForm) (ProductSourceFields, error) {
	if err := uc.check(in); err != nil {
		return ProductSourceFields{}, err
	}
	productID, err := ParseRef("product_id", in.ProductID)
	if err != nil {
		return ProductSourceFields{}, err
	}
	sellerID, err := ParseRef("seller_id", in.SellerID)
	if err != nil {
		return ProductSourceFields{}, err
	}
	qty, err := ParseQuantity(in.Quantity)
	if err != nil {
		return ProductSourceFields{}, err
	}
	return ProductSourceFields{ProductID: productID, SellerID: sellerID, Quantity: qty}, nil
}

// ParsePrice convierte el texto del formulario en un precio no negativo.
func ParsePrice(s string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: price %q no es numérico", domain.ErrValidation, s)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: price no puede ser negativo", domain.ErrValidation)
	}
	return price, nil
}

// ParseQuantity convierte el texto del formulario en una cantidad entera no negativa.
func ParseQuantity(s string) (int64, error) {
	q, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: quantity %q no es un entero", domain.ErrValidation, s)
	}
	if q < 0 {
		return 0, fmt.Errorf("%w: quantity no puede ser negativa", domain.ErrValidation)
	}
	return q, nil
}

// ParseRef valida un ID recibido en un campo del formulario y lo devuelve en forma canónica.
func ParseRef(field, s string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return "", fmt.Errorf("%w: %s %q no es un ID válido", domain.ErrValidation, field, s)
	}
	return id.String(), nil
}

// pathID un ID mal formado en la ruta equivale a un recurso inexistente.
func pathID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: id %q", domain.ErrNotFound, id)
	}
	return nil
}

// ── Mappers ──────────────────────────────────────────────────────────────────

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	if c == nil {
		return nil
	}
	return &dto.CategoryResponse{ID: c.ID, Name: c.Name, CreatedAt: c.CreatedAt, UpdatedAt: c.UpdatedAt}
}

func toCategoryResponses(list []*entity.Category) []dto.CategoryResponse {
	items := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCategoryResponse(c))
	}
	return items
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		Name:       p.Name,
		Price:      p.Price,
		CategoryID: p.CategoryID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toProductResponses(list []*entity.Product) []dto.ProductResponse {
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items
}

func toSellerResponse(s *entity.Seller) *dto.SellerResponse {
	if s == nil {
		return nil
	}
	return &dto.SellerResponse{ID: s.ID, Name: s.Name, CreatedAt: s.CreatedAt, UpdatedAt: s.UpdatedAt}
}

func toSellerResponses(list []*entity.Seller) []dto.SellerResponse {
	items := make([]dto.SellerResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSellerResponse(s))
	}
	return items
}

func toProductSourceResponse(src *entity.ProductSource) *dto.ProductSourceResponse {
	if src == nil {
		return nil
	}
	return &dto.ProductSourceResponse{
		ID:        src.ID,
		ProductID: src.ProductID,
		SellerID:  src.SellerID,
		Quantity:  src.Quantity,
		CreatedAt: src.CreatedAt,
		UpdatedAt: src.UpdatedAt,
	}
}

func toProductSourceResponses(list []*entity.ProductSource) []dto.ProductSourceResponse {
	items := make([]dto.ProductSourceResponse, 0, len(list))
	for _, src := range list {
		items = append(items, *toProductSourceResponse(src))
	}
	return items
}
