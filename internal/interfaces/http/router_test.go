package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-web/internal/application/analytics"
	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/infrastructure/chart"
	"github.com/jhoicas/inventario-web/internal/infrastructure/memory"
	"github.com/jhoicas/inventario-web/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/inventario-web/internal/interfaces/http"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func buildTestApp(t *testing.T, policy inventory.DeletePolicy) *fiber.App {
	t.Helper()
	return buildTestAppWith(t, policy, fiber.Config{Immutable: true})
}

func buildTestAppWith(t *testing.T, policy inventory.DeletePolicy, cfg fiber.Config) *fiber.App {
	t.Helper()
	store := inventory.NewStore(memory.New(), policy)
	renderer, err := chart.New(320, 240, "")
	require.NoError(t, err)

	log := logger.Nop()
	cfg.ErrorHandler = apphttp.ErrorHandler(log)
	app := fiber.New(cfg)
	apphttp.Router(app, apphttp.RouterDeps{
		InventoryUC: inventory.NewUseCase(store),
		AssetsUC:    analytics.NewAssetsUseCase(store, renderer, pdf.NewMarotoReportGenerator("test")),
		Logger:      log,
		ServiceName: "inventario-test",
	})
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out), string(body))
}

func index(t *testing.T, app *fiber.App) dto.IndexResponse {
	t.Helper()
	var out dto.IndexResponse
	resp := get(t, app, "/")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &out)
	return out
}

// seedBasic crea categoría A, producto p1 (10.00), vendedor S y 3 unidades de p1 en S.
func seedBasic(t *testing.T, app *fiber.App) dto.IndexResponse {
	t.Helper()
	require.Equal(t, fiber.StatusSeeOther, postForm(t, app, "/add_category", url.Values{"name": {"A"}}).StatusCode)
	catID := index(t, app).Categories[0].ID

	require.Equal(t, fiber.StatusSeeOther, postForm(t, app, "/add_product", url.Values{
		"name": {"p1"}, "price": {"10.00"}, "category_id": {catID},
	}).StatusCode)
	require.Equal(t, fiber.StatusSeeOther, postForm(t, app, "/add_seller", url.Values{"name": {"S"}}).StatusCode)

	idx := index(t, app)
	require.Equal(t, fiber.StatusSeeOther, postForm(t, app, "/add_product_source", url.Values{
		"product_id": {idx.Products[0].ID}, "seller_id": {idx.Sellers[0].ID}, "quantity": {"3"},
	}).StatusCode)
	return index(t, app)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	var body map[string]string
	decode(t, get(t, buildTestApp(t, inventory.DeleteOrphan), "/health"), &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "inventario-test", body["service"])
}

func TestAddCategory_RedirigeAlIndice(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)

	resp := postForm(t, app, "/add_category", url.Values{"name": {"Herramientas"}})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))

	idx := index(t, app)
	require.Len(t, idx.Categories, 1)
	assert.Equal(t, "Herramientas", idx.Categories[0].Name)
}

func TestAddCategory_JSON(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)
	req := httptest.NewRequest(http.MethodPost, "/add_category", strings.NewReader(`{"name":"Pinturas"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "Pinturas", index(t, app).Categories[0].Name)
}

func TestAddCategory_SinNombre(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)

	var body dto.ErrorResponse
	resp := postForm(t, app, "/add_category", url.Values{})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "VALIDATION", body.Code)
}

func TestAddCategory_SinContentType(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/add_category", strings.NewReader("name=x")), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAddProduct_CategoriaInexistente(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)

	resp := postForm(t, app, "/add_product", url.Values{
		"name": {"p"}, "price": {"1"}, "category_id": {uuid.NewString()},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, index(t, app).Products)
}

func TestAddProduct_PrecioNoNumerico(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)
	postForm(t, app, "/add_category", url.Values{"name": {"A"}})
	catID := index(t, app).Categories[0].ID

	resp := postForm(t, app, "/add_product", url.Values{
		"name": {"p"}, "price": {"diez"}, "category_id": {catID},
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEditProduct_GetDevuelveOpciones(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)
	idx := seedBasic(t, app)

	var out dto.EditProductResponse
	resp := get(t, app, "/edit_product/"+idx.Products[0].ID)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &out)
	assert.Equal(t, "p1", out.Product.Name)
	assert.True(t, out.Product.Price.Equal(decimal.RequireFromString("10")))
	require.Len(t, out.Categories, 1)
	assert.Equal(t, idx.Categories[0].ID, out.Categories[0].ID)
}

func TestEditProduct_CategoriaInexistenteNoModifica(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)
	idx := seedBasic(t, app)
	p := idx.Products[0]

	resp := postForm(t, app, "/edit_product/"+p.ID, url.Values{
		"name": {"cambiado"}, "price": {"99"}, "category_id": {uuid.NewString()},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	after := index(t, app).Products[0]
	assert.Equal(t, p.CategoryID, after.CategoryID)
	assert.Equal(t, "p1", after.Name)
}

func TestEdit_IDInexistente(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)
	for _, path := range []string{
		"/edit_category/" + uuid.NewString(),
		"/edit_seller/no-es-un-uuid",
		"/edit_product/" + uuid.NewString(),
		"/edit_product_source/" + uuid.NewString(),
	} {
		assert.Equal(t, fiber.StatusNotFound, get(t, app, path).StatusCode, path)
	}
	assert.Equal(t, fiber.StatusNotFound,
		postForm(t, app, "/delete_category/"+uuid.NewString(), nil).StatusCode)
}

func TestEditProductSource_Cantidad(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)
	idx := seedBasic(t, app)
	src := idx.ProductSources[0]

	resp := postForm(t, app, "/edit_product_source/"+src.ID, url.Values{
		"product_id": {src.ProductID}, "seller_id": {src.SellerID}, "quantity": {"12"},
	})
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	var out dto.EditProductSourceResponse
	decode(t, get(t, app, "/edit_product_source/"+src.ID), &out)
	assert.Equal(t, int64(12), out.ProductSource.Quantity)
	assert.Len(t, out.Products, 1)
	assert.Len(t, out.Sellers, 1)
}

func TestDeleteSeller_DejaStockHuerfano(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)
	idx := seedBasic(t, app)
	sellerID := idx.Sellers[0].ID

	assert.Equal(t, fiber.StatusSeeOther, postForm(t, app, "/delete_seller/"+sellerID, nil).StatusCode)
	assert.Equal(t, fiber.StatusNotFound, get(t, app, "/edit_seller/"+sellerID).StatusCode)

	after := index(t, app)
	require.Len(t, after.ProductSources, 1)
	assert.Equal(t, sellerID, after.ProductSources[0].SellerID)
}

func TestDeleteCategory_Restrict(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteRestrict)
	idx := seedBasic(t, app)

	resp := postForm(t, app, "/delete_category/"+idx.Categories[0].ID, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Len(t, index(t, app).Categories, 1)
}

func TestAssetsJSON(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)
	seedBasic(t, app)
	postForm(t, app, "/add_category", url.Values{"name": {"C"}})

	var out dto.AssetsReportDTO
	resp := get(t, app, "/api/assets")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &out)
	assert.True(t, out.ByName["A"].Equal(decimal.RequireFromString("10")))
	assert.True(t, out.ByName["C"].IsZero())
	assert.Len(t, out.Items, 2)
}

func TestAssets_ReferenciaColgante(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)
	idx := seedBasic(t, app)
	postForm(t, app, "/delete_category/"+idx.Categories[0].ID, nil)

	assert.Equal(t, fiber.StatusUnprocessableEntity, get(t, app, "/api/assets").StatusCode)
	assert.Equal(t, fiber.StatusUnprocessableEntity, get(t, app, "/assets_chart").StatusCode)
}

func TestStockBySellerJSON(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)
	seedBasic(t, app)

	var out []dto.SellerStockDTO
	decode(t, get(t, app, "/api/stock_by_seller"), &out)
	require.Len(t, out, 1)
	assert.Equal(t, int64(3), out[0].Units)
	assert.True(t, out[0].Value.Equal(decimal.RequireFromString("30")))
}

func TestAssetsChart_PNG(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)
	seedBasic(t, app)

	resp := get(t, app, "/assets_chart")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(body), "\x89PNG"))
}

func TestAssetsReportPDF(t *testing.T) {
	app := buildTestApp(t, inventory.DeleteOrphan)
	seedBasic(t, app)

	resp := get(t, app, "/assets_report.pdf")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "inventario-")
}

func TestRutaInexistente(t *testing.T) {
	var body dto.ErrorResponse
	resp := get(t, buildTestApp(t, inventory.DeleteOrphan), "/no-existe")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	decode(t, resp, &body)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestFormularios_NombresNoCambianConRequestsPosteriores(t *testing.T) {
	for name, cfg := range map[string]fiber.Config{
		"Immutable":    {Immutable: true},
		"SinImmutable": {},
	} {
		t.Run(name, func(t *testing.T) {
			app := buildTestAppWith(t, inventory.DeleteOrphan, cfg)

			resp := postForm(t, app, "/add_category", url.Values{"name": {"Bebidas"}})
			require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
			for i := 0; i < 50; i++ {
				resp := postForm(t, app, "/add_seller", url.Values{"name": {"ZZZZZZZ"}})
				require.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
			}

			out := index(t, app)
			require.Len(t, out.Categories, 1)
			assert.Equal(t, "Bebidas", out.Categories[0].Name)
			require.Len(t, out.Sellers, 50)
		})
	}
}
