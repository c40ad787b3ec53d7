package dto

// IndexResponse listado completo para la página principal.
type IndexResponse struct {
	Categories     []CategoryResponse      `json:"categories"`
	Products       []ProductResponse       `json:"products"`
	Sellers        []SellerResponse        `json:"sellers"`
	ProductSources []ProductSourceResponse `json:"product_sources"`
}

// EditProductResponse valores actuales del producto y las categorías elegibles.
type EditProductResponse struct {
	Product    ProductResponse    `json:"product"`
	Categories []CategoryResponse `json:"categories"`
}

// EditProductSourceResponse valores actuales del stock y las opciones del formulario.
type EditProductSourceResponse struct {
	ProductSource ProductSourceResponse `json:"product_source"`
	Products      []ProductResponse     `json:"products"`
	Sellers       []SellerResponse      `json:"sellers"`
}
