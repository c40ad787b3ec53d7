package main

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/inventario-web/internal/application/dto"
	"github.com/jhoicas/inventario-web/internal/application/inventory"
)

type catalog struct {
	Categories []catalogCategory `xml:"category"`
	Sellers    []catalogSeller   `xml:"seller"`
}

type catalogCategory struct {
	Name     string           `xml:"name,attr"`
	Products []catalogProduct `xml:"product"`
}

type catalogProduct struct {
	Name  string `xml:"name,attr"`
	Price string `xml:"price,attr"`
}

type catalogSeller struct {
	Name  string         `xml:"name,attr"`
	Stock []catalogStock `xml:"stock"`
}

type catalogStock struct {
	Product  string `xml:"product,attr"`
	Quantity string `xml:"quantity,attr"`
}

// summary conteo de filas creadas.
type summary struct {
	Categories, Products, Sellers, Stock int
}

func parseCatalog(r io.Reader) (*catalog, error) {
	var c catalog
	dec := xml.NewDecoder(r)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		switch strings.ToUpper(charset) {
		case "ISO-8859-1", "ISO8859-1", "LATIN1":
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		case "WINDOWS-1252", "CP1252":
			return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decodificar XML: %w", err)
	}
	return &c, nil
}

// load crea el catálogo a través del caso de uso, así las referencias y la conversión de
// precios y cantidades siguen las reglas normales. Los stocks referencian productos por nombre.
// Ante un error devuelve lo creado hasta ese momento, que queda persistido.
func load(ctx context.Context, uc *inventory.UseCase, c *catalog) (summary, error) {
	var s summary
	productIDs := make(map[string]string)

	for _, cat := range c.Categories {
		created, err := uc.AddCategory(ctx, dto.CategoryForm{Name: strings.TrimSpace(cat.Name)})
		if err != nil {
			return s, fmt.Errorf("categoría %q: %w", cat.Name, err)
		}
		s.Categories++
		for _, p := range cat.Products {
			name := strings.TrimSpace(p.Name)
			if _, dup := productIDs[name]; dup {
				return s, fmt.Errorf("producto %q duplicado en el catálogo", name)
			}
			prod, err := uc.AddProduct(ctx, dto.ProductForm{Name: name, Price: p.Price, CategoryID: created.ID})
			if err != nil {
				return s, fmt.Errorf("producto %q: %w", name, err)
			}
			productIDs[name] = prod.ID
			s.Products++
		}
	}

	for _, sel := range c.Sellers {
		created, err := uc.AddSeller(ctx, dto.SellerForm{Name: strings.TrimSpace(sel.Name)})
		if err != nil {
			return s, fmt.Errorf("vendedor %q: %w", sel.Name, err)
		}
		s.Sellers++
		for _, st := range sel.Stock {
			productID, ok := productIDs[strings.TrimSpace(st.Product)]
			if !ok {
				return s, fmt.Errorf("stock de %q: producto %q no está en el catálogo", sel.Name, st.Product)
			}
			_, err := uc.AddProductSource(ctx, dto.ProductSourceForm{
				ProductID: productID,
				SellerID:  created.ID,
				Quantity:  st.Quantity,
			})
			if err != nil {
				return s, fmt.Errorf("stock de %q en %q: %w", st.Product, sel.Name, err)
			}
			s.Stock++
		}
	}
	return s, nil
}
