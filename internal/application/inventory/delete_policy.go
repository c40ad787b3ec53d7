package inventory

import (
	"fmt"
	"strings"

	"github.com/jhoicas/inventario-web/internal/domain"
)

// DeletePolicy decide qué pasa con los registros dependientes al borrar una Category,
// un Product o un Seller.
type DeletePolicy string

const (
	// DeleteOrphan borra solo la fila; los dependientes quedan apuntando a un ID inexistente.
	DeleteOrphan DeletePolicy = "orphan"
	// DeleteRestrict rechaza el borrado con domain.ErrConflict si existen dependientes.
	DeleteRestrict DeletePolicy = "restrict"
	// DeleteCascade borra primero los dependientes en la misma transacción.
	DeleteCascade DeletePolicy = "cascade"
)

// ParseDeletePolicy interpreta el valor de configuración. Vacío equivale a DeleteOrphan.
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch p := DeletePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DeleteOrphan, nil
	case DeleteOrphan, DeleteRestrict, DeleteCascade:
		return p, nil
	default:
		return "", fmt.Errorf("%w: política de borrado %q", domain.ErrInvalidInput, s)
	}
}
