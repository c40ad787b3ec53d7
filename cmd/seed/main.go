// seed carga un catálogo XML (categorías, productos, vendedores y stock) en el almacenamiento
// configurado.
//
// Uso: go run ./cmd/seed [ruta/catalog.xml]
// Por defecto busca catalog.xml en el directorio actual. El XML puede venir en ISO-8859-1.
// STORE_DRIVER=memory se rechaza: el catálogo se perdería al terminar el proceso.
//
// La carga no es atómica. Cada fila se crea en su propia transacción, así que un error a mitad
// de camino deja en el almacenamiento lo creado hasta ese punto; el log de "carga interrumpida"
// indica cuántas filas de cada tipo alcanzaron a crearse.
//
//	<catalog>
//	  <category name="Herramientas">
//	    <product name="Martillo" price="10.00"/>
//	  </category>
//	  <seller name="Ferretería Central">
//	    <stock product="Martillo" quantity="4"/>
//	  </seller>
//	</catalog>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jhoicas/inventario-web/internal/application/inventory"
	"github.com/jhoicas/inventario-web/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-web/pkg/config"
	"github.com/jhoicas/inventario-web/pkg/logger"
)

func main() {
	xmlPath := "catalog.xml"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Name: "seed"})
	if err := checkDriver(cfg.Store.Driver); err != nil {
		log.Fatal().Err(err).Msg("driver de almacenamiento")
	}

	f, err := os.Open(xmlPath)
	if err != nil {
		log.Fatal().Err(err).Str("file", xmlPath).Msg("abrir XML")
	}
	defer f.Close()

	c, err := parseCatalog(f)
	if err != nil {
		log.Fatal().Err(err).Str("file", xmlPath).Msg("leer catálogo")
	}

	ctx := context.Background()
	tx, closeStore, err := backend.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer closeStore()

	policy, err := inventory.ParseDeletePolicy(cfg.Store.DeletePolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("política de borrado")
	}
	uc := inventory.NewUseCase(inventory.NewStore(tx, policy))

	s, err := load(ctx, uc, c)
	if err != nil {
		log.Error().Err(err).
			Int("categories", s.Categories).Int("products", s.Products).
			Int("sellers", s.Sellers).Int("stock", s.Stock).
			Msg("carga interrumpida")
		closeStore()
		os.Exit(1)
	}
	log.Info().
		Int("categories", s.Categories).Int("products", s.Products).
		Int("sellers", s.Sellers).Int("stock", s.Stock).
		Msg("catálogo cargado")
}

// checkDriver exige un backend persistente.
func checkDriver(driver string) error {
	if driver == config.DriverMemory {
		return fmt.Errorf("STORE_DRIVER=%s no persiste el catálogo; use %s o %s",
			driver, config.DriverSQLite, config.DriverPostgres)
	}
	return nil
}
