// Conciliación por lotes de un libro .xlsx desde la línea de comandos, sin
// levantar la API:
//
//	reconcile -in movimientos.xlsx -out conciliado.xlsx
//
// Código de salida 0 con o sin filas de error (las filas irresolubles van a
// la hoja ERRORS del libro de salida); distinto de cero solo ante un libro
// ilegible o una hoja de productos incompleta.
package main

import (
	"flag"
	"os"

	"github.com/tu-usuario/stock-manager-pro/internal/application/batch"
	"github.com/tu-usuario/stock-manager-pro/internal/infrastructure/excel"
	"github.com/tu-usuario/stock-manager-pro/pkg/logger"
)

func main() {
	var (
		inPath  = flag.String("in", "", "libro .xlsx de entrada (hojas PRODUCTS y MOVEMENTS)")
		outPath = flag.String("out", "conciliado.xlsx", "libro .xlsx de salida")
		env     = flag.String("env", "development", "development o production (formato de log)")
	)
	flag.Parse()

	log := logger.New(logger.Config{Env: *env, Level: "info"})
	if *inPath == "" {
		log.Fatal().Msg("falta el flag -in con el libro de entrada")
	}

	in, err := os.Open(*inPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *inPath).Msg("abrir libro de entrada")
	}
	defer in.Close()

	uc := batch.NewReconcileUseCase(excel.NewReader(), excel.NewWriter(), log)
	res, out, err := uc.Run(in)
	if err != nil {
		log.Fatal().Err(err).Msg("conciliación fallida")
	}

	if err := os.WriteFile(*outPath, out, 0o644); err != nil {
		log.Fatal().Err(err).Str("path", *outPath).Msg("escribir libro de salida")
	}

	log.Info().
		Str("run_id", res.RunID).
		Str("out", *outPath).
		Int("products", len(res.Workbook.Catalog)).
		Int("movement_rows", len(res.Workbook.Rows)).
		Int("errors", len(res.Errors)).
		Msg("conciliación escrita")
}
