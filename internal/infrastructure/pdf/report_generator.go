// Package pdf implementa los reportes imprimibles con Maroto v2: el estado
// de stock derivado y el historial de movimientos por rango de fechas.
//
// Layout de la página A4 (ambos reportes):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del reporte  │  Fecha de generación         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: una fila por producto / movimiento                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: totales del reporte                                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/stock-manager-pro/internal/application/dto"
	"github.com/tu-usuario/stock-manager-pro/internal/domain/stock"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 180, Green: 30, Blue: 30}
)

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()
	return maroto.New(cfg)
}

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow(title, subtitle string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(subtitle, props.Text{Size: 8, Top: 9, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Generado: "+time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 1, Color: colorGray,
			}),
		),
	)
}

// ── Reporte de stock ──────────────────────────────────────────────────────────

// StockReportPDF genera el reporte imprimible del estado de stock derivado.
func StockReportPDF(rows []dto.StockRowResponse) ([]byte, error) {
	m := newDocument("Estado de stock")

	lowCount := 0
	for _, r := range rows {
		if r.Status == string(stock.StatusLow) {
			lowCount++
		}
	}

	m.AddRows(headerRow("Estado de stock", fmt.Sprintf("%d productos, %d bajo mínimo", len(rows), lowCount)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(stockTableHeader())
	for _, r := range rows {
		m.AddRows(stockTableRow(r))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar reporte de stock: %w", err)
	}
	return doc.GetBytes(), nil
}

func stockTableHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Producto", 4, align.Left),
		h("Categoría", 2, align.Left),
		h("Inicial", 1, align.Right),
		h("Entradas", 1, align.Right),
		h("Salidas", 1, align.Right),
		h("Actual", 1, align.Right),
		h("Mín.", 1, align.Right),
		h("Estado", 1, align.Center),
	)
}

func stockTableRow(r dto.StockRowResponse) core.Row {
	statusColor := colorGray
	if r.Status == string(stock.StatusLow) {
		statusColor = colorDanger
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
		}))
	}
	return row.New(6).Add(
		cell(r.Name, 4, align.Left),
		cell(r.Category, 2, align.Left),
		cell(fmt.Sprintf("%d", r.InitialStock), 1, align.Right),
		cell(r.TotalIn.String(), 1, align.Right),
		cell(r.TotalOut.String(), 1, align.Right),
		cell(r.CurrentStock.String(), 1, align.Right),
		cell(fmt.Sprintf("%d", r.MinLimit), 1, align.Right),
		col.New(1).Add(text.New(r.Status, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center,
			Color: statusColor, Top: 1,
		})),
	)
}

// ── Historial de movimientos ──────────────────────────────────────────────────

// HistoryPDF genera el reporte imprimible del historial por rango de fechas,
// con los totales de entradas y salidas al pie.
func HistoryPDF(h *dto.HistoryResponse) ([]byte, error) {
	m := newDocument("Historial de movimientos")

	m.AddRows(headerRow("Historial de movimientos", fmt.Sprintf("Del %s al %s, %d movimientos", h.From, h.To, len(h.Items))))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(historyTableHeader())
	for _, item := range h.Items {
		m.AddRows(historyTableRow(item))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(historyTotalsRow(h))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar historial: %w", err)
	}
	return doc.GetBytes(), nil
}

func historyTableHeader() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Fecha", 3, align.Left),
		h("Producto", 4, align.Left),
		h("Tipo", 1, align.Center),
		h("Cantidad", 1, align.Right),
		h("Notas", 3, align.Left),
	)
}

func historyTableRow(m dto.MovementResponse) core.Row {
	tipo := "Entrada"
	tipoColor := colorPrimary
	if m.Type == "out" {
		tipo = "Salida"
		tipoColor = colorDanger
	}
	return row.New(6).Add(
		col.New(3).Add(text.New(m.Date, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(m.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(1).Add(text.New(tipo, props.Text{
			Size: 8, Align: align.Center, Color: tipoColor, Top: 1,
		})),
		col.New(1).Add(text.New(fmt.Sprintf("%d", m.Quantity), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
		col.New(3).Add(text.New(m.Notes, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
	)
}

// historyTotalsRow: bloque de totales alineado a la derecha.
func historyTotalsRow(h *dto.HistoryResponse) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(14).Add(
		col.New(6),
		col.New(3).Add(
			label("Total entradas:"),
			label("Total salidas:"),
		),
		col.New(3).Add(
			value(h.TotalIn.String()),
			value(h.TotalOut.String()),
		),
	)
}
