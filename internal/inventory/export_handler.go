package inventory

import (
	"fmt"

	"distribuidora-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// GET /api/stock-export
// Gera a planilha de conferência da filial, uma linha por item na ordem dos
// grupos, com números já no formato pt-BR.
func ExportStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		branchID, err := resolveBranchIDFromQueryOrRole(c)
		if err != nil {
			return err
		}

		items, err := backend.ListItems(branchID)
		if err != nil {
			return stockError(err)
		}
		decls, err := backend.ListDeclarations(branchID)
		if err != nil {
			return stockError(err)
		}

		grouped := stock.Group(items)
		grouped.MergeDeclarations(decls)
		flat := grouped.Flatten()

		f := excelize.NewFile()
		defer f.Close()

		sheet := "Estoque"
		f.SetSheetName("Sheet1", sheet)

		headers := []string{"Código", "Marca", "Modelo", "Caixas", "Unid/Caixa", "Total Unid", "Preço Caixa", "Preço Unit", "Preço Compra"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, h)
		}

		row := 2
		for _, it := range flat {
			if it.Placeholder {
				// Categoria declarada sem itens: linha só com marca/modelo
				f.SetCellValue(sheet, fmt.Sprintf("B%d", row), stock.BrandLabel(it.Brand))
				f.SetCellValue(sheet, fmt.Sprintf("C%d", row), stock.ModelLabel(it.Model))
				row++
				continue
			}

			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), it.Code)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), stock.BrandLabel(it.Brand))
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), stock.ModelLabel(it.Model))
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), it.BoxCount)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), it.UnitsPerBox)
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), it.TotalUnits)
			f.SetCellValue(sheet, fmt.Sprintf("G%d", row), stock.FormatLocaleNumber(it.BoxPrice, 2))
			f.SetCellValue(sheet, fmt.Sprintf("H%d", row), stock.FormatLocaleNumber(it.UnitPrice, 2))
			f.SetCellValue(sheet, fmt.Sprintf("I%d", row), stock.FormatLocaleNumber(it.PurchasePrice, 2))
			row++
		}

		totals := stock.ComputeTotals(flat)
		row++
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Totais")
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), totals.TotalBoxes)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), totals.TotalUnits)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), stock.FormatLocaleNumber(totals.TotalValue, 2))

		buf, err := f.WriteToBuffer()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Planilha não pôde ser gerada: "+err.Error())
		}

		c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="estoque-%s.xlsx"`, branchID))
		return c.Send(buf.Bytes())
	}
}
