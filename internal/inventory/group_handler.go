package inventory

import (
	"fmt"
	"strings"

	"distribuidora-backend/internal/audit"
	"distribuidora-backend/internal/models"
	"distribuidora-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

// DELETE /api/stock-groups?brand=&model=&container_id=
// Exclui o grupo (marca, modelo) inteiro da filial. Grupo lastreado só por uma
// declaração vazia remove a declaração; grupo com itens reais remove todos de
// uma vez no backend. Sem desfazer.
func DeleteStockGroupHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		brand := c.Query("brand")
		model := c.Query("model")
		container := c.Query("container_id")

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

		bucket := groupBucket(grouped, brand, model)

		containerID := container
		if containerID == "" {
			for _, it := range bucket {
				if it.ContainerID != "" {
					containerID = it.ContainerID
					break
				}
			}
		}

		if err := stock.DeleteGroup(backend, brand, model, containerID, bucket); err != nil {
			return stockError(err)
		}

		userID, userName, auditBranch := getUserInfo(c)
		_ = audit.WriteLog(audit.LogOptions{
			BranchID:    auditBranch,
			UserID:      userID,
			UserName:    userName,
			EntityType:  "stock_group",
			EntityID:    strings.ToLower(stock.BrandLabel(brand)) + "/" + stock.ModelLabel(model),
			Action:      models.AuditActionDelete,
			Description: fmt.Sprintf("Grupo excluído: %s %s (%d linhas)", stock.BrandLabel(brand), stock.ModelLabel(model), len(bucket)),
			Before:      bucket,
		})

		return c.JSON(fiber.Map{
			"deleted": len(bucket),
		})
	}
}

// groupBucket: linhas do balde (marca, modelo), casando marca sem diferenciar
// maiúsculas, igual ao agrupamento.
func groupBucket(g *stock.Grouped, brand, model string) []stock.Item {
	wantBrand := strings.ToLower(stock.BrandLabel(brand))
	wantModel := stock.ModelLabel(model)

	for _, bg := range g.Brands {
		if strings.ToLower(bg.Brand) != wantBrand {
			continue
		}
		for _, mg := range bg.Models {
			if mg.Model == wantModel {
				return mg.Items
			}
		}
	}
	return nil
}

// GET /api/stock-summary
// Totais do conjunto e quebra de valor por grupo (marca, modelo).
func StockSummaryHandler() fiber.Handler {
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

		totals := stock.ComputeTotals(flat)

		return c.JSON(fiber.Map{
			"branch_id":             branchID,
			"totals":                totals,
			"by_group":              stock.ValueByGroup(flat),
			"total_value_formatted": stock.FormatLocaleNumber(totals.TotalValue, 2),
		})
	}
}
