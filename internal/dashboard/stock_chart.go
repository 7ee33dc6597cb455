package dashboard

import (
	"sort"
	"strings"

	"distribuidora-backend/internal/auth"
	"distribuidora-backend/internal/inventory"
	"distribuidora-backend/internal/models"
	"distribuidora-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

type StockChartPoint struct {
	Label string  `json:"label"` // marca
	Boxes int     `json:"boxes"`
	Units int     `json:"units"`
	Value float64 `json:"value"`
}

type StockChartResponse struct {
	BranchID    string            `json:"branch_id"`
	Points      []StockChartPoint `json:"points"`
	GrandTotals stock.Totals      `json:"grand_totals"`
}

// branch id do contexto (branch_admin pelo JWT, super_admin pela query)
func getBranchIDFromContext(c *fiber.Ctx) (string, error) {
	roleVal := c.Locals(auth.CtxUserRoleKey)
	role, ok := roleVal.(models.UserRole)
	if !ok {
		return "", fiber.NewError(fiber.StatusForbidden, "Não foi possível obter o papel do usuário")
	}

	if role == models.RoleBranchAdmin {
		branchIDVal := c.Locals(auth.CtxBranchIDKey)
		branchIDPtr, ok := branchIDVal.(*string)
		if !ok || branchIDPtr == nil {
			return "", fiber.NewError(fiber.StatusForbidden, "Admin de filial sem filial vinculada")
		}
		return *branchIDPtr, nil
	}

	// super_admin
	branchID := c.Query("branch_id")
	if branchID == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "branch_id é obrigatório")
	}
	return branchID, nil
}

// GET /api/dashboard/stock-chart?branch_id=...&order=value
// Valor em estoque por marca, para o gráfico de barras do painel.
func StockChartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		branchID, err := getBranchIDFromContext(c)
		if err != nil {
			return err
		}

		b := inventory.ActiveBackend()

		items, err := b.ListItems(branchID)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Backend de estoque indisponível, tente novamente")
		}

		// quebra por par (marca, modelo), depois acumula por marca
		byBrand := make(map[string]*StockChartPoint)
		var order []string

		for _, gv := range stock.ValueByGroup(items) {
			key := strings.ToLower(gv.Brand)
			p, ok := byBrand[key]
			if !ok {
				p = &StockChartPoint{Label: gv.Brand}
				byBrand[key] = p
				order = append(order, key)
			}
			p.Boxes += gv.Boxes
			p.Units += gv.Units
			p.Value += gv.Value
		}

		points := make([]StockChartPoint, 0, len(order))
		for _, key := range order {
			points = append(points, *byBrand[key])
		}

		if c.Query("order", "value") == "value" {
			sort.SliceStable(points, func(i, j int) bool {
				return points[i].Value > points[j].Value
			})
		}

		return c.JSON(StockChartResponse{
			BranchID:    branchID,
			Points:      points,
			GrandTotals: stock.ComputeTotals(items),
		})
	}
}
