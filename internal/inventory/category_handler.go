package inventory

import (
	"fmt"

	"distribuidora-backend/internal/audit"
	"distribuidora-backend/internal/models"
	"distribuidora-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

type CreateStockCategoryRequest struct {
	BranchID string `json:"branch_id"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
}

// GET /api/stock-categories
func ListStockCategoriesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		branchID, err := resolveBranchIDFromQueryOrRole(c)
		if err != nil {
			return err
		}

		decls, err := backend.ListDeclarations(branchID)
		if err != nil {
			return stockError(err)
		}

		return c.JSON(decls)
	}
}

// POST /api/stock-categories
// Declara o par (marca, modelo) na filial. A declaração é idempotente no
// backend; repetir devolve a existente. Na listagem o par aparece como linha
// placeholder enquanto não houver item real.
func CreateStockCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStockCategoryRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		branchID, err := resolveBranchIDFromBodyOrRole(c, body.BranchID)
		if err != nil {
			return err
		}
		if branchID == "" {
			return fiber.NewError(fiber.StatusBadRequest, "branch_id é obrigatório")
		}

		decl, err := backend.CreateDeclaration(body.Brand, body.Model, branchID)
		if err != nil {
			return stockError(err)
		}

		userID, userName, auditBranch := getUserInfo(c)
		_ = audit.WriteLog(audit.LogOptions{
			BranchID:    auditBranch,
			UserID:      userID,
			UserName:    userName,
			EntityType:  "stock_category",
			EntityID:    decl.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Categoria declarada: %s %s", stock.BrandLabel(decl.Brand), stock.ModelLabel(decl.Model)),
			After:       decl,
		})

		return c.Status(fiber.StatusCreated).JSON(decl)
	}
}

// DELETE /api/stock-categories/:id
func DeleteStockCategoryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		declID := c.Params("id")

		if err := backend.DeleteDeclaration(declID); err != nil {
			return stockError(err)
		}

		userID, userName, auditBranch := getUserInfo(c)
		_ = audit.WriteLog(audit.LogOptions{
			BranchID:    auditBranch,
			UserID:      userID,
			UserName:    userName,
			EntityType:  "stock_category",
			EntityID:    declID,
			Action:      models.AuditActionDelete,
			Description: "Declaração de categoria excluída",
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
