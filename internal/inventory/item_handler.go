package inventory

import (
	"errors"
	"fmt"

	"distribuidora-backend/internal/audit"
	"distribuidora-backend/internal/models"
	"distribuidora-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

// Campos numéricos chegam como texto localizado ("1.234,50") e são convertidos
// uma única vez nesta camada, via ParseLocaleNumber. Do handler para dentro só
// circulam números.
type CreateStockItemRequest struct {
	BranchID      string `json:"branch_id"` // super_admin escolhe; branch_admin vem do token
	ContainerID   string `json:"container_id"`
	Code          string `json:"code"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	BoxCount      string `json:"box_count"`
	UnitsPerBox   string `json:"units_per_box"`
	BoxPrice      string `json:"box_price"`
	PurchasePrice string `json:"purchase_price"`
}

type UpdateStockItemFieldRequest struct {
	Field string `json:"field"` // box_count | units_per_box | box_price | unit_price
	Value string `json:"value"` // texto cru do campo, formato pt-BR
}

func stockError(err error) error {
	var mf *stock.MissingFieldError
	switch {
	case errors.As(err, &mf):
		return fiber.NewError(fiber.StatusBadRequest, "Campo obrigatório ausente: "+mf.Field)
	case errors.Is(err, stock.ErrNoContainerBound):
		return fiber.NewError(fiber.StatusBadRequest, "Grupo sem depósito vinculado, nada a excluir")
	case errors.Is(err, stock.ErrBackendUnavailable):
		return fiber.NewError(fiber.StatusBadGateway, "Backend de estoque indisponível, tente novamente")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Operação de estoque falhou")
}

// GET /api/stock-items
// Lista agrupada marca × modelo da filial, com placeholders das categorias
// declaradas sem itens e os totais do conjunto.
func ListStockItemsHandler() fiber.Handler {
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

		return c.JSON(fiber.Map{
			"branch_id": branchID,
			"groups":    grouped.Brands,
			"totals":    stock.ComputeTotals(grouped.Flatten()),
		})
	}
}

// POST /api/stock-items
// Caminho de commit de rascunho: provisiona o depósito (se preciso) e cria o
// item no backend. Falha deixa tudo como estava — o rascunho continua na UI.
func CreateStockItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateStockItemRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		branchID, err := resolveBranchIDFromBodyOrRole(c, body.BranchID)
		if err != nil {
			return err
		}

		branch, _, err := findBranch(branchID)
		if err != nil {
			return stockError(err)
		}

		draft := stock.StartDraft(body.Brand, body.Model, branchID, body.ContainerID)
		if body.Code != "" {
			draft.Item.Code = body.Code
		}

		// Cada campo passa pela mesma regra de edição da UI: parse localizado +
		// recálculo dos derivados.
		draft.Item = stock.ApplyEdit(draft.Item, stock.FieldUnitsPerBox, body.UnitsPerBox)
		draft.Item = stock.ApplyEdit(draft.Item, stock.FieldBoxCount, body.BoxCount)
		draft.Item = stock.ApplyEdit(draft.Item, stock.FieldBoxPrice, body.BoxPrice)
		draft.Item.PurchasePrice = stock.ParseLocaleNumber(body.PurchasePrice)

		created, err := draft.Commit(backend, branch)
		if err != nil {
			return stockError(err)
		}

		userID, userName, auditBranch := getUserInfo(c)
		_ = audit.WriteLog(audit.LogOptions{
			BranchID:    auditBranch,
			UserID:      userID,
			UserName:    userName,
			EntityType:  "stock_item",
			EntityID:    created.ID,
			Action:      models.AuditActionCreate,
			Description: fmt.Sprintf("Item incluído: %s %s (%s)", created.Brand, created.Model, created.Code),
			After:       created,
		})

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"item":         created,
			"draft_status": draft.Status,
		})
	}
}

// PUT /api/stock-items/:id/field
// Edição de um único campo (semântica on-blur). Os derivados são recalculados
// antes de qualquer persistência e cada campo alterado é enviado
// individualmente ao backend, o campo editado primeiro.
func UpdateStockItemFieldHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID := c.Params("id")

		branchID, err := resolveBranchIDFromQueryOrRole(c)
		if err != nil {
			return err
		}

		var body UpdateStockItemFieldRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		field, ok := stock.ParseEditField(body.Field)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "Campo não editável: "+body.Field)
		}

		items, err := backend.ListItems(branchID)
		if err != nil {
			return stockError(err)
		}

		var current *stock.Item
		for i := range items {
			if items[i].ID == itemID {
				current = &items[i]
				break
			}
		}
		if current == nil {
			return fiber.NewError(fiber.StatusNotFound, "Item não encontrado")
		}

		updated := stock.ApplyEdit(*current, field, body.Value)

		// Campo editado primeiro, derivados na sequência; só o que mudou viaja.
		for _, f := range persistOrder(field) {
			before, after := fieldValue(*current, f), fieldValue(updated, f)
			if before == after {
				continue
			}
			if err := backend.UpdateItemField(itemID, f, after); err != nil {
				return stockError(err)
			}
		}

		userID, userName, auditBranch := getUserInfo(c)
		_ = audit.WriteLog(audit.LogOptions{
			BranchID:    auditBranch,
			UserID:      userID,
			UserName:    userName,
			EntityType:  "stock_item",
			EntityID:    itemID,
			Action:      models.AuditActionUpdate,
			Description: fmt.Sprintf("Campo %s editado em %s %s", field, updated.Brand, updated.Model),
			Before:      *current,
			After:       updated,
		})

		return c.JSON(updated)
	}
}

// persistOrder: o campo editado vai na frente; depois os derivados que podem
// ter mudado com ele.
func persistOrder(edited stock.EditField) []stock.EditField {
	switch edited {
	case stock.FieldBoxCount:
		return []stock.EditField{stock.FieldBoxCount, stock.FieldTotalUnits, stock.FieldUnitPrice}
	case stock.FieldUnitsPerBox:
		return []stock.EditField{stock.FieldUnitsPerBox, stock.FieldTotalUnits, stock.FieldUnitPrice}
	case stock.FieldBoxPrice:
		return []stock.EditField{stock.FieldBoxPrice, stock.FieldUnitPrice}
	case stock.FieldUnitPrice:
		return []stock.EditField{stock.FieldUnitPrice, stock.FieldBoxPrice}
	}
	return []stock.EditField{edited}
}

func fieldValue(it stock.Item, f stock.EditField) float64 {
	switch f {
	case stock.FieldBoxCount:
		return float64(it.BoxCount)
	case stock.FieldUnitsPerBox:
		return float64(it.UnitsPerBox)
	case stock.FieldTotalUnits:
		return float64(it.TotalUnits)
	case stock.FieldBoxPrice:
		return it.BoxPrice
	case stock.FieldUnitPrice:
		return it.UnitPrice
	}
	return 0
}

// DELETE /api/stock-items/:id
func DeleteStockItemHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		itemID := c.Params("id")

		if err := backend.DeleteItem(itemID); err != nil {
			return stockError(err)
		}

		userID, userName, auditBranch := getUserInfo(c)
		_ = audit.WriteLog(audit.LogOptions{
			BranchID:    auditBranch,
			UserID:      userID,
			UserName:    userName,
			EntityType:  "stock_item",
			EntityID:    itemID,
			Action:      models.AuditActionDelete,
			Description: "Item de estoque excluído",
		})

		return c.SendStatus(fiber.StatusNoContent)
	}
}
