package inventory

import (
	"distribuidora-backend/internal/auth"
	"distribuidora-backend/internal/database"
	"distribuidora-backend/internal/models"
	"distribuidora-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
)

// Colaborador de estoque usado pelos handlers; definido no main (Postgres local
// ou cliente da matriz).
var backend stock.Backend

func UseBackend(b stock.Backend) {
	backend = b
}

// Backend exposto para os pacotes irmãos (dashboard) usarem o mesmo colaborador.
func ActiveBackend() stock.Backend {
	return backend
}

// resolveBranchIDFromQueryOrRole: super_admin escolhe a filial via query;
// branch_admin fica preso à filial do token.
func resolveBranchIDFromQueryOrRole(c *fiber.Ctx) (string, error) {
	roleVal := c.Locals(auth.CtxUserRoleKey)
	role, ok := roleVal.(models.UserRole)
	if !ok {
		return "", fiber.NewError(fiber.StatusForbidden, "Não foi possível obter o papel do usuário")
	}

	if role == models.RoleBranchAdmin {
		branchVal := c.Locals(auth.CtxBranchIDKey)
		if branchPtr, ok := branchVal.(*string); ok && branchPtr != nil {
			return *branchPtr, nil
		}
		return "", fiber.NewError(fiber.StatusForbidden, "Admin de filial sem filial vinculada")
	}

	branchID := c.Query("branch_id")
	if branchID == "" {
		return "", fiber.NewError(fiber.StatusBadRequest, "branch_id é obrigatório")
	}
	return branchID, nil
}

// resolveBranchIDFromBodyOrRole: mesma regra, com o id vindo do corpo.
func resolveBranchIDFromBodyOrRole(c *fiber.Ctx, bodyBranchID string) (string, error) {
	roleVal := c.Locals(auth.CtxUserRoleKey)
	role, ok := roleVal.(models.UserRole)
	if !ok {
		return "", fiber.NewError(fiber.StatusForbidden, "Não foi possível obter o papel do usuário")
	}

	if role == models.RoleBranchAdmin {
		branchVal := c.Locals(auth.CtxBranchIDKey)
		if branchPtr, ok := branchVal.(*string); ok && branchPtr != nil {
			return *branchPtr, nil
		}
		return "", fiber.NewError(fiber.StatusForbidden, "Admin de filial sem filial vinculada")
	}

	return bodyBranchID, nil
}

// getUserInfo: id, nome e filial do usuário autenticado, para a auditoria.
func getUserInfo(c *fiber.Ctx) (uint, string, *string) {
	var userID uint
	if v, ok := c.Locals(auth.CtxUserIDKey).(uint); ok {
		userID = v
	}

	userName := ""
	var user models.User
	if err := database.DB.First(&user, "id = ?", userID).Error; err == nil {
		userName = user.Name
	}

	var branchID *string
	if v, ok := c.Locals(auth.CtxBranchIDKey).(*string); ok && v != nil {
		branchID = v
	}

	return userID, userName, branchID
}

// findBranch: localiza a filial no colaborador de estoque.
func findBranch(branchID string) (stock.Branch, bool, error) {
	if branchID == "" {
		return stock.Branch{}, false, nil
	}

	branches, err := backend.ListBranches()
	if err != nil {
		return stock.Branch{}, false, err
	}
	for _, b := range branches {
		if b.ID == branchID {
			return b, true, nil
		}
	}
	return stock.Branch{}, false, nil
}
