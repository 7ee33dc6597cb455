package audit

import (
	"distribuidora-backend/internal/auth"
	"distribuidora-backend/internal/database"
	"distribuidora-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GET /api/audit-logs
// Trilha de auditoria das mutações de estoque; admin de filial enxerga só a sua.
func ListAuditLogsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := database.DB.Order("created_at DESC").Limit(200)

		roleVal := c.Locals(auth.CtxUserRoleKey)
		if role, ok := roleVal.(models.UserRole); ok && role == models.RoleBranchAdmin {
			branchVal := c.Locals(auth.CtxBranchIDKey)
			if branchPtr, ok := branchVal.(*string); ok && branchPtr != nil {
				query = query.Where("branch_id = ?", *branchPtr)
			}
		}

		if entityType := c.Query("entity_type"); entityType != "" {
			query = query.Where("entity_type = ?", entityType)
		}

		var logs []models.AuditLog
		if err := query.Find(&logs).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Logs de auditoria não puderam ser listados")
		}

		return c.JSON(logs)
	}
}
