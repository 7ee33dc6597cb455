package audit

import (
	"encoding/json"
	"fmt"

	"distribuidora-backend/internal/database"
	"distribuidora-backend/internal/models"
)

type LogOptions struct {
	BranchID    *string
	UserID      uint
	UserName    string
	EntityType  string
	EntityID    string
	Action      models.AuditAction
	Description string
	Before      any
	After       any
}

func WriteLog(opts LogOptions) error {
	// jsonb do PostgreSQL não aceita string vazia; usa "null" como padrão
	beforeStr := "null"
	afterStr := "null"

	if opts.Before != nil {
		if b, err := json.Marshal(opts.Before); err == nil {
			beforeStr = string(b)
		}
	}
	if opts.After != nil {
		if b, err := json.Marshal(opts.After); err == nil {
			afterStr = string(b)
		}
	}

	log := models.AuditLog{
		BranchID:    opts.BranchID,
		UserID:      opts.UserID,
		UserName:    opts.UserName,
		EntityType:  opts.EntityType,
		EntityID:    opts.EntityID,
		Action:      opts.Action,
		Description: opts.Description,
		BeforeData:  beforeStr,
		AfterData:   afterStr,
	}

	if err := database.DB.Create(&log).Error; err != nil {
		return fmt.Errorf("audit log não pôde ser gravado: %w", err)
	}

	return nil
}
