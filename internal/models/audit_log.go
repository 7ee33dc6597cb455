package models

import "time"

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
)

type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	// Qual filial?
	BranchID *string `gorm:"type:uuid" json:"branch_id"`

	// Qual usuário?
	UserID   uint   `json:"user_id"`
	UserName string `gorm:"size:100" json:"user_name"` // Nome do usuário (desnormalizado)

	// Qual entidade? (ex: "stock_item", "stock_group", "category_declaration")
	EntityType string `gorm:"size:50;index" json:"entity_type"`
	EntityID   string `gorm:"size:64;index" json:"entity_id"`

	// Tipo de operação: create/update/delete
	Action AuditAction `gorm:"size:20" json:"action"`

	// Descrição opcional (resumo curto)
	Description string `gorm:"size:255" json:"description"`

	// Estado anterior e posterior (JSON)
	BeforeData string `gorm:"type:jsonb" json:"before_data"`
	AfterData  string `gorm:"type:jsonb" json:"after_data"`
}
