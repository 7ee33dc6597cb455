package models

import "time"

// CategoryDeclaration: par (marca, modelo) declarado para uma filial, mesmo sem
// nenhum item de estoque ainda. Permite exibir grupos vazios e excluir cabeçalhos.
type CategoryDeclaration struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Brand     string `gorm:"size:100;not null;index:idx_decl_branch_pair"`
	Model     string `gorm:"size:100;not null;index:idx_decl_branch_pair"`
	BranchID  string `gorm:"type:uuid;not null;index:idx_decl_branch_pair"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
