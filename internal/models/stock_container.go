package models

import "time"

// StockContainer: agregado que possui os itens de estoque de uma filial.
// Criado sob demanda pelo provisionamento, na primeira inclusão de item da filial.
type StockContainer struct {
	ID          string `gorm:"type:uuid;primaryKey"`
	BranchID    string `gorm:"type:uuid;index;not null"`
	DisplayName string `gorm:"size:150;not null"`
	City        string `gorm:"size:100"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Branch *Branch
}
