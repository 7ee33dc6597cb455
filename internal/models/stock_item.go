package models

import "time"

// StockItem: unidade vendável de estoque em uma filial.
// Invariante: TotalUnits == BoxCount * UnitsPerBox e UnitPrice == BoxPrice / UnitsPerBox.
// BoxPrice é o campo de preço persistido como fonte de verdade; UnitPrice é derivado.
type StockItem struct {
	ID            string  `gorm:"type:uuid;primaryKey"`
	Code          string  `gorm:"size:20;index"` // Código legível, sugerido a partir da marca
	Brand         string  `gorm:"size:100;index"`
	Model         string  `gorm:"size:100;index"`
	BoxCount      int     `gorm:"not null;default:0"`
	UnitsPerBox   int     `gorm:"not null;default:1"` // Nunca 0
	TotalUnits    int     `gorm:"not null;default:0"`
	BoxPrice      float64 `gorm:"not null;default:0"`
	UnitPrice     float64 `gorm:"not null;default:0"`
	PurchasePrice float64 `gorm:"not null;default:0"` // Preço de custo, independente do par de venda
	BranchID      string  `gorm:"type:uuid;index;not null"`
	ContainerID   string  `gorm:"type:uuid;index;not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Container *StockContainer `gorm:"foreignKey:ContainerID"`
}
