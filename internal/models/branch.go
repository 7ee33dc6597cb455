package models

import "time"

type Branch struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"size:100"` // Opcional, cai no fallback cidade-UF
	City      string `gorm:"size:100"`
	Region    string `gorm:"size:2;index"` // UF (duas letras)
	Active    bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Users []User
}

// DisplayName: nome de exibição da filial; "cidade-UF" quando o nome está vazio.
func (b Branch) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.City + "-" + b.Region
}
