package stock

import (
	"errors"
	"fmt"

	"distribuidora-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormBackend: implementação local do colaborador Backend sobre Postgres/GORM.
// Ids opacos são uuids gerados aqui; o motor nunca os interpreta.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func wrapDB(err error) error {
	return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
}

func itemFromModel(m models.StockItem) Item {
	return Item{
		ID:            m.ID,
		Code:          m.Code,
		Brand:         m.Brand,
		Model:         m.Model,
		BoxCount:      m.BoxCount,
		UnitsPerBox:   m.UnitsPerBox,
		TotalUnits:    m.TotalUnits,
		BoxPrice:      m.BoxPrice,
		UnitPrice:     m.UnitPrice,
		PurchasePrice: m.PurchasePrice,
		BranchID:      m.BranchID,
		ContainerID:   m.ContainerID,
	}
}

func (g *GormBackend) ListItems(branchID string) ([]Item, error) {
	var rows []models.StockItem
	if err := g.db.
		Where("branch_id = ?", branchID).
		Order("created_at asc").
		Find(&rows).Error; err != nil {
		return nil, wrapDB(err)
	}

	items := make([]Item, 0, len(rows))
	for _, r := range rows {
		items = append(items, itemFromModel(r))
	}
	return items, nil
}

func (g *GormBackend) ListDeclarations(branchID string) ([]Declaration, error) {
	var rows []models.CategoryDeclaration
	if err := g.db.
		Where("branch_id = ?", branchID).
		Order("created_at asc").
		Find(&rows).Error; err != nil {
		return nil, wrapDB(err)
	}

	decls := make([]Declaration, 0, len(rows))
	for _, r := range rows {
		decls = append(decls, Declaration{ID: r.ID, Brand: r.Brand, Model: r.Model, BranchID: r.BranchID})
	}
	return decls, nil
}

func (g *GormBackend) CreateItem(p CreateItemPayload) (Item, error) {
	// Renormaliza antes de persistir: o invariante nunca chega quebrado no banco.
	it := NormalizeItem(Item{
		Code:          p.Code,
		Brand:         p.Brand,
		Model:         p.Model,
		BoxCount:      p.BoxCount,
		UnitsPerBox:   p.UnitsPerBox,
		TotalUnits:    p.TotalUnits,
		BoxPrice:      p.BoxPrice,
		UnitPrice:     p.UnitPrice,
		PurchasePrice: p.PurchasePrice,
		BranchID:      p.BranchID,
		ContainerID:   p.ContainerID,
	})

	row := models.StockItem{
		ID:            uuid.New().String(),
		Code:          it.Code,
		Brand:         it.Brand,
		Model:         it.Model,
		BoxCount:      it.BoxCount,
		UnitsPerBox:   it.UnitsPerBox,
		TotalUnits:    it.TotalUnits,
		BoxPrice:      it.BoxPrice,
		UnitPrice:     it.UnitPrice,
		PurchasePrice: it.PurchasePrice,
		BranchID:      it.BranchID,
		ContainerID:   it.ContainerID,
	}
	if err := g.db.Create(&row).Error; err != nil {
		return Item{}, wrapDB(err)
	}
	return itemFromModel(row), nil
}

func columnForField(field EditField) (string, bool) {
	switch field {
	case FieldBoxCount:
		return "box_count", true
	case FieldUnitsPerBox:
		return "units_per_box", true
	case FieldBoxPrice:
		return "box_price", true
	case FieldUnitPrice:
		return "unit_price", true
	case FieldTotalUnits:
		return "total_units", true
	}
	return "", false
}

func (g *GormBackend) UpdateItemField(itemID string, field EditField, value float64) error {
	col, ok := columnForField(field)
	if !ok {
		return fmt.Errorf("campo de estoque desconhecido: %s", field)
	}

	res := g.db.Model(&models.StockItem{}).Where("id = ?", itemID).Update(col, value)
	if res.Error != nil {
		return wrapDB(res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item não encontrado: %s", itemID)
	}
	return nil
}

func (g *GormBackend) DeleteItem(itemID string) error {
	if err := g.db.Delete(&models.StockItem{}, "id = ?", itemID).Error; err != nil {
		return wrapDB(err)
	}
	return nil
}

func (g *GormBackend) DeleteItemGroup(brand, model, containerID string) error {
	if err := g.db.
		Where("lower(brand) = lower(?) AND model = ? AND container_id = ?", brand, model, containerID).
		Delete(&models.StockItem{}).Error; err != nil {
		return wrapDB(err)
	}
	return nil
}

func (g *GormBackend) CreateDeclaration(brand, model, branchID string) (Declaration, error) {
	// Idempotente: par já declarado para a filial conta como sucesso e devolve o
	// registro existente.
	var existing models.CategoryDeclaration
	err := g.db.
		Where("lower(brand) = lower(?) AND model = ? AND branch_id = ?", brand, model, branchID).
		First(&existing).Error
	if err == nil {
		return Declaration{ID: existing.ID, Brand: existing.Brand, Model: existing.Model, BranchID: existing.BranchID}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Declaration{}, wrapDB(err)
	}

	row := models.CategoryDeclaration{
		ID:       uuid.New().String(),
		Brand:    brand,
		Model:    model,
		BranchID: branchID,
	}
	if err := g.db.Create(&row).Error; err != nil {
		return Declaration{}, wrapDB(err)
	}
	return Declaration{ID: row.ID, Brand: row.Brand, Model: row.Model, BranchID: row.BranchID}, nil
}

func (g *GormBackend) DeleteDeclaration(declarationID string) error {
	if err := g.db.Delete(&models.CategoryDeclaration{}, "id = ?", declarationID).Error; err != nil {
		return wrapDB(err)
	}
	return nil
}

func (g *GormBackend) CreateContainer(branchID, displayName, city string) (string, error) {
	row := models.StockContainer{
		ID:          uuid.New().String(),
		BranchID:    branchID,
		DisplayName: displayName,
		City:        city,
	}
	if err := g.db.Create(&row).Error; err != nil {
		return "", wrapDB(err)
	}
	return row.ID, nil
}

func (g *GormBackend) ListBranches() ([]Branch, error) {
	var rows []models.Branch
	if err := g.db.Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, wrapDB(err)
	}

	branches := make([]Branch, 0, len(rows))
	for _, r := range rows {
		branches = append(branches, Branch{
			ID:     r.ID,
			Name:   r.DisplayName(),
			City:   r.City,
			Region: r.Region,
			Active: r.Active,
		})
	}
	return branches, nil
}

func (g *GormBackend) CreateBranch(name, city, region string) (Branch, error) {
	row := models.Branch{
		ID:     uuid.New().String(),
		Name:   name,
		City:   city,
		Region: region,
		Active: true,
	}
	if err := g.db.Create(&row).Error; err != nil {
		return Branch{}, wrapDB(err)
	}
	return Branch{ID: row.ID, Name: row.DisplayName(), City: row.City, Region: row.Region, Active: row.Active}, nil
}
