package stock

import (
	"errors"
	"fmt"
	"strings"
)

// fakeBackend: colaborador em memória para os testes do motor. Registra as
// chamadas e permite injetar falha em qualquer operação.
type fakeBackend struct {
	items        []Item
	declarations []Declaration
	branches     []Branch
	containers   map[string]string // id -> nome

	nextID int
	calls  []string

	failCreateContainer bool
	failCreateItem      bool
	failUpdateField     bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{containers: make(map[string]string)}
}

func (f *fakeBackend) genID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

func (f *fakeBackend) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) ListItems(branchID string) ([]Item, error) {
	var out []Item
	for _, it := range f.items {
		if branchID == "" || it.BranchID == branchID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeBackend) ListDeclarations(branchID string) ([]Declaration, error) {
	var out []Declaration
	for _, d := range f.declarations {
		if branchID == "" || d.BranchID == branchID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeBackend) CreateItem(p CreateItemPayload) (Item, error) {
	f.record("CreateItem")
	if f.failCreateItem {
		return Item{}, fmt.Errorf("%w: create recusado", ErrBackendUnavailable)
	}
	it := Item{
		ID:            f.genID("item"),
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
	}
	f.items = append(f.items, it)
	return it, nil
}

func (f *fakeBackend) UpdateItemField(itemID string, field EditField, value float64) error {
	f.record(fmt.Sprintf("UpdateItemField(%s,%s,%v)", itemID, field, value))
	if f.failUpdateField {
		return fmt.Errorf("%w: update recusado", ErrBackendUnavailable)
	}
	for i := range f.items {
		if f.items[i].ID != itemID {
			continue
		}
		switch field {
		case FieldBoxCount:
			f.items[i].BoxCount = int(value)
		case FieldUnitsPerBox:
			f.items[i].UnitsPerBox = int(value)
		case FieldTotalUnits:
			f.items[i].TotalUnits = int(value)
		case FieldBoxPrice:
			f.items[i].BoxPrice = value
		case FieldUnitPrice:
			f.items[i].UnitPrice = value
		}
		return nil
	}
	return errors.New("item não encontrado")
}

func (f *fakeBackend) DeleteItem(itemID string) error {
	f.record("DeleteItem(" + itemID + ")")
	for i := range f.items {
		if f.items[i].ID == itemID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return errors.New("item não encontrado")
}

func (f *fakeBackend) DeleteItemGroup(brand, model, containerID string) error {
	f.record(fmt.Sprintf("DeleteItemGroup(%s,%s,%s)", brand, model, containerID))
	kept := f.items[:0]
	for _, it := range f.items {
		if strings.EqualFold(BrandLabel(it.Brand), BrandLabel(brand)) && ModelLabel(it.Model) == ModelLabel(model) {
			continue
		}
		kept = append(kept, it)
	}
	f.items = kept
	return nil
}

func (f *fakeBackend) CreateDeclaration(brand, model, branchID string) (Declaration, error) {
	f.record("CreateDeclaration")
	for _, d := range f.declarations {
		if strings.EqualFold(d.Brand, brand) && d.Model == model && d.BranchID == branchID {
			return d, nil
		}
	}
	d := Declaration{ID: f.genID("decl"), Brand: brand, Model: model, BranchID: branchID}
	f.declarations = append(f.declarations, d)
	return d, nil
}

func (f *fakeBackend) DeleteDeclaration(declarationID string) error {
	f.record("DeleteDeclaration(" + declarationID + ")")
	for i := range f.declarations {
		if f.declarations[i].ID == declarationID {
			f.declarations = append(f.declarations[:i], f.declarations[i+1:]...)
			return nil
		}
	}
	return errors.New("declaração não encontrada")
}

func (f *fakeBackend) CreateContainer(branchID, displayName, city string) (string, error) {
	f.record(fmt.Sprintf("CreateContainer(%s,%s,%s)", branchID, displayName, city))
	if f.failCreateContainer {
		return "", fmt.Errorf("%w: container recusado", ErrBackendUnavailable)
	}
	id := f.genID("cont")
	f.containers[id] = displayName
	return id, nil
}

func (f *fakeBackend) ListBranches() ([]Branch, error) {
	return f.branches, nil
}

func (f *fakeBackend) CreateBranch(name, city, region string) (Branch, error) {
	f.record("CreateBranch")
	b := Branch{ID: f.genID("branch"), Name: name, City: city, Region: region, Active: true}
	f.branches = append(f.branches, b)
	return b, nil
}
