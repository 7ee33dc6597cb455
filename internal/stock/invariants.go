package stock

// EditField: nome do campo editado pelo usuário em uma linha de estoque.
type EditField string

const (
	FieldBoxCount    EditField = "box_count"
	FieldUnitsPerBox EditField = "units_per_box"
	FieldBoxPrice    EditField = "box_price"
	FieldUnitPrice   EditField = "unit_price"

	// FieldTotalUnits é derivado: aceito só na persistência por campo, nunca como
	// edição direta do usuário.
	FieldTotalUnits EditField = "total_units"
)

// ParseEditField: valida o nome de campo vindo da UI. Só os quatro campos
// editáveis passam.
func ParseEditField(s string) (EditField, bool) {
	switch EditField(s) {
	case FieldBoxCount, FieldUnitsPerBox, FieldBoxPrice, FieldUnitPrice:
		return EditField(s), true
	}
	return "", false
}

// ApplyEdit: aplica a edição de um campo (texto cru vindo da UI) e devolve o item
// com todos os derivados recalculados. Pura e idempotente; nunca quebra o
// invariante quantidade/preço. Texto malformado vira 0 via ParseLocaleNumber.
//
// Regras:
//   - box_count ou units_per_box: recalcula total_units e unit_price (box_price intacto)
//   - box_price: recalcula unit_price
//   - unit_price: retropropaga para box_price (único caso em que o papel
//     derivado/autoritativo se inverte, para digitação manual de preço unitário)
func ApplyEdit(item Item, field EditField, raw string) Item {
	v := ParseLocaleNumber(raw)

	switch field {
	case FieldBoxCount:
		item.BoxCount = int(v)
	case FieldUnitsPerBox:
		item.UnitsPerBox = int(v)
	case FieldBoxPrice:
		item.BoxPrice = v
	case FieldUnitPrice:
		item.UnitPrice = v
	default:
		// Campo desconhecido: nenhuma edição, só renormaliza.
		return NormalizeItem(item)
	}

	return recompute(item, field)
}

// NormalizeItem: recalcula os derivados tratando box_price como autoritativo.
// Usado na ingestão e no commit de rascunho, antes de persistir.
func NormalizeItem(item Item) Item {
	return recompute(item, FieldBoxPrice)
}

func recompute(item Item, edited EditField) Item {
	// units_per_box nunca menor que 1 (evita divisão por zero); box_count e
	// preços nunca negativos.
	if item.UnitsPerBox < 1 {
		item.UnitsPerBox = 1
	}
	if item.BoxCount < 0 {
		item.BoxCount = 0
	}
	if item.BoxPrice < 0 {
		item.BoxPrice = 0
	}
	if item.UnitPrice < 0 {
		item.UnitPrice = 0
	}

	if edited == FieldUnitPrice {
		item.BoxPrice = item.UnitPrice * float64(item.UnitsPerBox)
	} else {
		item.UnitPrice = item.BoxPrice / float64(item.UnitsPerBox)
	}
	item.TotalUnits = item.BoxCount * item.UnitsPerBox

	return item
}
