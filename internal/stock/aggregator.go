package stock

// Totals: totais transversais sobre o conjunto normalizado, usados pelas telas
// de resumo.
type Totals struct {
	TotalBoxes     int     `json:"total_boxes"`
	TotalUnits     int     `json:"total_units"`
	TotalValue     float64 `json:"total_value"`
	DistinctBrands int     `json:"distinct_brands"`
	DistinctModels int     `json:"distinct_models"`
}

// ComputeTotals: passada única, independente de ordem (acumulação comutativa).
// TotalValue = Σ box_count * box_price sobre itens reais; placeholders ficam fora
// do valor mas entram nas contagens distintas.
func ComputeTotals(items []Item) Totals {
	var t Totals
	brands := make(map[string]struct{})
	pairs := make(map[string]struct{})

	for _, it := range items {
		bKey := brandKey(it.Brand)
		brands[bKey] = struct{}{}
		pairs[bKey+"\x00"+ModelLabel(it.Model)] = struct{}{}

		if it.Placeholder {
			continue
		}
		t.TotalBoxes += it.BoxCount
		t.TotalUnits += it.TotalUnits
		t.TotalValue += float64(it.BoxCount) * it.BoxPrice
	}

	t.DistinctBrands = len(brands)
	t.DistinctModels = len(pairs)
	return t
}

// GroupValue: quebra de valor por grupo (marca, modelo), para os resumos por marca.
type GroupValue struct {
	Brand string  `json:"brand"`
	Model string  `json:"model"`
	Boxes int     `json:"boxes"`
	Units int     `json:"units"`
	Value float64 `json:"value"`
}

// ValueByGroup: agrega as mesmas quantidades por par (marca, modelo), em ordem de
// primeira ocorrência. Placeholders não contribuem com valor, mas o grupo aparece
// zerado.
func ValueByGroup(items []Item) []GroupValue {
	idx := make(map[string]int)
	var out []GroupValue

	for _, it := range items {
		key := brandKey(it.Brand) + "\x00" + ModelLabel(it.Model)
		i, ok := idx[key]
		if !ok {
			i = len(out)
			out = append(out, GroupValue{Brand: BrandLabel(it.Brand), Model: ModelLabel(it.Model)})
			idx[key] = i
		}
		if it.Placeholder {
			continue
		}
		out[i].Boxes += it.BoxCount
		out[i].Units += it.TotalUnits
		out[i].Value += float64(it.BoxCount) * it.BoxPrice
	}

	return out
}
