package stock

import "testing"

func sampleItems() []Item {
	return []Item{
		NormalizeItem(Item{Brand: "Ypê", Model: "500ml", BoxCount: 5, UnitsPerBox: 12, BoxPrice: 120}),
		NormalizeItem(Item{Brand: "Ypê", Model: "1L", BoxCount: 2, UnitsPerBox: 6, BoxPrice: 90}),
		NormalizeItem(Item{Brand: "Minuano", Model: "500ml", BoxCount: 3, UnitsPerBox: 12, BoxPrice: 100}),
	}
}

func TestComputeTotals(t *testing.T) {
	got := ComputeTotals(sampleItems())

	want := Totals{
		TotalBoxes:     10,
		TotalUnits:     108, // 60 + 12 + 36
		TotalValue:     1080, // 5*120 + 2*90 + 3*100
		DistinctBrands: 2,
		DistinctModels: 3,
	}
	if got != want {
		t.Errorf("ComputeTotals = %+v, want %+v", got, want)
	}
}

func TestComputeTotalsOrderIndependent(t *testing.T) {
	items := sampleItems()
	reversed := []Item{items[2], items[1], items[0]}

	if a, b := ComputeTotals(items), ComputeTotals(reversed); a != b {
		t.Errorf("totais dependem da ordem: %+v vs %+v", a, b)
	}
}

func TestComputeTotalsPlaceholders(t *testing.T) {
	items := append(sampleItems(), Item{
		Brand: "Barcarola", Model: "2L", UnitsPerBox: 1,
		Placeholder: true, DeclarationID: "d9",
	})

	got := ComputeTotals(items)

	if got.TotalValue != 1080 || got.TotalBoxes != 10 || got.TotalUnits != 108 {
		t.Errorf("placeholder contaminou quantidades/valor: %+v", got)
	}
	if got.DistinctBrands != 3 {
		t.Errorf("DistinctBrands = %d, want 3 (placeholder conta)", got.DistinctBrands)
	}
	if got.DistinctModels != 4 {
		t.Errorf("DistinctModels = %d, want 4 (placeholder conta)", got.DistinctModels)
	}
}

func TestValueByGroup(t *testing.T) {
	got := ValueByGroup(sampleItems())

	if len(got) != 3 {
		t.Fatalf("ValueByGroup = %d grupos, want 3", len(got))
	}
	first := got[0]
	if first.Brand != "Ypê" || first.Model != "500ml" {
		t.Errorf("primeiro grupo = %s/%s, want Ypê/500ml (primeira ocorrência)", first.Brand, first.Model)
	}
	if first.Boxes != 5 || first.Units != 60 || first.Value != 600 {
		t.Errorf("grupo Ypê/500ml = %+v, want 5 caixas, 60 unid, 600 de valor", first)
	}
}

func TestValueByGroupPlaceholderAppearsZeroed(t *testing.T) {
	got := ValueByGroup([]Item{{Brand: "Barcarola", Model: "2L", Placeholder: true}})

	if len(got) != 1 {
		t.Fatalf("grupos = %d, want 1", len(got))
	}
	if got[0].Value != 0 || got[0].Boxes != 0 || got[0].Units != 0 {
		t.Errorf("grupo placeholder não zerado: %+v", got[0])
	}
}
