package stock

import "testing"

func TestGroupCompleteness(t *testing.T) {
	items := []Item{
		{ID: "1", Brand: "Ypê", Model: "500ml"},
		{ID: "2", Brand: "Ypê", Model: "1L"},
		{ID: "3", Brand: "Minuano", Model: "500ml"},
		{ID: "4", Brand: "Ypê", Model: "500ml"},
	}

	g := Group(items)

	total := 0
	for _, bg := range g.Brands {
		for _, mg := range bg.Models {
			total += len(mg.Items)
		}
	}
	if total != len(items) {
		t.Fatalf("agrupamento tem %d itens, want %d", total, len(items))
	}

	if len(g.Brands) != 2 {
		t.Fatalf("Brands = %d, want 2", len(g.Brands))
	}
	if g.Brands[0].Brand != "Ypê" || g.Brands[1].Brand != "Minuano" {
		t.Errorf("ordem de marcas = %q,%q, want primeira ocorrência", g.Brands[0].Brand, g.Brands[1].Brand)
	}
	if len(g.Brands[0].Models[0].Items) != 2 {
		t.Errorf("balde Ypê/500ml tem %d itens, want 2", len(g.Brands[0].Models[0].Items))
	}
}

func TestGroupBrandCaseInsensitive(t *testing.T) {
	g := Group([]Item{
		{ID: "1", Brand: "Ypê", Model: "500ml"},
		{ID: "2", Brand: "YPÊ", Model: "1L"},
	})

	if len(g.Brands) != 1 {
		t.Fatalf("Brands = %d, want 1 (marca sem diferenciar maiúsculas)", len(g.Brands))
	}
	if g.Brands[0].Brand != "Ypê" {
		t.Errorf("rótulo = %q, want o da primeira ocorrência", g.Brands[0].Brand)
	}
}

func TestGroupBlankSentinels(t *testing.T) {
	g := Group([]Item{{ID: "1", Brand: "  ", Model: ""}})

	if g.Brands[0].Brand != DefaultBrand {
		t.Errorf("marca em branco virou %q, want %q", g.Brands[0].Brand, DefaultBrand)
	}
	if g.Brands[0].Models[0].Model != DefaultModel {
		t.Errorf("modelo em branco virou %q, want %q", g.Brands[0].Models[0].Model, DefaultModel)
	}
}

func TestMergeDeclarationsSynthesizesPlaceholder(t *testing.T) {
	g := Group([]Item{{ID: "1", Brand: "Ypê", Model: "500ml", BoxCount: 2, UnitsPerBox: 12}})
	g.MergeDeclarations([]Declaration{
		{ID: "d1", Brand: "Ypê", Model: "500ml", BranchID: "f1"}, // já tem itens
		{ID: "d2", Brand: "Minuano", Model: "2L", BranchID: "f1"},
	})

	flat := g.Flatten()
	if len(flat) != 2 {
		t.Fatalf("Flatten = %d linhas, want 2", len(flat))
	}

	ph := flat[1]
	if !ph.Placeholder {
		t.Fatal("linha sintetizada não está marcada como placeholder")
	}
	if ph.DeclarationID != "d2" {
		t.Errorf("DeclarationID = %q, want d2", ph.DeclarationID)
	}
	if ph.BoxCount != 0 || ph.BoxPrice != 0 {
		t.Errorf("placeholder não está zerado: %+v", ph)
	}
	if ph.UnitsPerBox != 1 {
		t.Errorf("UnitsPerBox = %d, want 1", ph.UnitsPerBox)
	}
}

func TestMergeDeclarationsSkipsPairsWithItems(t *testing.T) {
	g := Group([]Item{{ID: "1", Brand: "ypê", Model: "500ml"}})
	g.MergeDeclarations([]Declaration{{ID: "d1", Brand: "Ypê", Model: "500ml"}})

	if n := len(g.Flatten()); n != 1 {
		t.Fatalf("declaração de par já preenchido sintetizou linha extra: %d linhas", n)
	}
}
