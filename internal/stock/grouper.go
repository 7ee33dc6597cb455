package stock

import "strings"

// Chaves sentinela de agrupamento para marca/modelo em branco.
const (
	DefaultBrand = "Unbranded"
	DefaultModel = "Standard"
)

// BrandLabel: rótulo de marca com sentinela para vazio/espaços.
func BrandLabel(brand string) string {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return DefaultBrand
	}
	return brand
}

// ModelLabel: rótulo de modelo com sentinela para vazio/espaços.
func ModelLabel(model string) string {
	model = strings.TrimSpace(model)
	if model == "" {
		return DefaultModel
	}
	return model
}

// A marca agrupa sem diferenciar maiúsculas; o rótulo exibido é o da primeira
// ocorrência.
func brandKey(brand string) string {
	return strings.ToLower(BrandLabel(brand))
}

type ModelGroup struct {
	Model string `json:"model"`
	Items []Item `json:"items"`
}

type BrandGroup struct {
	Brand  string       `json:"brand"`
	Models []ModelGroup `json:"models"`
}

// Grouped: taxonomia de dois níveis marca × modelo, em ordem estável de primeira
// ocorrência (quem chama pode ordenar por rótulo se quiser).
type Grouped struct {
	Brands []BrandGroup

	brandIdx map[string]int            // brandKey -> índice em Brands
	modelIdx map[string]map[string]int // brandKey -> rótulo de modelo -> índice em Models
}

// Group: agrupa a lista plana de itens por marca e modelo. Cada item da entrada
// aparece em exatamente um balde (marca, modelo).
func Group(items []Item) *Grouped {
	g := &Grouped{
		brandIdx: make(map[string]int),
		modelIdx: make(map[string]map[string]int),
	}
	for _, it := range items {
		g.add(it)
	}
	return g
}

func (g *Grouped) add(it Item) {
	bKey := brandKey(it.Brand)
	mLabel := ModelLabel(it.Model)

	bi, ok := g.brandIdx[bKey]
	if !ok {
		bi = len(g.Brands)
		g.Brands = append(g.Brands, BrandGroup{Brand: BrandLabel(it.Brand)})
		g.brandIdx[bKey] = bi
		g.modelIdx[bKey] = make(map[string]int)
	}

	mi, ok := g.modelIdx[bKey][mLabel]
	if !ok {
		mi = len(g.Brands[bi].Models)
		g.Brands[bi].Models = append(g.Brands[bi].Models, ModelGroup{Model: mLabel})
		g.modelIdx[bKey][mLabel] = mi
	}

	g.Brands[bi].Models[mi].Items = append(g.Brands[bi].Models[mi].Items, it)
}

// MergeDeclarations: para cada declaração (marca, modelo) sem nenhum item
// correspondente, sintetiza uma linha vazia (quantidades e preços zerados)
// marcada como placeholder e carregando o id da declaração. Placeholders não são
// editáveis e ficam fora dos totais de valor, mas contam nas contagens de
// marca/modelo distintos.
func (g *Grouped) MergeDeclarations(decls []Declaration) {
	for _, d := range decls {
		bKey := brandKey(d.Brand)
		mLabel := ModelLabel(d.Model)

		if bi, ok := g.brandIdx[bKey]; ok {
			if mi, ok := g.modelIdx[bKey][mLabel]; ok && len(g.Brands[bi].Models[mi].Items) > 0 {
				continue
			}
		}

		g.add(Item{
			Brand:         BrandLabel(d.Brand),
			Model:         mLabel,
			UnitsPerBox:   1,
			BranchID:      d.BranchID,
			Placeholder:   true,
			DeclarationID: d.ID,
		})
	}
}

// Flatten: volta à lista plana, na ordem dos grupos.
func (g *Grouped) Flatten() []Item {
	var out []Item
	for _, bg := range g.Brands {
		for _, mg := range bg.Models {
			out = append(out, mg.Items...)
		}
	}
	return out
}
