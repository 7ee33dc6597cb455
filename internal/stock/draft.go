package stock

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"
)

// Estados de uma linha de rascunho (item ainda não persistido, vivendo só no
// estado da UI).
type DraftStatus string

const (
	DraftStatusDraft        DraftStatus = "draft"
	DraftStatusProvisioning DraftStatus = "provisioning"
	DraftStatusCommitted    DraftStatus = "committed"
	DraftStatusDiscarded    DraftStatus = "discarded"
)

// DraftRow: linha não confirmada de um grupo. Só uma por grupo pode estar aberta
// por vez — responsabilidade de quem segura a referência; aqui basta tolerar um
// novo StartDraft depois de commit ou descarte.
type DraftRow struct {
	Status DraftStatus `json:"status"`
	Item   Item        `json:"item"` // Sem ID até o commit
}

// StartDraft: inicializa a linha com código sugerido a partir da marca e
// quantidades zeradas (units_per_box parte de 1, nunca 0).
func StartDraft(brand, model, branchID, containerID string) *DraftRow {
	return &DraftRow{
		Status: DraftStatusDraft,
		Item: Item{
			Code:        SuggestCode(brand),
			Brand:       brand,
			Model:       model,
			UnitsPerBox: 1,
			BranchID:    branchID,
			ContainerID: containerID,
		},
	}
}

// SuggestCode: três primeiras letras da marca em maiúsculas, completadas com 'X',
// mais um sufixo aleatório de três dígitos. Ex: "Ypê" -> "YPÊ417", "ab" -> "ABX093".
func SuggestCode(brand string) string {
	upper := strings.ToUpper(strings.TrimSpace(brand))
	letters := make([]rune, 0, 3)
	for _, r := range upper {
		if !unicode.IsLetter(r) {
			continue
		}
		letters = append(letters, r)
		if len(letters) == 3 {
			break
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	return fmt.Sprintf("%s%03d", string(letters), rand.Intn(1000))
}

// Commit: confirma o rascunho. Exige units_per_box >= 1 (clamp), resolve o
// depósito via ResolveContainer e envia o create ao backend. Sucesso devolve o
// item com id atribuído pelo backend e o rascunho vai para committed (quem chama
// descarta a cópia local). Falha deixa o rascunho intacto em draft e devolve o
// erro para exibição.
func (d *DraftRow) Commit(b Backend, branch Branch) (Item, error) {
	if d.Status != DraftStatusDraft {
		return Item{}, fmt.Errorf("rascunho em estado %q não pode ser confirmado", d.Status)
	}

	it := NormalizeItem(d.Item)

	d.Status = DraftStatusProvisioning
	containerID, err := ResolveContainer(b, ProvisionRequest{
		CandidateID: it.ContainerID,
		BranchID:    branch.ID,
		City:        branch.City,
		Region:      branch.Region,
		Brand:       it.Brand,
		Model:       it.Model,
	})
	if err != nil {
		d.Status = DraftStatusDraft
		return Item{}, err
	}

	created, err := b.CreateItem(CreateItemPayload{
		Code:          it.Code,
		Brand:         it.Brand,
		Model:         it.Model,
		BoxCount:      it.BoxCount,
		UnitsPerBox:   it.UnitsPerBox,
		TotalUnits:    it.TotalUnits,
		BoxPrice:      it.BoxPrice,
		UnitPrice:     it.UnitPrice,
		PurchasePrice: it.PurchasePrice,
		BranchID:      branch.ID,
		ContainerID:   containerID,
	})
	if err != nil {
		d.Status = DraftStatusDraft
		return Item{}, err
	}

	d.Status = DraftStatusCommitted
	return created, nil
}

// Discard: remove o rascunho do estado local, sem chamada ao backend.
func (d *DraftRow) Discard() {
	if d.Status == DraftStatusDraft {
		d.Status = DraftStatusDiscarded
	}
}
