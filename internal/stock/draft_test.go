package stock

import (
	"errors"
	"strings"
	"testing"
)

func TestSuggestCode(t *testing.T) {
	code := SuggestCode("Minuano")
	if !strings.HasPrefix(code, "MIN") || len(code) != 6 {
		t.Errorf("SuggestCode(Minuano) = %q, want prefixo MIN e 6 caracteres", code)
	}

	code = SuggestCode("ab")
	if !strings.HasPrefix(code, "ABX") {
		t.Errorf("SuggestCode(ab) = %q, want preenchimento com X", code)
	}

	code = SuggestCode("")
	if !strings.HasPrefix(code, "XXX") {
		t.Errorf("SuggestCode vazio = %q, want XXX", code)
	}

	code = SuggestCode("a-1 b")
	if !strings.HasPrefix(code, "ABX") {
		t.Errorf("SuggestCode(a-1 b) = %q, want só letras (ABX)", code)
	}
}

func TestStartDraft(t *testing.T) {
	d := StartDraft("Ypê", "500ml", "f1", "")

	if d.Status != DraftStatusDraft {
		t.Fatalf("Status = %q, want draft", d.Status)
	}
	if d.Item.UnitsPerBox != 1 {
		t.Errorf("UnitsPerBox = %d, want 1", d.Item.UnitsPerBox)
	}
	if d.Item.Code == "" {
		t.Error("rascunho sem código sugerido")
	}
}

// Filial com região mas sem cidade: o provisionamento cai na cidade padrão da UF
// e o commit cria o depósito antes do item.
func TestCommitProvisionsContainerWithRegionFallback(t *testing.T) {
	b := newFakeBackend()
	branch := Branch{ID: "f1", Region: "PE"}

	d := StartDraft("Ypê", "500ml", branch.ID, "")
	d.Item = ApplyEdit(d.Item, FieldUnitsPerBox, "12")
	d.Item = ApplyEdit(d.Item, FieldBoxCount, "5")
	d.Item = ApplyEdit(d.Item, FieldBoxPrice, "120,00")

	created, err := d.Commit(b, branch)
	if err != nil {
		t.Fatalf("Commit devolveu erro: %v", err)
	}

	if d.Status != DraftStatusCommitted {
		t.Errorf("Status = %q, want committed", d.Status)
	}
	if created.ID == "" {
		t.Error("item criado sem id do backend")
	}
	if created.ContainerID == "" {
		t.Error("item criado sem depósito resolvido")
	}
	if created.TotalUnits != 60 || created.UnitPrice != 10 {
		t.Errorf("derivados errados no create: %+v", created)
	}

	if len(b.calls) != 2 || !strings.HasPrefix(b.calls[0], "CreateContainer") {
		t.Fatalf("chamadas = %v, want CreateContainer antes de CreateItem", b.calls)
	}
	if !strings.Contains(b.calls[0], "Recife") {
		t.Errorf("depósito criado fora da cidade padrão da UF: %v", b.calls[0])
	}
}

// Candidato igual ao id da filial é placeholder lógico, não depósito real.
func TestCommitTreatsBranchIDCandidateAsUnresolved(t *testing.T) {
	b := newFakeBackend()
	branch := Branch{ID: "f1", City: "Olinda", Region: "PE"}

	d := StartDraft("Ypê", "500ml", branch.ID, branch.ID)
	if _, err := d.Commit(b, branch); err != nil {
		t.Fatalf("Commit devolveu erro: %v", err)
	}

	if len(b.calls) == 0 || !strings.HasPrefix(b.calls[0], "CreateContainer") {
		t.Fatalf("chamadas = %v, want provisionamento de depósito novo", b.calls)
	}
	if !strings.Contains(b.calls[0], "Olinda") {
		t.Errorf("cidade informada não prevaleceu sobre a padrão: %v", b.calls[0])
	}
}

func TestCommitUsesRealCandidateContainer(t *testing.T) {
	b := newFakeBackend()
	branch := Branch{ID: "f1", City: "Recife", Region: "PE"}

	d := StartDraft("Ypê", "500ml", branch.ID, "cont-77")
	created, err := d.Commit(b, branch)
	if err != nil {
		t.Fatalf("Commit devolveu erro: %v", err)
	}

	if created.ContainerID != "cont-77" {
		t.Errorf("ContainerID = %q, want cont-77", created.ContainerID)
	}
	for _, call := range b.calls {
		if strings.HasPrefix(call, "CreateContainer") {
			t.Errorf("criou depósito com candidato real informado: %v", b.calls)
		}
	}
}

func TestCommitWithoutBranchFailsAndStaysDraft(t *testing.T) {
	b := newFakeBackend()

	d := StartDraft("Ypê", "500ml", "", "")
	_, err := d.Commit(b, Branch{})

	var mf *MissingFieldError
	if !errors.As(err, &mf) || mf.Field != "filial" {
		t.Fatalf("err = %v, want MissingFieldError{filial}", err)
	}
	if d.Status != DraftStatusDraft {
		t.Errorf("Status = %q, want draft (falha preserva o rascunho)", d.Status)
	}
	if len(b.items) != 0 {
		t.Error("item foi criado apesar da falha")
	}
}

func TestCommitWithoutCityFailsAndStaysDraft(t *testing.T) {
	b := newFakeBackend()
	branch := Branch{ID: "f1", Region: "ZZ"} // UF desconhecida, sem cidade padrão

	d := StartDraft("Ypê", "500ml", branch.ID, "")
	_, err := d.Commit(b, branch)

	var mf *MissingFieldError
	if !errors.As(err, &mf) || mf.Field != "cidade" {
		t.Fatalf("err = %v, want MissingFieldError{cidade}", err)
	}
	if d.Status != DraftStatusDraft {
		t.Errorf("Status = %q, want draft", d.Status)
	}
}

func TestCommitBackendFailureStaysDraft(t *testing.T) {
	b := newFakeBackend()
	b.failCreateItem = true
	branch := Branch{ID: "f1", City: "Recife", Region: "PE"}

	d := StartDraft("Ypê", "500ml", branch.ID, "")
	_, err := d.Commit(b, branch)

	if !errors.Is(err, ErrBackendUnavailable) {
		t.Fatalf("err = %v, want ErrBackendUnavailable", err)
	}
	if d.Status != DraftStatusDraft {
		t.Errorf("Status = %q, want draft", d.Status)
	}
}

func TestCommitTwiceRejected(t *testing.T) {
	b := newFakeBackend()
	branch := Branch{ID: "f1", City: "Recife", Region: "PE"}

	d := StartDraft("Ypê", "500ml", branch.ID, "")
	if _, err := d.Commit(b, branch); err != nil {
		t.Fatalf("primeiro Commit falhou: %v", err)
	}
	if _, err := d.Commit(b, branch); err == nil {
		t.Error("segundo Commit do mesmo rascunho deveria falhar")
	}
}

func TestDiscard(t *testing.T) {
	d := StartDraft("Ypê", "500ml", "f1", "")
	d.Discard()
	if d.Status != DraftStatusDiscarded {
		t.Errorf("Status = %q, want discarded", d.Status)
	}

	b := newFakeBackend()
	if _, err := d.Commit(b, Branch{ID: "f1", City: "Recife"}); err == nil {
		t.Error("Commit após descarte deveria falhar")
	}
}

func TestDefaultCityForRegion(t *testing.T) {
	if got := DefaultCityForRegion("PE"); got != "Recife" {
		t.Errorf("DefaultCityForRegion(PE) = %q, want Recife", got)
	}
	if got := DefaultCityForRegion(" sp "); got != "São Paulo" {
		t.Errorf("DefaultCityForRegion(sp) = %q, want São Paulo", got)
	}
	if got := DefaultCityForRegion("ZZ"); got != "" {
		t.Errorf("DefaultCityForRegion(ZZ) = %q, want vazio", got)
	}
}
