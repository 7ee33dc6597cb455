package stock

import (
	"errors"
	"strings"
	"testing"
)

func TestDeleteGroupEmptyBucket(t *testing.T) {
	b := newFakeBackend()

	err := DeleteGroup(b, "Ypê", "500ml", "cont-1", nil)

	if !errors.Is(err, ErrNoContainerBound) {
		t.Fatalf("err = %v, want ErrNoContainerBound", err)
	}
	if len(b.calls) != 0 {
		t.Errorf("backend foi chamado para grupo vazio: %v", b.calls)
	}
}

func TestDeleteGroupPlaceholderDeletesDeclaration(t *testing.T) {
	b := newFakeBackend()
	b.declarations = []Declaration{{ID: "abc123", Brand: "Ypê", Model: "500ml", BranchID: "f1"}}

	bucket := []Item{{Brand: "Ypê", Model: "500ml", Placeholder: true, DeclarationID: "abc123"}}

	if err := DeleteGroup(b, "Ypê", "500ml", "", bucket); err != nil {
		t.Fatalf("DeleteGroup devolveu erro: %v", err)
	}

	if len(b.calls) != 1 || b.calls[0] != "DeleteDeclaration(abc123)" {
		t.Fatalf("chamadas = %v, want só DeleteDeclaration(abc123)", b.calls)
	}
	if len(b.declarations) != 0 {
		t.Error("declaração não foi removida")
	}
}

func TestDeleteGroupRealItemsBatchDelete(t *testing.T) {
	b := newFakeBackend()
	b.items = []Item{
		{ID: "1", Brand: "Ypê", Model: "500ml", ContainerID: "cont-1"},
		{ID: "2", Brand: "YPÊ", Model: "500ml", ContainerID: "cont-1"},
		{ID: "3", Brand: "Minuano", Model: "500ml", ContainerID: "cont-1"},
	}

	bucket := []Item{b.items[0], b.items[1]}
	if err := DeleteGroup(b, "Ypê", "500ml", "cont-1", bucket); err != nil {
		t.Fatalf("DeleteGroup devolveu erro: %v", err)
	}

	if len(b.calls) != 1 || !strings.HasPrefix(b.calls[0], "DeleteItemGroup") {
		t.Fatalf("chamadas = %v, want uma única DeleteItemGroup", b.calls)
	}
	if len(b.items) != 1 || b.items[0].Brand != "Minuano" {
		t.Errorf("itens restantes = %+v, want só o Minuano", b.items)
	}
}
