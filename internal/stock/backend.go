package stock

import (
	"errors"
	"fmt"
)

// Erros do motor de estoque. Falhas de rede/servidor são embrulhadas em
// ErrBackendUnavailable para que os handlers possam mapear o status HTTP.
var (
	ErrBackendUnavailable = errors.New("backend de estoque indisponível")
	ErrNoContainerBound   = errors.New("grupo sem depósito vinculado, nada a excluir")
)

// MissingFieldError: campo obrigatório ausente em um ponto onde um valor real é
// exigido (ex: provisionamento de depósito sem filial/cidade).
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("campo obrigatório ausente: %s", e.Field)
}

// Item: modelo normalizado em memória de um item de estoque.
// Invariante pós-mutação: TotalUnits == BoxCount*UnitsPerBox e
// UnitPrice == BoxPrice/UnitsPerBox (UnitsPerBox nunca menor que 1).
type Item struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	BoxCount      int     `json:"box_count"`
	UnitsPerBox   int     `json:"units_per_box"`
	TotalUnits    int     `json:"total_units"`
	BoxPrice      float64 `json:"box_price"`
	UnitPrice     float64 `json:"unit_price"`
	PurchasePrice float64 `json:"purchase_price"`
	BranchID      string  `json:"branch_id"`
	ContainerID   string  `json:"container_id"`

	// Variante marcada: linha sintetizada para uma declaração de categoria sem
	// itens. Carrega o id da declaração em vez de um id de item.
	Placeholder   bool   `json:"placeholder"`
	DeclarationID string `json:"declaration_id,omitempty"`
}

// Declaration: par (marca, modelo) declarado para uma filial, mesmo sem itens.
type Declaration struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	Model    string `json:"model"`
	BranchID string `json:"branch_id"`
}

type Branch struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	City   string `json:"city"`
	Region string `json:"region"` // UF (duas letras)
	Active bool   `json:"active"`
}

// DisplayName: "cidade-UF" quando a filial não tem nome próprio.
func (b Branch) DisplayName() string {
	if b.Name != "" {
		return b.Name
	}
	return b.City + "-" + b.Region
}

type CreateItemPayload struct {
	Code          string  `json:"code"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	BoxCount      int     `json:"box_count"`
	UnitsPerBox   int     `json:"units_per_box"`
	TotalUnits    int     `json:"total_units"`
	BoxPrice      float64 `json:"box_price"`
	UnitPrice     float64 `json:"unit_price"`
	PurchasePrice float64 `json:"purchase_price"`
	BranchID      string  `json:"branch_id"`
	ContainerID   string  `json:"container_id"`
}

// Backend: colaborador de persistência do estoque. Todos os campos numéricos
// cruzam esta fronteira como números simples; parse/format de texto localizado
// acontece apenas no lado da UI (handlers).
type Backend interface {
	ListItems(branchID string) ([]Item, error)
	ListDeclarations(branchID string) ([]Declaration, error)
	CreateItem(p CreateItemPayload) (Item, error)
	UpdateItemField(itemID string, field EditField, value float64) error
	DeleteItem(itemID string) error
	DeleteItemGroup(brand, model, containerID string) error
	// CreateDeclaration é idempotente: conflito de par já existente conta como sucesso.
	CreateDeclaration(brand, model, branchID string) (Declaration, error)
	DeleteDeclaration(declarationID string) error
	CreateContainer(branchID, displayName, city string) (string, error)
	ListBranches() ([]Branch, error)
	CreateBranch(name, city, region string) (Branch, error)
}
