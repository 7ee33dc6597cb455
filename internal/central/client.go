package central

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"distribuidora-backend/internal/stock"
)

// Prefixo legado que a API da matriz usa para marcar linhas de categoria vazia.
// Na ingestão isso vira a variante marcada (Placeholder + DeclarationID) e o
// resto do código nunca mais interpreta strings de id.
const placeholderIDPrefix = "vazio-"

// Client: implementação de stock.Backend contra a API REST da matriz.
// Usada quando o console opera como espelho da central em vez do banco local.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// itemDTO: forma de item no JSON da matriz. O preço de caixa aceita uma lista
// ordenada de campos de origem: "preco_caixa" (atual) e "valor_caixa" (nome
// antigo), resolvida uma única vez aqui na ingestão.
type itemDTO struct {
	ID             string   `json:"id"`
	Code           string   `json:"codigo"`
	Brand          string   `json:"marca"`
	Model          string   `json:"modelo"`
	BoxCount       int      `json:"qtd_caixas"`
	UnitsPerBox    int      `json:"unidades_por_caixa"`
	TotalUnits     int      `json:"qtd_total"`
	BoxPrice       *float64 `json:"preco_caixa"`
	LegacyBoxPrice *float64 `json:"valor_caixa"`
	UnitPrice      float64  `json:"preco_unitario"`
	PurchasePrice  float64  `json:"preco_compra"`
	BranchID       string   `json:"filial_id"`
	ContainerID    string   `json:"estoque_id"`
}

func (d itemDTO) toItem() stock.Item {
	boxPrice := 0.0
	for _, src := range []*float64{d.BoxPrice, d.LegacyBoxPrice} {
		if src != nil {
			boxPrice = *src
			break
		}
	}

	it := stock.Item{
		ID:            d.ID,
		Code:          d.Code,
		Brand:         d.Brand,
		Model:         d.Model,
		BoxCount:      d.BoxCount,
		UnitsPerBox:   d.UnitsPerBox,
		TotalUnits:    d.TotalUnits,
		BoxPrice:      boxPrice,
		UnitPrice:     d.UnitPrice,
		PurchasePrice: d.PurchasePrice,
		BranchID:      d.BranchID,
		ContainerID:   d.ContainerID,
	}

	if declID, ok := strings.CutPrefix(d.ID, placeholderIDPrefix); ok {
		it.ID = ""
		it.Placeholder = true
		it.DeclarationID = declID
	}

	// A matriz é a autoridade, mas linhas antigas podem chegar com derivados
	// defasados; renormaliza na entrada.
	return stock.NormalizeItem(it)
}

type declarationDTO struct {
	ID       string `json:"id"`
	Brand    string `json:"marca"`
	Model    string `json:"modelo"`
	BranchID string `json:"filial_id"`
}

type branchDTO struct {
	ID     string `json:"id"`
	Name   string `json:"nome"`
	City   string `json:"cidade"`
	Region string `json:"uf"`
	Active bool   `json:"ativa"`
}

func (c *Client) do(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("payload inválido: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %v", stock.ErrBackendUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", stock.ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	// Conflito em criação de declaração é tratado como sucesso pelo chamador;
	// aqui só diferencia sucesso (2xx), conflito e falha.
	if resp.StatusCode == http.StatusConflict {
		return errConflict
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: matriz respondeu %d", stock.ErrBackendUnavailable, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: resposta ilegível: %v", stock.ErrBackendUnavailable, err)
		}
	}
	return nil
}

var errConflict = fmt.Errorf("registro já existe na matriz")

func (c *Client) ListItems(branchID string) ([]stock.Item, error) {
	var dtos []itemDTO
	if err := c.do(http.MethodGet, "/itens?filial="+url.QueryEscape(branchID), nil, &dtos); err != nil {
		return nil, err
	}

	items := make([]stock.Item, 0, len(dtos))
	for _, d := range dtos {
		items = append(items, d.toItem())
	}
	return items, nil
}

func (c *Client) ListDeclarations(branchID string) ([]stock.Declaration, error) {
	var dtos []declarationDTO
	if err := c.do(http.MethodGet, "/categorias?filial="+url.QueryEscape(branchID), nil, &dtos); err != nil {
		return nil, err
	}

	decls := make([]stock.Declaration, 0, len(dtos))
	for _, d := range dtos {
		decls = append(decls, stock.Declaration{ID: d.ID, Brand: d.Brand, Model: d.Model, BranchID: d.BranchID})
	}
	return decls, nil
}

func (c *Client) CreateItem(p stock.CreateItemPayload) (stock.Item, error) {
	body := map[string]any{
		"codigo":             p.Code,
		"marca":              p.Brand,
		"modelo":             p.Model,
		"qtd_caixas":         p.BoxCount,
		"unidades_por_caixa": p.UnitsPerBox,
		"qtd_total":          p.TotalUnits,
		"preco_caixa":        p.BoxPrice,
		"preco_unitario":     p.UnitPrice,
		"preco_compra":       p.PurchasePrice,
		"filial_id":          p.BranchID,
		"estoque_id":         p.ContainerID,
	}

	var dto itemDTO
	if err := c.do(http.MethodPost, "/itens", body, &dto); err != nil {
		return stock.Item{}, err
	}
	return dto.toItem(), nil
}

var fieldToWire = map[stock.EditField]string{
	stock.FieldBoxCount:    "qtd_caixas",
	stock.FieldUnitsPerBox: "unidades_por_caixa",
	stock.FieldBoxPrice:    "preco_caixa",
	stock.FieldUnitPrice:   "preco_unitario",
	stock.FieldTotalUnits:  "qtd_total",
}

func (c *Client) UpdateItemField(itemID string, field stock.EditField, value float64) error {
	wire, ok := fieldToWire[field]
	if !ok {
		return fmt.Errorf("campo de estoque desconhecido: %s", field)
	}

	body := map[string]any{"campo": wire, "valor": value}
	return c.do(http.MethodPatch, "/itens/"+url.PathEscape(itemID), body, nil)
}

func (c *Client) DeleteItem(itemID string) error {
	return c.do(http.MethodDelete, "/itens/"+url.PathEscape(itemID), nil, nil)
}

func (c *Client) DeleteItemGroup(brand, model, containerID string) error {
	q := url.Values{}
	q.Set("marca", brand)
	q.Set("modelo", model)
	q.Set("estoque", containerID)
	return c.do(http.MethodDelete, "/itens?"+q.Encode(), nil, nil)
}

func (c *Client) CreateDeclaration(brand, model, branchID string) (stock.Declaration, error) {
	body := map[string]any{"marca": brand, "modelo": model, "filial_id": branchID}

	var dto declarationDTO
	err := c.do(http.MethodPost, "/categorias", body, &dto)
	if err == errConflict {
		// Semântica idempotente: o par já existe, segue como sucesso com o
		// registro que está lá.
		decls, listErr := c.ListDeclarations(branchID)
		if listErr != nil {
			return stock.Declaration{}, listErr
		}
		for _, d := range decls {
			if strings.EqualFold(d.Brand, brand) && d.Model == model {
				return d, nil
			}
		}
		return stock.Declaration{Brand: brand, Model: model, BranchID: branchID}, nil
	}
	if err != nil {
		return stock.Declaration{}, err
	}
	return stock.Declaration{ID: dto.ID, Brand: dto.Brand, Model: dto.Model, BranchID: dto.BranchID}, nil
}

func (c *Client) DeleteDeclaration(declarationID string) error {
	return c.do(http.MethodDelete, "/categorias/"+url.PathEscape(declarationID), nil, nil)
}

func (c *Client) CreateContainer(branchID, displayName, city string) (string, error) {
	body := map[string]any{"filial_id": branchID, "nome": displayName, "cidade": city}

	var out struct {
		ID string `json:"id"`
	}
	if err := c.do(http.MethodPost, "/estoques", body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (c *Client) ListBranches() ([]stock.Branch, error) {
	var dtos []branchDTO
	if err := c.do(http.MethodGet, "/filiais", nil, &dtos); err != nil {
		return nil, err
	}

	branches := make([]stock.Branch, 0, len(dtos))
	for _, d := range dtos {
		branches = append(branches, stock.Branch{ID: d.ID, Name: d.Name, City: d.City, Region: d.Region, Active: d.Active})
	}
	return branches, nil
}

func (c *Client) CreateBranch(name, city, region string) (stock.Branch, error) {
	body := map[string]any{"nome": name, "cidade": city, "uf": region}

	var dto branchDTO
	if err := c.do(http.MethodPost, "/filiais", body, &dto); err != nil {
		return stock.Branch{}, err
	}
	return stock.Branch{ID: dto.ID, Name: dto.Name, City: dto.City, Region: dto.Region, Active: dto.Active}, nil
}
