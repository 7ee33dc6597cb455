package stock

import (
	"fmt"
	"strings"
)

// Cidade padrão por UF, usada quando o cadastro da filial não informa a cidade.
var defaultCityByRegion = map[string]string{
	"AM": "Manaus",
	"BA": "Salvador",
	"CE": "Fortaleza",
	"DF": "Brasília",
	"ES": "Vitória",
	"GO": "Goiânia",
	"MG": "Belo Horizonte",
	"PA": "Belém",
	"PB": "João Pessoa",
	"PE": "Recife",
	"PR": "Curitiba",
	"RJ": "Rio de Janeiro",
	"RN": "Natal",
	"RS": "Porto Alegre",
	"SC": "Florianópolis",
	"SP": "São Paulo",
}

// DefaultCityForRegion: cidade padrão para a UF; vazio quando a UF é desconhecida.
func DefaultCityForRegion(region string) string {
	return defaultCityByRegion[strings.ToUpper(strings.TrimSpace(region))]
}

type ProvisionRequest struct {
	// CandidateID pode ser vazio, ou ser o próprio id da filial servindo de
	// placeholder lógico para um depósito ainda não resolvido.
	CandidateID string
	BranchID    string
	City        string
	Region      string
	Brand       string
	Model       string
}

// ResolveContainer: resolve o id do depósito de estoque ao qual anexar um item
// novo, criando o registro se a filial nunca teve um. Chamado exatamente uma vez
// por commit de rascunho, logo antes do create do item.
//
// Qualquer erro do backend na criação aborta o commit inteiro; o rascunho
// permanece em draft e o erro sobe para quem chamou (sem retry automático).
func ResolveContainer(b Backend, req ProvisionRequest) (string, error) {
	// Candidato real informado (e não apenas a filial fazendo as vezes de
	// depósito não resolvido): usa como está.
	if req.CandidateID != "" && req.CandidateID != req.BranchID {
		return req.CandidateID, nil
	}

	if strings.TrimSpace(req.BranchID) == "" {
		return "", &MissingFieldError{Field: "filial"}
	}

	city := strings.TrimSpace(req.City)
	if city == "" {
		city = DefaultCityForRegion(req.Region)
	}
	if city == "" {
		return "", &MissingFieldError{Field: "cidade"}
	}

	name := fmt.Sprintf("%s Stock - %s", BrandLabel(req.Brand), ModelLabel(req.Model))
	id, err := b.CreateContainer(req.BranchID, name, city)
	if err != nil {
		return "", err
	}
	return id, nil
}
