package stock

import (
	"math"
	"strconv"
	"strings"
)

// ParseLocaleNumber: converte texto numérico no formato pt-BR ("1.234,50") para
// float64. Remove o separador de milhar (.), troca a vírgula decimal por ponto e
// faz o parse. Entrada vazia ou inválida vira 0 — nunca retorna erro.
// Inteiros simples sem separador ("1234") passam direto.
func ParseLocaleNumber(text string) float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// FormatLocaleNumber: formatação inversa, com casas decimais fixas e agrupamento
// de milhares. Ex: FormatLocaleNumber(1234.5, 2) == "1.234,50".
// Contrato: ParseLocaleNumber(FormatLocaleNumber(x, 2)) == round(x, 2) para todo
// x finito não negativo.
func FormatLocaleNumber(n float64, decimals int) string {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		n = 0
	}
	if decimals < 0 {
		decimals = 0
	}
	s := strconv.FormatFloat(n, 'f', decimals, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart = s[:i]
		fracPart = s[i+1:]
	}

	var b strings.Builder
	for i := 0; i < len(intPart); i++ {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[i])
	}

	out := b.String()
	if fracPart != "" {
		out += "," + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}
