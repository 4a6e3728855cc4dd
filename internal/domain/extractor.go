package domain

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver"

	m "testgen.dev/pkg/testgen/internal/model"
)

// DefaultVariableTypes are the type keywords whose public declarations are
// extracted.
var DefaultVariableTypes = []string{"bytes32", "uint256", "address", "bool"}

// The patterns are lexical on purpose: no AST, no balanced-paren checks.
// The parameter list admits identifiers, whitespace, commas, brackets and
// the `*` and `/` characters; the modifier section may hold words, commas
// and parentheses.
var (
	functionBlockRegex = regexp.MustCompile(`function\s\w+\([\w\s,\[\]\*/]*\)[\r\n\s\w\(\),]+\{`)
	functionNameRegex  = regexp.MustCompile(`function\s(\w+)`)
	variableNameRegex  = regexp.MustCompile(`public\s(\w+)`)
	contractIsRegex    = regexp.MustCompile(`contract\s(\w+)\sis`)
	contractBraceRegex = regexp.MustCompile(`contract\s(\w+)\s\{`)
	pragmaRegex        = regexp.MustCompile(`pragma\s+solidity\s+([^;]+);`)
)

// Extraction is everything the extractor found in one source text.
type Extraction struct {
	Contract       m.ContractName
	Pragma         string
	PragmaValid    bool
	FunctionBlocks []string
	VariableBlocks []string
	Variables      []m.Symbol
}

// SymbolExtractor scans raw contract text.
type SymbolExtractor interface {
	Extract(rawText string) Extraction
}

type symbolExtractor struct {
	variableRegex *regexp.Regexp
	typeRegex     *regexp.Regexp
}

// NewSymbolExtractor builds an extractor for the given variable type
// keywords. An empty list selects DefaultVariableTypes.
func NewSymbolExtractor(variableTypes ...string) SymbolExtractor {
	types := normaliseTypes(variableTypes)

	quoted := make([]string, 0, len(types))
	for _, t := range types {
		quoted = append(quoted, regexp.QuoteMeta(t))
	}

	alternation := strings.Join(quoted, "|")

	return &symbolExtractor{
		variableRegex: regexp.MustCompile(`\b(` + alternation + `)\s[\w\s]*public\s\w+\s*[;=]`),
		typeRegex:     regexp.MustCompile(`^(` + alternation + `)`),
	}
}

func normaliseTypes(types []string) []string {
	var out []string

	seen := map[string]bool{}

	for _, t := range types {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}

		seen[t] = true
		out = append(out, t)
	}

	if len(out) == 0 {
		return DefaultVariableTypes
	}

	return out
}

func (e *symbolExtractor) Extract(rawText string) Extraction {
	pragma, valid := ExtractPragma(rawText)
	variables := e.VariableBlocks(rawText)

	return Extraction{
		Contract:       ExtractContractName(rawText),
		Pragma:         pragma,
		PragmaValid:    valid,
		FunctionBlocks: FunctionBlocks(rawText),
		VariableBlocks: variables,
		Variables:      e.variableSymbols(variables),
	}
}

// VariableBlocks returns public variable declarations in source order.
func (e *symbolExtractor) VariableBlocks(rawText string) []string {
	return e.variableRegex.FindAllString(rawText, -1)
}

func (e *symbolExtractor) variableSymbols(blocks []string) []m.Symbol {
	symbols := make([]m.Symbol, 0, len(blocks))

	for _, block := range blocks {
		symbols = append(symbols, m.Symbol{
			Kind:       m.KindVariable,
			Name:       VariableName(block),
			Type:       e.typeRegex.FindString(block),
			Visibility: m.VisibilityPublic,
			Signature:  block,
		})
	}

	return symbols
}

// FunctionBlocks returns function headers up to the body brace, in source order.
func FunctionBlocks(rawText string) []string {
	return functionBlockRegex.FindAllString(rawText, -1)
}

// FunctionName returns the identifier of a function block, or "".
func FunctionName(block string) string {
	return firstGroup(functionNameRegex, block)
}

// VariableName returns the identifier following `public` in a variable block, or "".
func VariableName(block string) string {
	return firstGroup(variableNameRegex, block)
}

// ExtractContractName tries the inheriting declaration form first and the
// plain brace form second. It returns "" when neither matches.
func ExtractContractName(rawText string) m.ContractName {
	if name := firstGroup(contractIsRegex, rawText); name != "" {
		return m.ContractName(name)
	}

	return m.ContractName(firstGroup(contractBraceRegex, rawText))
}

// ExtractPragma returns the solidity version constraint and whether it
// parses as a semver constraint. A file without a pragma reports valid.
func ExtractPragma(rawText string) (string, bool) {
	constraint := strings.TrimSpace(firstGroup(pragmaRegex, rawText))
	if constraint == "" {
		return "", true
	}

	if _, err := semver.NewConstraint(constraint); err != nil {
		return constraint, false
	}

	return constraint, true
}

func firstGroup(re *regexp.Regexp, text string) string {
	match := re.FindStringSubmatch(text)
	if len(match) < 2 {
		return ""
	}

	return match[1]
}
