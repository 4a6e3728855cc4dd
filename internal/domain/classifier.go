package domain

import (
	"regexp"
	"strings"

	m "testgen.dev/pkg/testgen/internal/model"
)

var wordRegex = regexp.MustCompile(`\w+`)

// Buckets partitions function symbols by visibility.
type Buckets struct {
	External        []m.Symbol
	Public          []m.Symbol
	InternalPrivate []m.Symbol
	// Unclassified counts blocks that carry no visibility keyword.
	Unclassified int
}

// Reachable returns the external bucket followed by the public bucket.
func (b Buckets) Reachable() []m.Symbol {
	out := make([]m.Symbol, 0, len(b.External)+len(b.Public))
	out = append(out, b.External...)

	return append(out, b.Public...)
}

// FunctionsBy returns the blocks whose modifier section contains visibility
// as a whole word, in source order.
func FunctionsBy(blocks []string, visibility m.Visibility) []string {
	var out []string

	for _, block := range blocks {
		if hasModifier(block, string(visibility)) {
			out = append(out, block)
		}
	}

	return out
}

// Classify sorts blocks into the external, public and merged
// internal/private buckets. Blocks without a visibility keyword are only
// counted.
func Classify(blocks []string) Buckets {
	var buckets Buckets

	buckets.External = functionSymbols(FunctionsBy(blocks, m.VisibilityExternal), m.VisibilityExternal)
	buckets.Public = functionSymbols(FunctionsBy(blocks, m.VisibilityPublic), m.VisibilityPublic)
	buckets.InternalPrivate = append(
		functionSymbols(FunctionsBy(blocks, m.VisibilityInternal), m.VisibilityInternal),
		functionSymbols(FunctionsBy(blocks, m.VisibilityPrivate), m.VisibilityPrivate)...,
	)

	for _, block := range blocks {
		if blockVisibility(block) == "" {
			buckets.Unclassified++
		}
	}

	return buckets
}

func functionSymbols(blocks []string, visibility m.Visibility) []m.Symbol {
	symbols := make([]m.Symbol, 0, len(blocks))

	for _, block := range blocks {
		symbols = append(symbols, m.Symbol{
			Kind:       m.KindFunction,
			Name:       FunctionName(block),
			Visibility: visibility,
			Signature:  block,
		})
	}

	return symbols
}

// modifierSection is the text between the parameter list and the body brace.
func modifierSection(block string) string {
	open := strings.Index(block, "(")
	if open < 0 {
		return ""
	}

	closing := strings.Index(block[open:], ")")
	if closing < 0 {
		return ""
	}

	return strings.TrimSuffix(block[open+closing+1:], "{")
}

func hasModifier(block, keyword string) bool {
	for _, word := range wordRegex.FindAllString(modifierSection(block), -1) {
		if word == keyword {
			return true
		}
	}

	return false
}

func blockVisibility(block string) m.Visibility {
	for _, word := range wordRegex.FindAllString(modifierSection(block), -1) {
		if v, ok := m.ParseVisibility(word); ok {
			return v
		}
	}

	return ""
}
