package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/adatags/adatags/adatags"
)

// symbolKindTable maps a tag kind to the closest LSP SymbolKind. Ada's
// kind set doesn't line up one-to-one with LSP's; entries below are
// chosen for what an editor outline reads best as, not for a precise
// semantic match (exceptions become Event, labels become Key, there's
// no better fit in the LSP enum for either).
var symbolKindTable = map[adatags.Kind]protocol.SymbolKind{
	adatags.PackageSpec:       protocol.SymbolKindPackage,
	adatags.Package:           protocol.SymbolKindPackage,
	adatags.TypeSpec:          protocol.SymbolKindClass,
	adatags.Type:              protocol.SymbolKindClass,
	adatags.SubtypeSpec:       protocol.SymbolKindClass,
	adatags.Subtype:           protocol.SymbolKindClass,
	adatags.VariableSpec:      protocol.SymbolKindVariable,
	adatags.Variable:          protocol.SymbolKindVariable,
	adatags.Constant:          protocol.SymbolKindConstant,
	adatags.Exception:         protocol.SymbolKindEvent,
	adatags.SubprogramSpec:    protocol.SymbolKindFunction,
	adatags.Subprogram:        protocol.SymbolKindFunction,
	adatags.TaskSpec:          protocol.SymbolKindClass,
	adatags.Task:              protocol.SymbolKindClass,
	adatags.ProtectedSpec:     protocol.SymbolKindClass,
	adatags.Protected:         protocol.SymbolKindClass,
	adatags.EntrySpec:         protocol.SymbolKindMethod,
	adatags.Entry:             protocol.SymbolKindMethod,
	adatags.RecordComponent:   protocol.SymbolKindField,
	adatags.EnumLiteral:       protocol.SymbolKindEnumMember,
	adatags.Formal:            protocol.SymbolKindTypeParameter,
	adatags.Label:             protocol.SymbolKindKey,
	adatags.Identifier:        protocol.SymbolKindVariable,
	adatags.AutomaticVariable: protocol.SymbolKindVariable,
	adatags.Anonymous:         protocol.SymbolKindNamespace,
}

func symbolKind(k adatags.Kind) protocol.SymbolKind {
	if sk, ok := symbolKindTable[k]; ok {
		return sk
	}
	return protocol.SymbolKindVariable
}

// symNode accumulates a tag's children before the tree is flattened
// into protocol.DocumentSymbol, whose Children field is a plain value
// slice: building value slices incrementally while still discovering
// grandchildren would require copying parents back into their own
// parents' slices every time a descendant is added, so the pointer
// tree is built first and converted once at the end.
type symNode struct {
	tag      adatags.Tag
	children []*symNode
}

// buildDocumentSymbols reconstructs a nesting outline from a flat,
// document-order tag list by walking an open-ancestor stack: each tag
// carries its own immediate scope (kind, name), and since tags are
// emitted in the same order their owning tokens were visited, the
// nearest enclosing tag matching that scope is always still on top of
// the stack (or the stack unwinds past it to find it) by the time the
// next tag is reached. A bodyless declaration's own tag carries the
// spec form of its kind (PackageSpec) while its children's Scope names
// the body kind (Package), so either form matches. Qualified-tag
// duplicates (dotted names) are not expected on the input here;
// callers building symbols should not pass adatags.WithQualifiedTags.
func buildDocumentSymbols(tags []adatags.Tag) []protocol.DocumentSymbol {
	var roots []*symNode
	var stack []*symNode

	specForm := map[adatags.Kind]adatags.Kind{
		adatags.Package:    adatags.PackageSpec,
		adatags.Type:       adatags.TypeSpec,
		adatags.Subtype:    adatags.SubtypeSpec,
		adatags.Variable:   adatags.VariableSpec,
		adatags.Subprogram: adatags.SubprogramSpec,
		adatags.Task:       adatags.TaskSpec,
		adatags.Protected:  adatags.ProtectedSpec,
		adatags.Entry:      adatags.EntrySpec,
	}

	for _, tag := range tags {
		node := &symNode{tag: tag}

		if !tag.Scope.Present {
			stack = stack[:0]
		} else {
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				spec, hasSpec := specForm[tag.Scope.Kind]
				if (top.tag.Kind == tag.Scope.Kind || (hasSpec && top.tag.Kind == spec)) &&
					top.tag.Name == tag.Scope.Name {
					break
				}
				stack = stack[:len(stack)-1]
			}
		}

		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.children = append(parent.children, node)
		}
		stack = append(stack, node)
	}

	return convertSymbols(roots)
}

func convertSymbols(nodes []*symNode) []protocol.DocumentSymbol {
	result := make([]protocol.DocumentSymbol, 0, len(nodes))
	for _, n := range nodes {
		result = append(result, convertSymbol(n))
	}
	return result
}

func convertSymbol(n *symNode) protocol.DocumentSymbol {
	rng := tagRange(n.tag)
	detail := n.tag.Kind.String()
	return protocol.DocumentSymbol{
		Name:           n.tag.Name,
		Detail:         &detail,
		Kind:           symbolKind(n.tag.Kind),
		Range:          rng,
		SelectionRange: rng,
		Children:       convertSymbols(n.children),
	}
}

// tagRange produces a zero-width range at the tag's declaration line.
// Tags only carry a line number and a byte file offset, not a column,
// matching ctags' own position model, so there's no end column to
// report either.
func tagRange(tag adatags.Tag) protocol.Range {
	line := protocol.UInteger(0)
	if tag.Line > 0 {
		line = protocol.UInteger(tag.Line - 1)
	}
	pos := protocol.Position{Line: line, Character: 0}
	return protocol.Range{Start: pos, End: pos}
}
