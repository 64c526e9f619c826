package lsp

import (
	"testing"

	"github.com/adatags/adatags/adatags"
)

func TestBuildDocumentSymbolsNesting(t *testing.T) {
	tags := []adatags.Tag{
		{Name: "P", Kind: adatags.PackageSpec, Line: 1},
		{
			Name: "Q", Kind: adatags.SubprogramSpec, Line: 2,
			Scope: adatags.Scope{Present: true, Kind: adatags.Package, Name: "P"},
		},
		{
			Name: "R", Kind: adatags.Variable, Line: 4,
			Scope: adatags.Scope{Present: true, Kind: adatags.Package, Name: "P"},
		},
	}

	symbols := buildDocumentSymbols(tags)
	if len(symbols) != 1 {
		t.Fatalf("got %d root symbols, want 1: %+v", len(symbols), symbols)
	}
	root := symbols[0]
	if root.Name != "P" {
		t.Fatalf("root.Name = %q, want P", root.Name)
	}
	if len(root.Children) != 2 {
		t.Fatalf("got %d children of P, want 2: %+v", len(root.Children), root.Children)
	}
	if root.Children[0].Name != "Q" || root.Children[1].Name != "R" {
		t.Errorf("children = [%s, %s], want [Q, R]", root.Children[0].Name, root.Children[1].Name)
	}
}

func TestBuildDocumentSymbolsMultipleRoots(t *testing.T) {
	tags := []adatags.Tag{
		{Name: "A", Kind: adatags.PackageSpec, Line: 1},
		{Name: "B", Kind: adatags.PackageSpec, Line: 5},
	}

	symbols := buildDocumentSymbols(tags)
	if len(symbols) != 2 {
		t.Fatalf("got %d root symbols, want 2: %+v", len(symbols), symbols)
	}
}

func TestSymbolKindFallsBackForUnmappedKind(t *testing.T) {
	if got := symbolKind(adatags.Undefined); got == 0 {
		t.Errorf("symbolKind(Undefined) = 0, want a non-zero fallback")
	}
}
