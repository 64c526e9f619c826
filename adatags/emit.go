package adatags

// scopeChain threads the dotted qualified name of the nearest
// qualifiable ancestor down through the tree; nil means no ancestor
// has contributed one yet.
type scopeChain struct {
	name string
}

// emit walks the declaration tree built by parse and turns it into
// the flat list of tags a caller actually wants, applying spec
// promotion, scope computation, and the enabled/file-scope/qualified
// policy from opts. If opts.sink is set, each tag is also handed to it
// as it's produced; a MakeTag error aborts the walk.
func emit(root *Token, opts *options) ([]Tag, error) {
	var tags []Tag
	for _, child := range root.Children {
		if err := storeTags(child, nil, opts, &tags); err != nil {
			return tags, err
		}
	}
	return tags, nil
}

func storeTags(token *Token, parentScope *scopeChain, opts *options, tags *[]Tag) error {
	kind := token.Kind
	if token.IsSpec {
		kind = makeSpec(kind)
	}

	var scope Scope
	if token.Parent != nil {
		switch {
		case token.Parent.Kind == Separate:
			scope = Scope{Present: true, Kind: Separate, Name: token.Parent.Name}
		case token.Parent.Kind.valid():
			scope = Scope{Present: true, Kind: token.Parent.Kind, Name: token.Parent.Name}
		}
	}

	name := token.Name
	if kind == Anonymous && name == "" {
		name = "declare"
	}

	var nextScope *scopeChain

	if kind.valid() && opts.enabled(kind) && name != "" &&
		(kind != Anonymous || len(token.Children) > 0) &&
		(opts.fileScope || !token.IsFileScope) {
		tag := Tag{
			Name:        name,
			Kind:        kind,
			Line:        token.Line,
			FilePos:     token.FilePos,
			IsFileScope: token.IsFileScope,
			Scope:       scope,
			File:        opts.fileName,
		}
		*tags = append(*tags, tag)
		if opts.sink != nil {
			if err := opts.sink.MakeTag(tag); err != nil {
				return err
			}
		}

		if opts.qualifiedTags && isQualifiable(kind) {
			var dotted string
			if parentScope != nil {
				dotted = parentScope.name + "." + name
				qualified := Tag{
					Name:        dotted,
					Kind:        kind,
					Line:        token.Line,
					FilePos:     token.FilePos,
					IsFileScope: token.IsFileScope,
					Scope:       scope,
					File:        opts.fileName,
				}
				*tags = append(*tags, qualified)
				if opts.sink != nil {
					if err := opts.sink.MakeTag(qualified); err != nil {
						return err
					}
				}
			} else {
				dotted = name
			}
			nextScope = &scopeChain{name: dotted}
		}
	}

	for _, child := range token.Children {
		if err := storeTags(child, nextScope, opts, tags); err != nil {
			return err
		}
	}
	return nil
}

// isQualifiable reports whether kind's declarations are the sort that
// give a dotted qualified name to names nested under them. Kinds that
// are themselves always nested leaves (record components, enum
// literals, parameters, labels, statement identifiers, loop
// variables, anonymous blocks) never do.
func isQualifiable(k Kind) bool {
	switch k {
	case RecordComponent, EnumLiteral, Formal, Label, Identifier, AutomaticVariable, Anonymous:
		return false
	}
	return true
}
