package adatags

// Token is one node of the declaration tree built while walking a
// compilation unit. A Token is created the moment its name (or, for
// anonymous blocks and loops, its introducing keyword) is recognized;
// whether it ultimately becomes a tag is decided later by the emitter.
type Token struct {
	Name        string
	Kind        Kind
	IsSpec      bool
	IsPrivate   bool
	Line        int
	FilePos     int64
	IsFileScope bool

	Parent   *Token
	Children []*Token
}

// newTokenNode creates a token and links it under parent, computing its
// file-scope flag from the parent's state at the moment of creation.
// The flag is fixed here and is not recomputed if the token is later
// reparented by appendTokenList; a generic formal created with a nil
// parent therefore keeps IsFileScope true even after being attached to
// its generic unit.
func newTokenNode(name string, kind Kind, isSpec bool, parent *Token) *Token {
	t := &Token{Name: name, Kind: kind, IsSpec: isSpec}

	fileScope := true
	if parent != nil && !parent.IsPrivate &&
		(parent.Kind == Undefined || parent.Kind == Separate ||
			(parent.IsSpec && isNestingKind(parent.Kind))) {
		fileScope = false
	}
	t.IsFileScope = fileScope

	appendToken(parent, t)
	return t
}

func isNestingKind(k Kind) bool {
	return k == Package || k == Subprogram || k == Protected || k == Task
}

func appendToken(parent, token *Token) {
	if parent == nil || token == nil {
		return
	}
	token.Parent = parent
	parent.Children = append(parent.Children, token)
}

// appendTokenList reparents each token in children onto parent, in
// order. Used to attach generic formals, which are built up detached
// (parent == nil) while scanning the generic clause, onto the unit
// they turn out to qualify once that unit's name is known.
func appendTokenList(parent *Token, children []*Token) {
	for _, c := range children {
		appendToken(parent, c)
	}
}

// unlinkToken removes token from parent's children, used when a
// forward declaration turns out to be "is separate" and so never
// becomes a body of its own.
func unlinkToken(parent, token *Token) {
	if parent == nil || token == nil {
		return
	}
	for i, c := range parent.Children {
		if c == token {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return
		}
	}
}
