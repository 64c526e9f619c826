package adatags

// Kind identifies the syntactic role a Token plays. Values and ordering
// mirror the classic Ada ctags parser's kind enumeration so that the
// descriptor table below lines up with it entry for entry.
type Kind int

const (
	Separate Kind = iota - 2
	Undefined

	PackageSpec
	Package
	TypeSpec
	Type
	SubtypeSpec
	Subtype
	RecordComponent
	EnumLiteral
	VariableSpec
	Variable
	Formal
	Constant
	Exception
	SubprogramSpec
	Subprogram
	TaskSpec
	Task
	ProtectedSpec
	Protected
	EntrySpec
	Entry
	Label
	Identifier
	AutomaticVariable
	Anonymous

	kindCount
)

type kindInfo struct {
	letter  byte
	long    string
	enabled bool
}

// kindTable is indexed by Kind for the range [PackageSpec, kindCount).
// Enablement follows the classic parser entry for entry: a handful of
// spec forms (typespec, subspec, varspec, entryspec) default to disabled
// because their body counterpart already covers the common case, while
// packspec/subprogspec/taskspec/protectspec default to enabled since a
// bodyless declaration of those is itself the whole unit. Callers can
// override any of this with WithKindEnabled.
var kindTable = [kindCount]kindInfo{
	PackageSpec:        {'P', "packspec", true},
	Package:            {'p', "package", true},
	TypeSpec:           {'T', "typespec", false},
	Type:               {'t', "type", true},
	SubtypeSpec:        {'U', "subspec", false},
	Subtype:            {'u', "subtype", true},
	RecordComponent:    {'c', "component", true},
	EnumLiteral:        {'l', "literal", true},
	VariableSpec:       {'V', "varspec", false},
	Variable:           {'v', "variable", true},
	Formal:             {'f', "formal", true},
	Constant:           {'n', "constant", true},
	Exception:          {'x', "exception", true},
	SubprogramSpec:     {'R', "subprogspec", true},
	Subprogram:         {'r', "subprogram", true},
	TaskSpec:           {'K', "taskspec", true},
	Task:               {'k', "task", true},
	ProtectedSpec:      {'O', "protectspec", true},
	Protected:          {'o', "protected", true},
	EntrySpec:          {'E', "entryspec", false},
	Entry:              {'e', "entry", true},
	Label:              {'b', "label", true},
	Identifier:         {'i', "identifier", true},
	AutomaticVariable:  {'a', "autovar", false},
	Anonymous:          {'y', "annon", false},
}

func (k Kind) valid() bool {
	return k > Undefined && k < kindCount
}

func (k Kind) defaultEnabled() bool {
	if !k.valid() {
		return false
	}
	return kindTable[k].enabled
}

// Letter returns the single-character kind code used in ctags-style
// output, or 0 if k has no such form (Separate, Undefined, or out of
// range).
func (k Kind) Letter() byte {
	if !k.valid() {
		return 0
	}
	return kindTable[k].letter
}

// String returns the long kind name used in scope descriptions and
// JSON output.
func (k Kind) String() string {
	if k == Separate {
		return "separate"
	}
	if !k.valid() {
		return "undefined"
	}
	return kindTable[k].long
}

// KindByLetter looks up a kind by its single-character ctags code, for
// parsing --kinds-style command line flags.
func KindByLetter(letter byte) (Kind, bool) {
	for k := PackageSpec; k < kindCount; k++ {
		if kindTable[k].letter == letter {
			return k, true
		}
	}
	return Undefined, false
}

// makeSpec maps a body kind to the kind its forward declaration would
// carry. Kinds with no spec form map to Undefined, which causes the
// token to be dropped at emit time.
func makeSpec(k Kind) Kind {
	switch k {
	case Package:
		return PackageSpec
	case Type:
		return TypeSpec
	case Subtype:
		return SubtypeSpec
	case Variable:
		return VariableSpec
	case Subprogram:
		return SubprogramSpec
	case Task:
		return TaskSpec
	case Protected:
		return ProtectedSpec
	case Entry:
		return EntrySpec
	default:
		return Undefined
	}
}
