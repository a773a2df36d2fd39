// Package keymap supplies the mapping from logical line-editor actions to
// platform key sequences, keyed by terminal type. Key decoding itself
// belongs to the line-editing runtime; dorc only emits the bindings.
package keymap

// Action is a logical line-editor action name
type Action string

const (
	MoveLineStart     Action = "beginning-of-line"
	MoveLineEnd       Action = "end-of-line"
	DeleteChar        Action = "delete-char"
	HistorySearchBack Action = "history-beginning-search-backward"
	HistorySearchFwd  Action = "history-beginning-search-forward"
)

// Binding pairs one key sequence with the action it triggers
type Binding struct {
	Sequence string
	Action   Action
}

// defaultTable holds ANSI-style sequences that most terminals emit
var defaultTable = []Binding{
	{Sequence: `^[[H`, Action: MoveLineStart},
	{Sequence: `^[[F`, Action: MoveLineEnd},
	{Sequence: `^[[3~`, Action: DeleteChar},
	{Sequence: `^[[A`, Action: HistorySearchBack},
	{Sequence: `^[[B`, Action: HistorySearchFwd},
}

// tableOverrides adjusts sequences for terminal types whose capability
// entries differ from the ANSI defaults
var tableOverrides = map[string][]Binding{
	"rxvt": {
		{Sequence: `^[[7~`, Action: MoveLineStart},
		{Sequence: `^[[8~`, Action: MoveLineEnd},
	},
	"linux": {
		{Sequence: `^[[1~`, Action: MoveLineStart},
		{Sequence: `^[[4~`, Action: MoveLineEnd},
	},
}

// Bindings returns the binding table for the given terminal type, in
// stable emission order. Unknown terminal types get the default table.
func Bindings(term string) []Binding {
	overrides := tableOverrides[baseTerm(term)]

	out := make([]Binding, 0, len(defaultTable))
	for _, b := range defaultTable {
		bound := b
		for _, o := range overrides {
			if o.Action == b.Action {
				bound = o
				break
			}
		}
		out = append(out, bound)
	}
	return out
}

// baseTerm strips variant suffixes: "rxvt-256color" -> "rxvt"
func baseTerm(term string) string {
	for i := 0; i < len(term); i++ {
		if term[i] == '-' {
			return term[:i]
		}
	}
	return term
}
