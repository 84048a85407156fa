package katachi

import (
	"strconv"
	"strings"
)

// Step is one segment of a Path: either a property name or an array index.
type Step struct {
	Name  string
	Index int
	// IsIndex reports whether the step addresses an array element.
	IsIndex bool
}

// Field returns a Step addressing the given property name.
func Field(name string) Step { return Step{Name: name} }

// Index returns a Step addressing the i-th array element.
func Index(i int) Step { return Step{Index: i, IsIndex: true} }

// Path locates a value inside the original input. Empty for the root.
// Path entries correspond exactly to the nesting the value has in the
// parsed output.
type Path []Step

// Child returns a copy of p extended by step. Copying keeps sibling
// subtrees from sharing backing arrays.
func (p Path) Child(step Step) Path {
	out := make(Path, 0, len(p)+1)
	out = append(out, p...)
	return append(out, step)
}

// Pointer renders p as an RFC 6901 JSON Pointer, "/" for the root.
func (p Path) Pointer() string {
	if len(p) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, st := range p {
		b.WriteByte('/')
		if st.IsIndex {
			b.WriteString(strconv.Itoa(st.Index))
			continue
		}
		b.WriteString(escapePointer(st.Name))
	}
	return b.String()
}

func (p Path) String() string { return p.Pointer() }

// escapePointer applies RFC 6901 escaping: '~' -> "~0", '/' -> "~1".
func escapePointer(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "~", "~0"), "/", "~1")
}
