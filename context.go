package katachi

// Context carries the diagnostic state of one validation pass: the current
// traversal Path plus a shared, append-only issue list. A nil *Context marks
// the fast pass, where composites stop at the first failure and skip all
// path bookkeeping. A Context is created per top-level SafeParse/Parse
// invocation and discarded afterwards; it never escapes the call.
type Context struct {
	path   Path
	issues *Issues
}

// NewContext returns a fresh Context rooted at the empty path.
func NewContext() *Context {
	return &Context{issues: &Issues{}}
}

// Path returns the current traversal path.
func (c *Context) Path() Path { return c.path }

// WithField derives a child context for the given property name. The path
// prefix is value-copied so sibling subtrees never share it; the issue list
// stays shared.
func (c *Context) WithField(name string) *Context {
	return &Context{path: c.path.Child(Field(name)), issues: c.issues}
}

// WithIndex derives a child context for the i-th array element.
func (c *Context) WithIndex(i int) *Context {
	return &Context{path: c.path.Child(Index(i)), issues: c.issues}
}

// AddIssue records an issue with the given code and message at the current
// path.
func (c *Context) AddIssue(code, msg string) {
	*c.issues = append(*c.issues, Issue{Path: c.path, Code: code, Message: msg})
}

// Add records a pre-built issue, stamping the current path when unset.
func (c *Context) Add(it Issue) {
	if it.Path == nil {
		it.Path = c.path
	}
	*c.issues = append(*c.issues, it)
}

// Issues returns the accumulated issue list.
func (c *Context) Issues() Issues { return *c.issues }
