package serdes

// Context is the field-container tree a grammar pass builds (on read) or
// consumes (on write): a mapping from target name to the ordered sequence
// of values the grammar visited that name with. A nested data unit is
// stored as a *Context value under its own target name, so the tree
// composes without a separate container type.
//
// A Context is only ever touched by the single goroutine driving it at any
// moment (the grammar goroutine and the Driver goroutine rendezvous, never
// run concurrently), so no internal locking is needed.
type Context struct {
	fields   map[string][]any
	nextRead map[string]int
	order    []string
}

// NewContext returns an empty Context.
func NewContext() *Context {
	return &Context{fields: make(map[string][]any), nextRead: make(map[string]int)}
}

// Append records v as the next value for target, used while reading.
func (c *Context) Append(target string, v any) int {
	if _, ok := c.fields[target]; !ok {
		c.order = append(c.order, target)
	}
	c.fields[target] = append(c.fields[target], v)
	return len(c.fields[target]) - 1
}

// Next returns the next not-yet-consumed value for target, used while
// writing. ok is false if every value for target has already been taken.
func (c *Context) Next(target string) (v any, ok bool) {
	vals := c.fields[target]
	i := c.nextRead[target]
	if i >= len(vals) {
		return nil, false
	}
	c.nextRead[target] = i + 1
	return vals[i], true
}

// Values returns every value recorded for target, in grammar-visit order.
func (c *Context) Values(target string) []any {
	return c.fields[target]
}

// Set replaces the full value sequence for target, used to build a Context
// by hand before a write pass.
func (c *Context) Set(target string, values ...any) {
	if _, ok := c.fields[target]; !ok {
		c.order = append(c.order, target)
	}
	c.fields[target] = values
	c.nextRead[target] = 0
}

// Remaining reports how many values for target have not yet been consumed
// by Next.
func (c *Context) Remaining(target string) int {
	return len(c.fields[target]) - c.nextRead[target]
}

// Unconsumed returns the target names, in first-seen order, for which
// Remaining is non-zero: leftover values a write pass never asked for.
func (c *Context) Unconsumed() []string {
	var out []string
	for _, t := range c.order {
		if c.Remaining(t) > 0 {
			out = append(out, t)
		}
	}
	return out
}

// Targets returns every target name that has at least one recorded value,
// in first-seen order.
func (c *Context) Targets() []string {
	return append([]string(nil), c.order...)
}
