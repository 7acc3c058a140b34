package driven

// IDGenerator produces pot identifiers. Implementations must never return
// the same value twice within a process lifetime.
type IDGenerator interface {
	NewID() string
}

// IDGeneratorFunc adapts a plain function to IDGenerator.
type IDGeneratorFunc func() string

// NewID calls f.
func (f IDGeneratorFunc) NewID() string { return f() }
