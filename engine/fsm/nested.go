package fsm

// Submachine is a machine embedded as a composite state of an outer machine
// with event type E. Build one with Nest
type Submachine[E Event] interface {
	Is(path ...StateID) bool
	Done() bool
	Reset()
	Path() []string

	deliver(e E) Result
	initialized() bool
}

type nested[E Event, F Event] struct {
	inner *Machine[F]
	adapt func(E) F
}

// Nest wraps inner so it can run inside a machine with event type E.
// adapt converts each outer event into the inner machine's event, typically
// translating the outer control parameters into the inner behavior's ones
func Nest[E Event, F Event](inner *Machine[F], adapt func(E) F) Submachine[E] {
	return &nested[E, F]{inner: inner, adapt: adapt}
}

func (n *nested[E, F]) deliver(e E) Result      { return n.inner.Process(n.adapt(e)) }
func (n *nested[E, F]) initialized() bool       { return n.inner.ready }
func (n *nested[E, F]) Is(path ...StateID) bool { return n.inner.Is(path...) }
func (n *nested[E, F]) Done() bool              { return n.inner.Done() }
func (n *nested[E, F]) Reset()                  { n.inner.Reset() }
func (n *nested[E, F]) Path() []string          { return n.inner.Path() }
