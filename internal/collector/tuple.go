package collector

// Tuple is one emitted unit of test parameterization. Fields returns the
// parameters in layout order, always ending with the enabled flag.
type Tuple interface {
	TestName() string
	FullPath() string
	Runnable() bool
	Fields() []any
}

// Standard is the (name, value, enabled) tuple layout.
type Standard[T any] struct {
	Name    string
	Value   T
	Enabled bool

	path string
}

func (s Standard[T]) TestName() string { return s.Name }

func (s Standard[T]) FullPath() string { return s.path }

func (s Standard[T]) Runnable() bool { return s.Enabled }

func (s Standard[T]) Fields() []any {
	return []any{s.Name, s.Value, s.Enabled}
}

// Extended is the (name, fork, code, container kind, value, enabled) tuple
// layout used by generators that fan out per execution fork.
type Extended[T any] struct {
	Name          string
	Fork          string
	Code          []byte
	ContainerKind string
	Value         T
	Enabled       bool

	path string
}

func (e Extended[T]) TestName() string { return e.Name }

func (e Extended[T]) FullPath() string { return e.path }

func (e Extended[T]) Runnable() bool { return e.Enabled }

func (e Extended[T]) Fields() []any {
	return []any{e.Name, e.Fork, e.Code, e.ContainerKind, e.Value, e.Enabled}
}
