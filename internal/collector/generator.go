package collector

// Generator turns one raw test case into zero or more tuples added to c.
// Emitting nothing skips the case; emitting several fans it out.
type Generator[S, T any] interface {
	Generate(name, fullPath string, raw S, c *Collector[T])
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc[S, T any] func(name, fullPath string, raw S, c *Collector[T])

// Generate calls f(name, fullPath, raw, c).
func (f GeneratorFunc[S, T]) Generate(name, fullPath string, raw S, c *Collector[T]) {
	f(name, fullPath, raw, c)
}

// Identity returns the generator used when the file-mapped type is the final
// type: one runnable standard tuple per test case, value passed through.
func Identity[T any]() Generator[T, T] {
	return GeneratorFunc[T, T](func(name, fullPath string, raw T, c *Collector[T]) {
		c.Add(name, fullPath, raw, true)
	})
}
