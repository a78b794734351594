package gooey

// Option configures an Engine during creation.
// Use functional options to customize Engine behavior.
//
// Example:
//
//	// Production: avulsion latches once per engine
//	e := gooey.NewEngine(rest, baseline, 30, 140)
//
//	// Diagnostics: re-evaluate the avulsion threshold on every call
//	e := gooey.NewEngine(rest, baseline, 30, 140, gooey.WithDebugUnlatched())
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	debugUnlatched bool
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		debugUnlatched: false,
	}
}

// WithDebugUnlatched disables the one-way avulsion latch. The engine then
// flattens the neck only while travel exceeds the avulsion distance and
// restores it when the blob comes back, which makes boundary behavior
// observable in tests and in the debug overlay.
func WithDebugUnlatched() Option {
	return func(o *engineOptions) {
		o.debugUnlatched = true
	}
}
