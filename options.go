package oncebox

// Option configures a Registry created by WithRegistry.
type Option func(*Registry)

// WithObserver attaches an Observer that receives deferred and drained
// events for the lifetime of the registry.
func WithObserver(o Observer) Option {
	return func(registry *Registry) {
		registry.observer = o
	}
}
