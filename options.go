package parsekit

// Config holds parser configuration. It is built once when a Parser is
// created and never mutated afterward, so a Parser is safe for
// concurrent use without coordination.
type Config struct {
	// StrictMode makes recoverable problems fatal: malformed markup
	// and undecodable byte sequences become errors instead of
	// best-effort output.
	StrictMode bool

	// MaxDepth bounds nesting depth for structured formats. Only
	// enforced in strict mode.
	MaxDepth uint32

	// MaxSize bounds input length in bytes, enforced once at dispatch
	// before any backend runs. Zero means unlimited.
	MaxSize int64

	// Encoding is the declared encoding of plain-text input,
	// identified by IANA name. Defaults to UTF-8.
	Encoding string
}

// defaultConfig returns the default parser configuration.
func defaultConfig() Config {
	return Config{
		StrictMode: false,
		MaxDepth:   100,
		MaxSize:    0,
		Encoding:   "UTF-8",
	}
}

// Option configures a Parser at construction time.
type Option func(*Config)

// WithStrictMode enables or disables strict mode.
func WithStrictMode(strict bool) Option {
	return func(c *Config) {
		c.StrictMode = strict
	}
}

// WithMaxDepth sets the maximum nesting depth for structured formats.
func WithMaxDepth(depth uint32) Option {
	return func(c *Config) {
		c.MaxDepth = depth
	}
}

// WithMaxSize sets the maximum input size in bytes. Zero or negative
// disables the limit.
func WithMaxSize(size int64) Option {
	return func(c *Config) {
		if size < 0 {
			size = 0
		}
		c.MaxSize = size
	}
}

// WithEncoding sets the declared encoding for plain-text input.
func WithEncoding(name string) Option {
	return func(c *Config) {
		if name != "" {
			c.Encoding = name
		}
	}
}
