package config

// WithLookupEnv replaces the process environment lookup.
func (l *Loader) WithLookupEnv(fn func(string) (string, bool)) *Loader {
	l.lookupEnv = fn
	return l
}
