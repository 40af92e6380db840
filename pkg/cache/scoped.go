package cache

// ScopedKeyer prepends a fixed prefix to every key the wrapped Keyer
// produces. Deployments that point several environments at one Redis
// give each a scope so their entries never collide:
//
//	staging := cache.NewScopedKeyer(nil, "staging:")
//	production := cache.NewDefaultKeyer()
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner with a key prefix. A nil inner falls back
// to the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return ScopedKeyer{inner: inner, prefix: prefix}
}

func (k ScopedKeyer) GraphKey(variant, contentHash string) string {
	return k.prefix + k.inner.GraphKey(variant, contentHash)
}

func (k ScopedKeyer) LayoutKey(graphHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(graphHash, opts)
}

func (k ScopedKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(layoutHash, opts)
}
