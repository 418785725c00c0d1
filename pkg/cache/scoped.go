package cache

// ScopedKeyer prefixes every key of an inner Keyer. The CLI and the server
// use it when the cache is a shared Redis instance, so boxbuilder's entries
// stay apart from other tenants:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "boxbuilder:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix. A nil inner keyer means the
// DefaultKeyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) SetKey(inputsHash string) string {
	return k.prefix + k.inner.SetKey(inputsHash)
}

func (k *ScopedKeyer) ArtifactKey(setHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(setHash, opts)
}
