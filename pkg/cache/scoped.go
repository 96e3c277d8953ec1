package cache

// ScopedKeyer prefixes the keys of another [Keyer] so that several
// deployments can share one Redis or MongoDB backend. The service scopes
// its keys as "server:convert:<digest>".
type ScopedKeyer struct {
	Keyer
	Prefix string
}

// NewScopedKeyer scopes inner, or the default keyer if inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return ScopedKeyer{Keyer: inner, Prefix: prefix}
}

func (k ScopedKeyer) ConvertKey(docHash string, opts ConvertKeyOpts) string {
	return k.Prefix + k.Keyer.ConvertKey(docHash, opts)
}

func (k ScopedKeyer) InspectKey(docHash, format string) string {
	return k.Prefix + k.Keyer.InspectKey(docHash, format)
}

func (k ScopedKeyer) PreviewKey(docHash string, opts PreviewKeyOpts) string {
	return k.Prefix + k.Keyer.PreviewKey(docHash, opts)
}
