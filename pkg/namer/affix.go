package namer

// Affix wraps base with the optional "prefix" and "suffix" options.
// Nil or absent affixes are omitted, so with neither set Affix returns base unchanged.
func Affix(base string, opts Options) string {
	return compose(base, opts, true, true)
}

func compose(base string, opts Options, usePrefix, useSuffix bool) string {
	if usePrefix {
		if p, ok := opts.String(KeyPrefix); ok {
			base = p + base
		}
	}
	if useSuffix {
		if s, ok := opts.String(KeySuffix); ok {
			base += s
		}
	}
	return base
}
