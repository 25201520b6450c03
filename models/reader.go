package models

import "ethabi/paramtype"

// TypeReader resolves canonical type names, e.g. *paramtype.Reader
// or a *typename.Cache.
type TypeReader interface {
	Read(name string) (paramtype.Type, error)
}

var typeReader TypeReader = paramtype.DefaultReader

// UseReader sets the reader used by all parameter decoders.
// It is meant to be called once during start-up, nil restores the default.
func UseReader(r TypeReader) {
	if r == nil {
		r = paramtype.DefaultReader
	}

	typeReader = r
}
