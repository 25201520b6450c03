package typename

import (
	"ethabi/paramtype"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache memoizes parsed type names. Failed reads are not cached.
// The cached types are shared between callers and must not be modified.
type Cache struct {
	reader *paramtype.Reader
	types  *lru.Cache[string, paramtype.Type]
}

// New creates a cache holding up to size type names, read with r.
// A nil r means paramtype.DefaultReader.
func New(size int, r *paramtype.Reader) (*Cache, error) {
	if r == nil {
		r = paramtype.DefaultReader
	}

	types, err := lru.New[string, paramtype.Type](size)
	if err != nil {
		return nil, err
	}

	return &Cache{
		reader: r,
		types:  types,
	}, nil
}

// Read returns the cached type of name, parsing it on a miss.
func (c *Cache) Read(name string) (paramtype.Type, error) {
	if t, ok := c.types.Get(name); ok {
		return t, nil
	}

	t, err := c.reader.Read(name)
	if err != nil {
		return paramtype.Type{}, err
	}

	c.types.Add(name, t)
	return t, nil
}

// Len returns the number of cached type names.
func (c *Cache) Len() int {
	return c.types.Len()
}

// Purge drops all cached type names.
func (c *Cache) Purge() {
	c.types.Purge()
}
