package paramtype

import (
	"strconv"
	"strings"
)

// Reader converts canonical type names into Type values.
//
// Tuples are written as a comma separated list inside parentheses,
// "(address,uint256)". The square bracket and curly brace spellings,
// "[address,uint256]" and "{address,uint256}", are accepted for older
// inputs and parse to the same value.
type Reader struct {
	// MaxDepth limits how deep arrays and tuples may nest, 0 means no limit.
	MaxDepth int
}

// DefaultReader has no nesting limit.
var DefaultReader = &Reader{}

// Read parses name with DefaultReader.
func Read(name string) (Type, error) {
	return DefaultReader.Read(name)
}

// Read parses a canonical type name.
func (r *Reader) Read(name string) (Type, error) {
	return r.read(name, 0)
}

func (r *Reader) read(name string, depth int) (Type, error) {
	if r.MaxDepth > 0 && depth > r.MaxDepth {
		return Type{}, &NameError{Name: name, Err: ErrTooDeep}
	}

	inner, ok, err := group(name)
	if err != nil {
		return Type{}, err
	}
	if ok {
		return r.readTuple(inner, depth)
	}

	if strings.HasSuffix(name, "]") {
		return r.readArray(name, depth)
	}

	return readScalar(name)
}

func (r *Reader) readTuple(inner string, depth int) (Type, error) {
	if inner == "" {
		return Tuple(), nil
	}

	parts := split(inner)
	elems := make([]Type, 0, len(parts))
	for _, part := range parts {
		elem, err := r.read(part, depth+1)
		if err != nil {
			return Type{}, err
		}
		elems = append(elems, elem)
	}

	return Type{Kind: TupleTy, Elems: elems}, nil
}

func (r *Reader) readArray(name string, depth int) (Type, error) {
	open := strings.LastIndexByte(name, '[')
	if open < 0 {
		return Type{}, invalidName(name)
	}

	num := name[open+1 : len(name)-1]
	if num == "" {
		elem, err := r.read(name[:open], depth+1)
		if err != nil {
			return Type{}, err
		}
		return Array(elem), nil
	}

	length, err := parseSize(num)
	if err != nil {
		return Type{}, invalidNumber(name, err)
	}

	elem, err := r.read(name[:open], depth+1)
	if err != nil {
		return Type{}, err
	}

	return FixedArray(elem, length), nil
}

var sizedScalars = []struct {
	prefix string
	build  func(int) Type
}{
	{"uint", Uint},
	{"int", Int},
	{"bytes", FixedBytes},
}

func readScalar(name string) (Type, error) {
	switch name {
	case "address":
		return Address(), nil
	case "bytes":
		return Bytes(), nil
	case "bool":
		return Bool(), nil
	case "string":
		return String(), nil
	case "int":
		return Int(256), nil
	case "uint":
		return Uint(256), nil
	case "tuple":
		return Tuple(), nil
	}

	for _, s := range sizedScalars {
		if !strings.HasPrefix(name, s.prefix) {
			continue
		}

		suffix := name[len(s.prefix):]
		if suffix == "" || !isDigit(suffix[0]) {
			break
		}

		n, err := parseSize(suffix)
		if err != nil {
			return Type{}, invalidNumber(name, err)
		}
		if n == 0 {
			return Type{}, invalidNumber(name, nil)
		}

		return s.build(n), nil
	}

	return Type{}, invalidName(name)
}

var closers = map[byte]byte{
	'(': ')',
	'[': ']',
	'{': '}',
}

// group reports whether name is a single bracketed list and returns its
// inner text.
func group(name string) (string, bool, error) {
	if name == "" {
		return "", false, nil
	}
	if _, ok := closers[name[0]]; !ok {
		return "", false, nil
	}

	end, err := matchClose(name)
	if err != nil {
		return "", false, err
	}
	if end != len(name)-1 {
		// e.g. "(address,bool)[2]", an array of tuples.
		return "", false, nil
	}

	return name[1:end], true, nil
}

// matchClose returns the index of the bracket closing name[0].
func matchClose(name string) (int, error) {
	var stack []byte

	for i := 0; i < len(name); i++ {
		c := name[i]
		if closer, ok := closers[c]; ok {
			stack = append(stack, closer)
			continue
		}

		switch c {
		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return -1, invalidName(name)
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i, nil
			}
		}
	}

	return -1, invalidName(name)
}

// split cuts s at every comma outside of brackets.
func split(s string) []string {
	var (
		parts []string
		depth int
		last  int
	)

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[last:i])
				last = i + 1
			}
		}
	}

	return append(parts, s[last:])
}

func parseSize(s string) (int, error) {
	n, err := strconv.ParseUint(s, 10, strconv.IntSize-1)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
