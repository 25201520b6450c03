package models

import (
	"errors"
	"fmt"
	"io"

	"ethabi/paramtype"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	fieldName       = "name"
	fieldType       = "type"
	fieldIndexed    = "indexed"
	fieldComponents = "components"
)

// paramFields holds the recognised keys of a single parameter object.
// A nil slot means the key was absent or null.
type paramFields struct {
	name       *string
	kind       *string
	indexed    *bool
	components []byte
}

// decodeParamFields walks the keys of one parameter object. Every recognised
// key may appear once, unknown keys are skipped. The "indexed" key is only
// recognised when withIndexed is set.
func decodeParamFields(data []byte, withIndexed bool) (*paramFields, error) {
	iter := jsoniter.ParseBytes(json, data)
	if next := iter.WhatIsNext(); next != jsoniter.ObjectValue {
		return nil, fmt.Errorf("expected a parameter object, got %s", valueTypeName(next))
	}

	var (
		f    = &paramFields{}
		seen = make(map[string]bool, 4)
		err  error
	)

	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		switch key {
		case fieldName, fieldType, fieldComponents:
		case fieldIndexed:
			if !withIndexed {
				it.Skip()
				return it.Error == nil
			}
		default:
			it.Skip()
			return it.Error == nil
		}

		if seen[key] {
			err = duplicateField(key)
			return false
		}
		seen[key] = true

		if it.WhatIsNext() == jsoniter.NilValue {
			it.Skip()
			return it.Error == nil
		}

		switch key {
		case fieldName:
			name := it.ReadString()
			f.name = &name
		case fieldType:
			kind := it.ReadString()
			f.kind = &kind
		case fieldIndexed:
			indexed := it.ReadBool()
			f.indexed = &indexed
		case fieldComponents:
			f.components = it.SkipAndReturnBytes()
		}

		return it.Error == nil
	})

	if err != nil {
		return nil, err
	}
	if err := endOfInput(iter); err != nil {
		return nil, err
	}

	return f, nil
}

// resolveKind reads the "type" key and, for tuples, fills the tuple elements
// from the "components" key. A tuple nested in arrays, e.g. "tuple[]", is
// filled the same way. Components of other types are ignored.
func (f *paramFields) resolveKind(errMissingType error) (paramtype.Type, error) {
	if f.kind == nil {
		return paramtype.Type{}, errMissingType
	}

	kind, err := typeReader.Read(*f.kind)
	if err != nil {
		return paramtype.Type{}, err
	}

	if !kind.Base().IsTuple() {
		return kind, nil
	}

	if f.components == nil {
		return paramtype.Type{}, missingField(fieldComponents)
	}

	var components TupleParams
	if err := components.UnmarshalJSON(f.components); err != nil {
		return paramtype.Type{}, err
	}

	return kind.WithBase(paramtype.Type{Kind: paramtype.TupleTy, Elems: components}), nil
}

// decodeList calls fn with the raw bytes of every element of a JSON array.
// An absent or null list is treated as empty.
func decodeList(data []byte, fn func(raw []byte) error) error {
	if len(data) == 0 {
		return nil
	}

	iter := jsoniter.ParseBytes(json, data)

	switch next := iter.WhatIsNext(); next {
	case jsoniter.NilValue:
		return nil
	case jsoniter.ArrayValue:
	default:
		return fmt.Errorf("expected a list, got %s", valueTypeName(next))
	}

	var err error
	iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		raw := it.SkipAndReturnBytes()
		if it.Error != nil {
			return false
		}

		err = fn(raw)
		return err == nil
	})

	if err != nil {
		return err
	}

	return endOfInput(iter)
}

// endOfInput fails unless only whitespace follows the value iter just read.
func endOfInput(iter *jsoniter.Iterator) error {
	if iter.Error != nil && iter.Error != io.EOF {
		return iter.Error
	}

	iter.WhatIsNext()
	if iter.Error != io.EOF {
		return errors.New("unexpected data after json value")
	}

	return nil
}

func valueTypeName(t jsoniter.ValueType) string {
	switch t {
	case jsoniter.StringValue:
		return "string"
	case jsoniter.NumberValue:
		return "number"
	case jsoniter.NilValue:
		return "null"
	case jsoniter.BoolValue:
		return "bool"
	case jsoniter.ArrayValue:
		return "list"
	case jsoniter.ObjectValue:
		return "object"
	default:
		return "invalid value"
	}
}

func isNull(data []byte) bool {
	return jsoniter.ParseBytes(json, data).WhatIsNext() == jsoniter.NilValue
}
