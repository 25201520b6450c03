package models

import "ethabi/paramtype"

// TupleParam is a named element of a tuple, or a function input or output.
// Name is nil when the descriptor carries no name.
type TupleParam struct {
	Name *string
	Kind paramtype.Type
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *TupleParam) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	f, err := decodeParamFields(data, false)
	if err != nil {
		return err
	}

	kind, err := f.resolveKind(missingField(fieldType))
	if err != nil {
		return err
	}

	*p = TupleParam{
		Name: f.name,
		Kind: kind,
	}

	return nil
}

// GetName returns the parameter name, or "" when it has none.
func (p TupleParam) GetName() string {
	if p.Name == nil {
		return ""
	}

	return *p.Name
}
