package models

import "ethabi/paramtype"

// TupleParams is the list of element types described by a "components" list.
// Component names are dropped, nested tuple components are resolved.
type TupleParams []paramtype.Type

// UnmarshalJSON implements json.Unmarshaler.
func (p *TupleParams) UnmarshalJSON(data []byte) error {
	params := TupleParams{}

	err := decodeList(data, func(raw []byte) error {
		f, err := decodeParamFields(raw, false)
		if err != nil {
			return err
		}

		kind, err := f.resolveKind(missingTypeField())
		if err != nil {
			return err
		}

		params = append(params, kind)
		return nil
	})
	if err != nil {
		return err
	}

	*p = params
	return nil
}
