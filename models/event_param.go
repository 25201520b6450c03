package models

import "ethabi/paramtype"

// EventParam is a parameter of a logged event.
type EventParam struct {
	Name string
	Kind paramtype.Type

	// Indexed tells if the parameter is stored in the log topics
	// rather than in the log data.
	Indexed bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *EventParam) UnmarshalJSON(data []byte) error {
	if isNull(data) {
		return nil
	}

	f, err := decodeParamFields(data, true)
	if err != nil {
		return err
	}

	if f.name == nil {
		return missingField(fieldName)
	}

	kind, err := f.resolveKind(missingField(fieldType))
	if err != nil {
		return err
	}

	*p = EventParam{
		Name:    *f.name,
		Kind:    kind,
		Indexed: f.indexed != nil && *f.indexed,
	}

	return nil
}
