package models

import (
	"encoding/hex"
	"fmt"
	"strings"

	"ethabi/paramtype"
	"ethabi/util/hashutil"

	jsoniter "github.com/json-iterator/go"
)

// ABI entry types.
const (
	EntryEvent    = "event"
	EntryFunction = "function"
)

// ABI is a decoded contract interface. Constructors, fallback, receive
// and error entries are not kept.
type ABI struct {
	Events    []Event
	Functions []Function
}

// Event is an "event" entry of a contract interface.
type Event struct {
	Name      string
	Inputs    []EventParam
	Anonymous bool
}

// Function is a "function" entry of a contract interface.
type Function struct {
	Name            string
	Inputs          []TupleParam
	Outputs         []TupleParam
	StateMutability string
}

type abiEntry struct {
	Type            string              `json:"type"`
	Name            string              `json:"name"`
	Anonymous       bool                `json:"anonymous"`
	StateMutability string              `json:"stateMutability"`
	Inputs          jsoniter.RawMessage `json:"inputs"`
	Outputs         jsoniter.RawMessage `json:"outputs"`
}

// UnmarshalABI decodes a JSON contract interface.
func UnmarshalABI(raw []byte) (*ABI, error) {
	if !json.Valid(raw) {
		return nil, errInvalidJSON
	}

	abi := ABI{}
	if err := abi.UnmarshalJSON(raw); err != nil {
		return nil, err
	}

	return &abi, nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *ABI) UnmarshalJSON(data []byte) error {
	parsed := ABI{}

	err := decodeList(data, func(raw []byte) error {
		entry := abiEntry{}
		if err := json.Unmarshal(raw, &entry); err != nil {
			return err
		}

		switch entry.Type {
		case EntryEvent:
			event, err := entry.event()
			if err != nil {
				return fmt.Errorf("event %s: %w", entry.Name, err)
			}
			parsed.Events = append(parsed.Events, event)
		case EntryFunction, "":
			function, err := entry.function()
			if err != nil {
				return fmt.Errorf("function %s: %w", entry.Name, err)
			}
			parsed.Functions = append(parsed.Functions, function)
		}

		return nil
	})
	if err != nil {
		return err
	}

	*a = parsed
	return nil
}

func (e *abiEntry) event() (Event, error) {
	event := Event{
		Name:      e.Name,
		Anonymous: e.Anonymous,
	}

	err := decodeList(e.Inputs, func(raw []byte) error {
		param := EventParam{}
		if err := param.UnmarshalJSON(raw); err != nil {
			return err
		}
		event.Inputs = append(event.Inputs, param)
		return nil
	})

	return event, err
}

func (e *abiEntry) function() (Function, error) {
	var err error

	function := Function{
		Name:            e.Name,
		StateMutability: e.StateMutability,
	}

	if function.Inputs, err = decodeTupleParamList(e.Inputs); err != nil {
		return function, err
	}
	if function.Outputs, err = decodeTupleParamList(e.Outputs); err != nil {
		return function, err
	}

	return function, nil
}

func decodeTupleParamList(data []byte) ([]TupleParam, error) {
	var params []TupleParam

	err := decodeList(data, func(raw []byte) error {
		param := TupleParam{}
		if err := param.UnmarshalJSON(raw); err != nil {
			return err
		}
		params = append(params, param)
		return nil
	})

	return params, err
}

// GetEvent returns the first event with the given name.
func (a *ABI) GetEvent(name string) (Event, bool) {
	for _, event := range a.Events {
		if event.Name == name {
			return event, true
		}
	}

	return Event{}, false
}

// GetFunction returns the first function with the given name.
func (a *ABI) GetFunction(name string) (Function, bool) {
	for _, function := range a.Functions {
		if function.Name == name {
			return function, true
		}
	}

	return Function{}, false
}

// Signature returns the canonical event signature, e.g. "Transfer(address,address,uint256)".
func (e Event) Signature() string {
	kinds := make([]paramtype.Type, 0, len(e.Inputs))
	for _, input := range e.Inputs {
		kinds = append(kinds, input.Kind)
	}

	return signature(e.Name, kinds)
}

// Topic returns the hex encoded keccak256 hash of the event signature,
// which is the first log topic of non-anonymous events.
func (e Event) Topic() string {
	return "0x" + hex.EncodeToString(hashutil.Keccak256([]byte(e.Signature())))
}

// Signature returns the canonical function signature, e.g. "transfer(address,uint256)".
func (f Function) Signature() string {
	kinds := make([]paramtype.Type, 0, len(f.Inputs))
	for _, input := range f.Inputs {
		kinds = append(kinds, input.Kind)
	}

	return signature(f.Name, kinds)
}

// Selector returns the hex encoded 4-byte function selector.
func (f Function) Selector() string {
	return "0x" + hex.EncodeToString(hashutil.Keccak256([]byte(f.Signature()))[:4])
}

func signature(name string, kinds []paramtype.Type) string {
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, kind.String())
	}

	return name + "(" + strings.Join(names, ",") + ")"
}
