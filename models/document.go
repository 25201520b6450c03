package models

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
)

var errInvalidJSON = errors.New("abi document is not valid json")

// document covers the JSON envelopes ABIs are shipped in: compiler
// artifacts carry an "abi" list, explorer APIs an encoded "result" string.
type document struct {
	ABI    jsoniter.RawMessage `json:"abi"`
	Result *string             `json:"result"`
}

// ParseABIDocument decodes a bare ABI list, a compiler artifact or an
// explorer API response.
func ParseABIDocument(raw []byte) (*ABI, error) {
	if !json.Valid(raw) {
		return nil, errInvalidJSON
	}

	switch jsoniter.ParseBytes(json, raw).WhatIsNext() {
	case jsoniter.ArrayValue:
		return UnmarshalABI(raw)
	case jsoniter.ObjectValue:
	default:
		return nil, errors.New("abi document must be a list or an object")
	}

	doc := document{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	switch {
	case len(doc.ABI) > 0 && !isNull(doc.ABI):
		return UnmarshalABI(doc.ABI)
	case doc.Result != nil:
		return UnmarshalABI([]byte(*doc.Result))
	default:
		return nil, errors.New("abi document has neither an abi nor a result field")
	}
}
