// Package geth converts parsed parameter types into go-ethereum ABI types,
// so that go-ethereum's encoder can pack and unpack values for them.
package geth

import (
	"fmt"
	"strings"

	"ethabi/models"
	"ethabi/paramtype"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ToType converts t into a go-ethereum ABI type. Tuple fields get the names
// field0, field1, ... since the type model carries no names. Widths go-ethereum
// does not support are reported as errors.
func ToType(t paramtype.Type) (abi.Type, error) {
	typ, components := marshal(t)
	return abi.NewType(typ, "", components)
}

// ToArguments converts event parameters into go-ethereum arguments.
func ToArguments(params []models.EventParam) (abi.Arguments, error) {
	args := make(abi.Arguments, 0, len(params))

	for _, param := range params {
		typ, err := ToType(param.Kind)
		if err != nil {
			return nil, fmt.Errorf("argument %s: %w", param.Name, err)
		}

		args = append(args, abi.Argument{
			Name:    param.Name,
			Type:    typ,
			Indexed: param.Indexed,
		})
	}

	return args, nil
}

// ToTupleArguments converts function inputs or outputs into go-ethereum arguments.
func ToTupleArguments(params []models.TupleParam) (abi.Arguments, error) {
	args := make(abi.Arguments, 0, len(params))

	for i, param := range params {
		typ, err := ToType(param.Kind)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}

		args = append(args, abi.Argument{
			Name: param.GetName(),
			Type: typ,
		})
	}

	return args, nil
}

// marshal returns the go-ethereum type string of t, "tuple" with array
// suffixes for tuples, and the tuple components if any.
func marshal(t paramtype.Type) (string, []abi.ArgumentMarshaling) {
	base := t.Base()
	if !base.IsTuple() {
		return t.String(), nil
	}

	suffix := strings.TrimPrefix(t.String(), base.String())
	components := make([]abi.ArgumentMarshaling, 0, len(base.Elems))

	for i, elem := range base.Elems {
		typ, sub := marshal(elem)
		components = append(components, abi.ArgumentMarshaling{
			Name:       fmt.Sprintf("field%d", i),
			Type:       typ,
			Components: sub,
		})
	}

	return "tuple" + suffix, components
}
