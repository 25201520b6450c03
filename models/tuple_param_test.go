package models

import (
	"errors"
	"testing"

	"ethabi/paramtype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTupleParamDeserialization(t *testing.T) {
	s := `[{
			"name": "foo",
			"type": "address"
		},{
			"name": "bar",
			"type": "address"
		},{
			"name": "baz",
			"type": "address"
		},{
			"type": "bool"
		}
	]`

	var get []TupleParam
	require.NoError(t, json.Unmarshal([]byte(s), &get))
	require.Len(t, get, 4)

	names := []string{"foo", "bar", "baz"}
	for i, name := range names {
		require.NotNil(t, get[i].Name)
		assert.Equal(t, name, *get[i].Name)
		assert.True(t, paramtype.Address().Equal(get[i].Kind))
	}

	assert.Nil(t, get[3].Name)
	assert.Equal(t, "", get[3].GetName())
	assert.True(t, paramtype.Bool().Equal(get[3].Kind))
}

func TestTupleParamTuple(t *testing.T) {
	s := `{
		"name": "config",
		"type": "tuple",
		"indexed": true,
		"indexed": true,
		"components": [{"name": "owner", "type": "address"}, {"type": "uint8[3]"}]
	}`

	// "indexed" is no tuple param key, the duplicate is skipped like any unknown key.
	var get TupleParam
	require.NoError(t, get.UnmarshalJSON([]byte(s)))
	assert.Equal(t, "config", get.GetName())
	assert.Equal(t, "(address,uint8[3])", get.Kind.String())
}

func TestTupleParamErrors(t *testing.T) {
	var get TupleParam

	err := get.UnmarshalJSON([]byte(`{"name": "foo"}`))
	assert.True(t, errors.Is(err, ErrMissingField))

	err = get.UnmarshalJSON([]byte(`{"name": "foo", "type": "tuple"}`))
	assert.True(t, errors.Is(err, ErrMissingField))

	err = get.UnmarshalJSON([]byte(`{"name": "foo", "type": "bool", "name": "bar"}`))
	assert.True(t, errors.Is(err, ErrDuplicateField))
}

func TestTupleParamsDeserialization(t *testing.T) {
	s := `[{
			"name": "foo",
			"type": "address"
		},{
			"name": "foo",
			"type": "address"
		},{
			"name": "foo",
			"type": "address"
		},{
			"name": "foo",
			"type": "bool"
		}
	]`

	var get TupleParams
	require.NoError(t, json.Unmarshal([]byte(s), &get))

	want := []paramtype.Type{paramtype.Address(), paramtype.Address(), paramtype.Address(), paramtype.Bool()}
	require.Len(t, get, len(want))
	for i := range want {
		assert.True(t, want[i].Equal(get[i]))
	}
}

func TestTupleParamsNested(t *testing.T) {
	s := `[
		{"type": "uint256"},
		{"type": "tuple", "components": [
			{"type": "bytes"},
			{"type": "tuple[]", "components": [{"type": "int8"}]}
		]}
	]`

	var get TupleParams
	require.NoError(t, get.UnmarshalJSON([]byte(s)))

	want := paramtype.Tuple(get...)
	assert.Equal(t, "(uint256,(bytes,(int8)[]))", want.String())
}

func TestTupleParamsEmpty(t *testing.T) {
	var get TupleParams
	require.NoError(t, get.UnmarshalJSON([]byte(`[]`)))
	assert.NotNil(t, get)
	assert.Len(t, get, 0)
}

func TestTupleParamsMissingType(t *testing.T) {
	var get TupleParams

	err := get.UnmarshalJSON([]byte(`[{"type": "address"}, {"name": "foo"}]`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingTypeField))
	assert.False(t, errors.Is(err, ErrMissingField))

	err = get.UnmarshalJSON([]byte(`[{"type": "tuple"}]`))
	assert.True(t, errors.Is(err, ErrMissingField))

	err = get.UnmarshalJSON([]byte(`["address"]`))
	assert.Error(t, err)

	err = get.UnmarshalJSON([]byte(`{"type": "address"}`))
	assert.Error(t, err)

	err = get.UnmarshalJSON([]byte(`[{"type": "address"}] garbage`))
	assert.Error(t, err)

	err = get.UnmarshalJSON([]byte(`[{"type": "tuple", "components": [{"type": "bool"}] ]}]`))
	assert.Error(t, err)
}
