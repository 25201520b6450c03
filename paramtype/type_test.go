package paramtype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeString(t *testing.T) {
	testCases := []struct {
		typ  Type
		want string
	}{
		{Address(), "address"},
		{Bool(), "bool"},
		{String(), "string"},
		{Bytes(), "bytes"},
		{FixedBytes(4), "bytes4"},
		{Int(256), "int256"},
		{Uint(8), "uint8"},
		{Array(Address()), "address[]"},
		{FixedArray(Array(Bool()), 3), "bool[][3]"},
		{Array(FixedArray(Bool(), 3)), "bool[3][]"},
		{Tuple(), "()"},
		{Tuple(Address(), Uint(48)), "(address,uint48)"},
		{Array(Tuple(Tuple(Bytes()), FixedBytes(32))), "((bytes),bytes32)[]"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.typ.String())
	}
}

func TestTypeStringRoundTrip(t *testing.T) {
	types := []Type{
		Address(),
		Int(24),
		FixedBytes(1),
		FixedArray(FixedArray(FixedBytes(32), 2), 7),
		Array(Array(String())),
		Tuple(),
		Tuple(Bool(), Tuple(Array(Uint(256)), Tuple()), Bytes()),
		FixedArray(Tuple(Address(), Array(Tuple(Int(8)))), 4),
	}

	for _, typ := range types {
		get, err := Read(typ.String())
		require.NoError(t, err, typ.String())
		assert.Truef(t, typ.Equal(get), "get=%s, want=%s", get, typ)
	}
}

func TestTypeEqual(t *testing.T) {
	assert.True(t, Uint(256).Equal(Uint(256)))
	assert.False(t, Uint(256).Equal(Int(256)))
	assert.False(t, Uint(8).Equal(Uint(16)))
	assert.False(t, FixedBytes(8).Equal(Uint(8)))
	assert.False(t, FixedArray(Bool(), 2).Equal(FixedArray(Bool(), 3)))
	assert.False(t, Array(Bool()).Equal(FixedArray(Bool(), 3)))
	assert.False(t, Tuple(Bool()).Equal(Tuple(Bool(), Bool())))
	assert.False(t, Tuple(Bool(), Address()).Equal(Tuple(Address(), Bool())))
	assert.True(t, Tuple().Equal(Type{Kind: TupleTy}))
}

func TestTypeBase(t *testing.T) {
	typ := Array(FixedArray(Tuple(), 2))
	assert.True(t, typ.Base().IsTuple())
	assert.True(t, Bool().Base().Equal(Bool()))

	replaced := typ.WithBase(Tuple(Address()))
	assert.Equal(t, "(address)[2][]", replaced.String())
	// The original value is left untouched.
	assert.Equal(t, "()[2][]", typ.String())
}

func TestTypeWithoutElem(t *testing.T) {
	broken := Type{Kind: ArrayTy}

	assert.NotPanics(t, func() {
		assert.False(t, broken.Equal(Array(Bool())))
		assert.False(t, Array(Bool()).Equal(broken))
		assert.True(t, broken.Equal(Type{Kind: ArrayTy}))
		assert.False(t, Type{Kind: FixedArrayTy, Size: 2}.Equal(FixedArray(Bool(), 2)))
	})

	assert.Equal(t, "<nil>[]", broken.String())
	assert.Equal(t, "<nil>[3]", Type{Kind: FixedArrayTy, Size: 3}.String())
	assert.Equal(t, ArrayTy, broken.Base().Kind)
	assert.Equal(t, "(bool)[]", Array(broken).WithBase(Tuple(Bool())).String())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "tuple", TupleTy.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}
