package hashutil

import (
	"golang.org/x/crypto/sha3"
)

// Keccak256 returns the legacy keccak256 hash of the concatenated input
// data, the variant used by Ethereum for signature hashes.
func Keccak256(data ...[]byte) []byte {
	keccakH := sha3.NewLegacyKeccak256()
	for _, b := range data {
		keccakH.Write(b)
	}
	return keccakH.Sum(nil)
}
