//go:build bsdelta_off32

package bsdelta

// Off is the unsigned offset type used throughout the engine to index old/new
// buffers and match-index tables. This build uses 32-bit offsets (the
// bsdelta_off32 build tag); the default build uses 64-bit offsets instead.
type Off = uint32

// soff is the signed counterpart of Off used internally by SuffixIndex.
type soff = int32

// MaxHashIndexInput is the hash-mode size cap in this build: BuildHashIndex
// rejects any oldlen >= MaxHashIndexInput. The 32-bit build has no extra cap
// beyond what Off already implies, so this is simply the maximum
// representable offset.
const MaxHashIndexInput Off = 0xffffffff

// toSigned64 reinterprets v's bits as a signed 32-bit offset (matching the
// C source's bsint, here int32, in this build) and sign-extends it to 64
// bits for the instruction stream's seek values, which are always encoded
// at 64-bit width regardless of Off's build width.
func toSigned64(v Off) int64 {
	return int64(int32(v))
}
