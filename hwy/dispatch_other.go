//go:build !amd64 || noasm

package hwy

func init() {
	// PABSB/PSHUFB are x86-only; other targets and noasm builds do not
	// compile AbsPackedBytes or ShuffleBytes at all.
	currentLevel = DispatchScalar
}
