package core

// Random is the source of randomness for batch generation.
// *math/rand.Rand satisfies it; tests substitute a scripted source.
type Random interface {
	// Intn returns a random int in [0, n).
	Intn(n int) int
}
