package common

// WipeByteArray overwrites a buffer with zeros. Used to clear plaintext
// passwords from memory once they have been handed off.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
