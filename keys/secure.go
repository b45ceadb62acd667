package keys

// Zero overwrites the passed byte slice with zeroes. It is used to clear
// buffers holding private key material once they are no longer needed, on
// success and failure paths alike.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
