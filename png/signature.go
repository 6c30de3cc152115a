package png

import "bytes"

// Signature is the 8-byte magic prefix of every PNG datastream.
var Signature = [8]byte{137, 80, 78, 71, 13, 10, 26, 10}

// DropSignature returns b without its leading PNG signature.
// ok is false if b is too short or does not start with the signature.
func DropSignature(b []byte) (rest []byte, ok bool) {
	if len(b) < len(Signature) || !bytes.Equal(b[:len(Signature)], Signature[:]) {
		return nil, false
	}
	return b[len(Signature):], true
}
