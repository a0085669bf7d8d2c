package wlfile

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/Neumenon/wldat/wldat"
)

// Fingerprint computes sha256 of the canonical encoding of doc, whose
// buffer is laid out in order. Equal arrays give equal fingerprints
// whatever their layout; the comment is not part of the hash.
func Fingerprint[T wldat.Scalar](doc *wldat.Document[T], order wldat.Order) ([32]byte, error) {
	if doc == nil {
		return [32]byte{}, errors.New("nil document")
	}
	opts := wldat.DefaultEmitOptions()
	opts.Order = order
	opts.MaxRank = max(len(doc.Shape), wldat.DefaultMaxRank)

	body, err := wldat.EmitBody(doc.Data, doc.Shape, opts)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256([]byte(body)), nil
}

// HashToHex converts a 32-byte hash to lowercase hex string.
func HashToHex(h [32]byte) string {
	return hex.EncodeToString(h[:])
}

// HexToHash parses a 64-character hex string to a 32-byte hash.
func HexToHash(s string) ([32]byte, bool) {
	var h [32]byte
	if len(s) != 2*len(h) {
		return h, false
	}
	if _, err := hex.Decode(h[:], []byte(s)); err != nil {
		return h, false
	}
	return h, true
}
