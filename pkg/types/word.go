// Package types provides the value types used to address entities on a Miden
// ledger: words (digests), account identifiers, note identifiers and note tags.
package types

import (
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// WordSize is the byte length of a serialized Word.
const WordSize = 32

// Word is a 256-bit value composed of four 64-bit field elements. It is used
// for commitments, nullifiers and note identifiers. The canonical byte form is
// the little-endian concatenation of the four words.
type Word [4]uint64

// Nullifier proves that a note has been consumed. It is a plain Word.
type Nullifier = Word

// WordFromBytes decodes b into a Word. b must be exactly WordSize bytes long.
func WordFromBytes(b []byte) (w Word, err error) {
	if len(b) != WordSize {
		return w, fmt.Errorf("expected []byte of size %d got %d", WordSize, len(b))
	}
	for i := range w {
		w[i] = binary.LittleEndian.Uint64(b[i*8 : (i+1)*8])
	}
	return w, nil
}

// WordFromString decodes a hex string (with or without the 0x prefix) into a
// Word.
func WordFromString(s string) (w Word, err error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != WordSize*2 {
		return w, fmt.Errorf("expected string size of %d got %d", WordSize*2, len(s))
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return w, err
	}
	return WordFromBytes(b)
}

// Bytes returns the canonical byte representation of w.
func (w Word) Bytes() []byte {
	b := make([]byte, WordSize)
	for i := range w {
		binary.LittleEndian.PutUint64(b[i*8:], w[i])
	}
	return b
}

// Equals returns true if both Words are the same.
func (w Word) Equals(other Word) bool {
	return w == other
}

// String implements the stringer interface. The result is the lowercase hex
// form of the canonical bytes, prefixed with 0x.
func (w Word) String() string {
	return "0x" + hex.EncodeToString(w.Bytes())
}

// MarshalJSON implements the json.Marshaler interface.
func (w Word) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (w *Word) UnmarshalJSON(data []byte) (err error) {
	var js string
	if err = json.Unmarshal(data, &js); err != nil {
		return err
	}
	*w, err = WordFromString(js)
	return err
}
