package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// AccountID is the byte-serialized handle of a ledger account. The length is
// defined by the ledger's serialization format (15 bytes for current Miden
// accounts) and is treated as opaque here.
type AccountID []byte

// AccountIDFromBytes copies b into an AccountID.
func AccountIDFromBytes(b []byte) (AccountID, error) {
	if len(b) == 0 {
		return nil, errors.New("empty account id")
	}
	id := make(AccountID, len(b))
	copy(id, b)
	return id, nil
}

// AccountIDFromString decodes a hex string (with or without the 0x prefix)
// into an AccountID.
func AccountIDFromString(s string) (AccountID, error) {
	s = strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid account id string: %w", err)
	}
	return AccountIDFromBytes(b)
}

// Bytes returns a copy of the serialized id.
func (id AccountID) Bytes() []byte {
	b := make([]byte, len(id))
	copy(b, id)
	return b
}

// Equals returns true if both ids are the same.
func (id AccountID) Equals(other AccountID) bool {
	return bytes.Equal(id, other)
}

// String implements the stringer interface.
func (id AccountID) String() string {
	return "0x" + hex.EncodeToString(id)
}

// MarshalJSON implements the json.Marshaler interface.
func (id AccountID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (id *AccountID) UnmarshalJSON(data []byte) error {
	var js string
	if err := json.Unmarshal(data, &js); err != nil {
		return err
	}
	decoded, err := AccountIDFromString(js)
	if err != nil {
		return err
	}
	*id = decoded
	return nil
}
