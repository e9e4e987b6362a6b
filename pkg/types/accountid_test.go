package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAccountIDRoundTrip(t *testing.T) {
	raw := []byte{0xac, 0xc0, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d}
	id, err := AccountIDFromBytes(raw)
	require.NoError(t, err)
	require.Equal(t, raw, id.Bytes())
	require.Equal(t, "0xacc00102030405060708090a0b0c0d", id.String())

	got, err := AccountIDFromString(id.String())
	require.NoError(t, err)
	require.True(t, id.Equals(got))
}

func TestAccountIDErrors(t *testing.T) {
	_, err := AccountIDFromBytes(nil)
	require.Error(t, err)
	_, err = AccountIDFromString("0x")
	require.Error(t, err)
	_, err = AccountIDFromString("not hex")
	require.Error(t, err)
}

func TestAccountIDBytesIsACopy(t *testing.T) {
	id, err := AccountIDFromBytes([]byte{1, 2, 3})
	require.NoError(t, err)

	b := id.Bytes()
	b[0] = 0xff
	require.Equal(t, []byte{1, 2, 3}, id.Bytes())
}

func TestAccountIDJSON(t *testing.T) {
	id, err := AccountIDFromString("0xacc001")
	require.NoError(t, err)

	data, err := json.Marshal(id)
	require.NoError(t, err)
	require.Equal(t, `"0xacc001"`, string(data))

	var got AccountID
	require.NoError(t, json.Unmarshal(data, &got))
	require.True(t, id.Equals(got))
}
