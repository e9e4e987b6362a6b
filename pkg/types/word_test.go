package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordBytesRoundTrip(t *testing.T) {
	w := Word{0x0102030405060708, 0x1112131415161718, 0x2122232425262728, 0x3132333435363738}
	b := w.Bytes()
	require.Len(t, b, WordSize)

	got, err := WordFromBytes(b)
	require.NoError(t, err)
	require.Equal(t, w, got)
	require.True(t, w.Equals(got))
}

func TestWordString(t *testing.T) {
	w := Word{1, 2, 3, 4}
	require.Equal(t,
		"0x0100000000000000020000000000000003000000000000000400000000000000",
		w.String())

	got, err := WordFromString(w.String())
	require.NoError(t, err)
	require.Equal(t, w, got)

	// The 0x prefix is optional on input.
	got, err = WordFromString(w.String()[2:])
	require.NoError(t, err)
	require.Equal(t, w, got)
}

func TestWordFromBytesErrors(t *testing.T) {
	_, err := WordFromBytes(make([]byte, WordSize-1))
	assert.Error(t, err)
	_, err = WordFromBytes(make([]byte, WordSize+1))
	assert.Error(t, err)
}

func TestWordFromStringErrors(t *testing.T) {
	_, err := WordFromString("0x01")
	assert.Error(t, err)
	_, err = WordFromString("zz00000000000000000000000000000000000000000000000000000000000000")
	assert.Error(t, err)
}

func TestWordJSON(t *testing.T) {
	w := Word{0xdeadbeef, 0, 0xffffffffffffffff, 1}
	data, err := json.Marshal(w)
	require.NoError(t, err)

	var got Word
	require.NoError(t, json.Unmarshal(data, &got))
	require.Equal(t, w, got)

	require.Error(t, json.Unmarshal([]byte(`"0xqq"`), &got))
	require.Error(t, json.Unmarshal([]byte(`123`), &got))
}

func TestNoteID(t *testing.T) {
	id := NoteID{5, 6, 7, 8}
	require.Equal(t, Word{5, 6, 7, 8}, id.Word())
	require.Equal(t, Word{5, 6, 7, 8}.String(), id.String())

	got, err := NoteIDFromString(id.String())
	require.NoError(t, err)
	require.True(t, id.Equals(got))
}
