package rpcclient

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MCarlomagno/miden-rpc-client/pkg/types"
)

func TestWordDigestRoundTrip(t *testing.T) {
	for _, w := range []types.Word{
		{},
		{1, 2, 3, 4},
		{0xffffffffffffffff, 0, 0xdeadbeef, 0x0102030405060708},
	} {
		d := wordToDigest(w)
		require.Equal(t, w, digestToWord(d))
		require.Equal(t, w.Bytes(), digestToWord(d).Bytes())
	}
}

func TestDigestToWordNil(t *testing.T) {
	require.Equal(t, types.Word{}, digestToWord(nil))
}

func TestAccountIDToProtoCopies(t *testing.T) {
	id, err := types.AccountIDFromBytes([]byte{1, 2, 3})
	require.NoError(t, err)

	msg := accountIDToProto(id)
	msg.Id[0] = 0xff
	require.Equal(t, []byte{1, 2, 3}, id.Bytes())
}
