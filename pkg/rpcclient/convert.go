package rpcclient

import (
	"github.com/MCarlomagno/miden-rpc-client/pkg/noderpc"
	"github.com/MCarlomagno/miden-rpc-client/pkg/types"
)

// wordToDigest converts a Word to its wire form, one fixed64 limb per field.
func wordToDigest(w types.Word) *noderpc.Digest {
	return &noderpc.Digest{
		D0: w[0],
		D1: w[1],
		D2: w[2],
		D3: w[3],
	}
}

// digestToWord reconstructs a Word from its wire form.
func digestToWord(d *noderpc.Digest) types.Word {
	return types.Word{d.GetD0(), d.GetD1(), d.GetD2(), d.GetD3()}
}

// accountIDToProto converts an AccountID to its wire form, which carries the
// raw serialized bytes.
func accountIDToProto(id types.AccountID) *noderpc.AccountId {
	return &noderpc.AccountId{Id: id.Bytes()}
}

// noteIDToProto wraps a NoteID's digest in the wire message.
func noteIDToProto(id types.NoteID) *noderpc.NoteId {
	return &noderpc.NoteId{Id: wordToDigest(id.Word())}
}
