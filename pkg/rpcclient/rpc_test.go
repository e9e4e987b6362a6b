package rpcclient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MCarlomagno/miden-rpc-client/pkg/noderpc"
	"github.com/MCarlomagno/miden-rpc-client/pkg/types"
)

func TestGetStatus(t *testing.T) {
	node := &testNode{
		statusFn: func(context.Context, *noderpc.StatusRequest) (*noderpc.RpcStatus, error) {
			return &noderpc.RpcStatus{
				Version: "0.8.0",
				Store:   &noderpc.StoreStatus{Version: "0.8.0", Status: "ok", ChainTip: 1234},
			}, nil
		},
	}
	c := startNode(t, node)

	resp, err := c.GetStatus(context.Background())
	require.NoError(t, err)
	require.Equal(t, "0.8.0", resp.GetVersion())
	require.Equal(t, uint32(1234), resp.GetStore().GetChainTip())
}

func TestCallErrorCarriesOperationAndCause(t *testing.T) {
	node := &testNode{
		statusFn: func(context.Context, *noderpc.StatusRequest) (*noderpc.RpcStatus, error) {
			return nil, status.Error(codes.Unavailable, "node is catching up")
		},
	}
	c := startNode(t, node)

	_, err := c.GetStatus(context.Background())
	require.ErrorIs(t, err, ErrCall)
	require.Contains(t, err.Error(), "Status")
	require.Equal(t, codes.Unavailable, status.Code(err))
	require.Contains(t, err.Error(), "node is catching up")
}

func TestGetAccountCommitment(t *testing.T) {
	id, err := types.AccountIDFromString("0xacc00102030405060708090a0b0c0d")
	require.NoError(t, err)

	t.Run("missing summary", func(t *testing.T) {
		node := &testNode{
			accountDetailsFn: func(context.Context, *noderpc.AccountId) (*noderpc.AccountDetails, error) {
				return &noderpc.AccountDetails{}, nil
			},
		}
		c := startNode(t, node)

		_, err := c.GetAccountCommitment(context.Background(), id)
		require.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("missing commitment", func(t *testing.T) {
		node := &testNode{
			accountDetailsFn: func(context.Context, *noderpc.AccountId) (*noderpc.AccountDetails, error) {
				return &noderpc.AccountDetails{Summary: &noderpc.AccountSummary{BlockNum: 7}}, nil
			},
		}
		c := startNode(t, node)

		_, err := c.GetAccountCommitment(context.Background(), id)
		require.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("present", func(t *testing.T) {
		node := &testNode{
			accountDetailsFn: func(_ context.Context, req *noderpc.AccountId) (*noderpc.AccountDetails, error) {
				require.Equal(t, id.Bytes(), req.GetId())
				return &noderpc.AccountDetails{
					Summary: &noderpc.AccountSummary{
						AccountCommitment: &noderpc.Digest{D0: 1, D1: 2, D2: 3, D3: 4},
					},
				}, nil
			},
		}
		c := startNode(t, node)

		commitment, err := c.GetAccountCommitment(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t,
			"0x0100000000000000020000000000000003000000000000000400000000000000",
			commitment)
	})
}

func TestSyncStateEmptyListsStillWellFormed(t *testing.T) {
	var seen *noderpc.SyncStateRequest
	node := &testNode{
		syncStateFn: func(_ context.Context, req *noderpc.SyncStateRequest) (*noderpc.SyncStateResponse, error) {
			seen = req
			return &noderpc.SyncStateResponse{ChainTip: 42}, nil
		},
	}
	c := startNode(t, node)

	resp, err := c.SyncState(context.Background(), 10, nil, nil)
	require.NoError(t, err)
	require.Equal(t, uint32(42), resp.GetChainTip())
	require.NotNil(t, seen)
	require.Equal(t, uint32(10), seen.GetBlockNum())
	require.Empty(t, seen.GetAccountIds())
	require.Empty(t, seen.GetNoteTags())
}

func TestSyncStateConvertsIdsAndTags(t *testing.T) {
	id1, err := types.AccountIDFromString("0xacc001")
	require.NoError(t, err)
	id2, err := types.AccountIDFromString("0xacc002")
	require.NoError(t, err)

	var seen *noderpc.SyncStateRequest
	node := &testNode{
		syncStateFn: func(_ context.Context, req *noderpc.SyncStateRequest) (*noderpc.SyncStateResponse, error) {
			seen = req
			return &noderpc.SyncStateResponse{}, nil
		},
	}
	c := startNode(t, node)

	_, err = c.SyncState(context.Background(), 0,
		[]types.AccountID{id1, id2},
		[]types.NoteTag{0xc0de, 0xbeef})
	require.NoError(t, err)

	require.Len(t, seen.GetAccountIds(), 2)
	require.Equal(t, id1.Bytes(), seen.GetAccountIds()[0].GetId())
	require.Equal(t, id2.Bytes(), seen.GetAccountIds()[1].GetId())
	require.Equal(t, []uint32{0xc0de, 0xbeef}, seen.GetNoteTags())
}

func TestCheckNullifiersConvertsWords(t *testing.T) {
	var seen *noderpc.NullifierList
	node := &testNode{
		checkNullifiersFn: func(_ context.Context, req *noderpc.NullifierList) (*noderpc.CheckNullifiersResponse, error) {
			seen = req
			return &noderpc.CheckNullifiersResponse{
				Proofs: []*noderpc.NullifierProof{{BlockNum: 3}},
			}, nil
		},
	}
	c := startNode(t, node)

	resp, err := c.CheckNullifiers(context.Background(), []types.Nullifier{{1, 2, 3, 4}})
	require.NoError(t, err)
	require.Len(t, resp.GetProofs(), 1)

	require.Len(t, seen.GetNullifiers(), 1)
	d := seen.GetNullifiers()[0]
	require.Equal(t, types.Word{1, 2, 3, 4}, types.Word{d.GetD0(), d.GetD1(), d.GetD2(), d.GetD3()})
}

func TestCheckNullifiersByPrefix(t *testing.T) {
	node := &testNode{
		byPrefixFn: func(_ context.Context, req *noderpc.CheckNullifiersByPrefixRequest) (*noderpc.CheckNullifiersByPrefixResponse, error) {
			return &noderpc.CheckNullifiersByPrefixResponse{
				Nullifiers: []*noderpc.NullifierUpdate{{BlockNum: req.GetBlockNum()}},
			}, nil
		},
	}
	c := startNode(t, node)

	resp, err := c.CheckNullifiersByPrefix(context.Background(), 16, []uint32{0xabcd}, 5)
	require.NoError(t, err)
	require.Len(t, resp.GetNullifiers(), 1)
	require.Equal(t, uint32(5), resp.GetNullifiers()[0].GetBlockNum())

	// Anything but 16 bits is rejected locally.
	for _, width := range []uint32{0, 8, 24, 32} {
		_, err := c.CheckNullifiersByPrefix(context.Background(), width, []uint32{1}, 0)
		require.ErrorIs(t, err, ErrInvalidPrefixLength)
	}
}

func TestGetNotesByIDWrapsDigests(t *testing.T) {
	var seen *noderpc.NoteIdList
	node := &testNode{
		notesByIdFn: func(_ context.Context, req *noderpc.NoteIdList) (*noderpc.CommittedNoteList, error) {
			seen = req
			return &noderpc.CommittedNoteList{}, nil
		},
	}
	c := startNode(t, node)

	_, err := c.GetNotesByID(context.Background(), []types.NoteID{{9, 8, 7, 6}})
	require.NoError(t, err)

	require.Len(t, seen.GetIds(), 1)
	d := seen.GetIds()[0].GetId()
	require.NotNil(t, d)
	require.Equal(t, uint64(9), d.GetD0())
	require.Equal(t, uint64(6), d.GetD3())
}

func TestSubmitProvenTransactionPassesBytesThrough(t *testing.T) {
	proof := []byte{0xde, 0xad, 0xbe, 0xef}
	node := &testNode{
		submitTxFn: func(_ context.Context, req *noderpc.ProvenTransaction) (*noderpc.SubmitProvenTransactionResponse, error) {
			require.Equal(t, proof, req.GetTransaction())
			return &noderpc.SubmitProvenTransactionResponse{BlockHeight: 99}, nil
		},
	}
	c := startNode(t, node)

	resp, err := c.SubmitProvenTransaction(context.Background(), proof)
	require.NoError(t, err)
	require.Equal(t, uint32(99), resp.GetBlockHeight())
}
