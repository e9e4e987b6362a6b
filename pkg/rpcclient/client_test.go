package rpcclient

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/MCarlomagno/miden-rpc-client/pkg/noderpc"
)

// testNode is an in-process stand-in for a node. Tests set only the handlers
// they need; everything else answers Unimplemented.
type testNode struct {
	noderpc.UnimplementedApiServer

	statusFn          func(context.Context, *noderpc.StatusRequest) (*noderpc.RpcStatus, error)
	accountDetailsFn  func(context.Context, *noderpc.AccountId) (*noderpc.AccountDetails, error)
	syncStateFn       func(context.Context, *noderpc.SyncStateRequest) (*noderpc.SyncStateResponse, error)
	checkNullifiersFn func(context.Context, *noderpc.NullifierList) (*noderpc.CheckNullifiersResponse, error)
	byPrefixFn        func(context.Context, *noderpc.CheckNullifiersByPrefixRequest) (*noderpc.CheckNullifiersByPrefixResponse, error)
	notesByIdFn       func(context.Context, *noderpc.NoteIdList) (*noderpc.CommittedNoteList, error)
	submitTxFn        func(context.Context, *noderpc.ProvenTransaction) (*noderpc.SubmitProvenTransactionResponse, error)
}

func (n *testNode) Status(ctx context.Context, req *noderpc.StatusRequest) (*noderpc.RpcStatus, error) {
	if n.statusFn != nil {
		return n.statusFn(ctx, req)
	}
	return n.UnimplementedApiServer.Status(ctx, req)
}

func (n *testNode) GetAccountDetails(ctx context.Context, req *noderpc.AccountId) (*noderpc.AccountDetails, error) {
	if n.accountDetailsFn != nil {
		return n.accountDetailsFn(ctx, req)
	}
	return n.UnimplementedApiServer.GetAccountDetails(ctx, req)
}

func (n *testNode) SyncState(ctx context.Context, req *noderpc.SyncStateRequest) (*noderpc.SyncStateResponse, error) {
	if n.syncStateFn != nil {
		return n.syncStateFn(ctx, req)
	}
	return n.UnimplementedApiServer.SyncState(ctx, req)
}

func (n *testNode) CheckNullifiers(ctx context.Context, req *noderpc.NullifierList) (*noderpc.CheckNullifiersResponse, error) {
	if n.checkNullifiersFn != nil {
		return n.checkNullifiersFn(ctx, req)
	}
	return n.UnimplementedApiServer.CheckNullifiers(ctx, req)
}

func (n *testNode) CheckNullifiersByPrefix(ctx context.Context, req *noderpc.CheckNullifiersByPrefixRequest) (*noderpc.CheckNullifiersByPrefixResponse, error) {
	if n.byPrefixFn != nil {
		return n.byPrefixFn(ctx, req)
	}
	return n.UnimplementedApiServer.CheckNullifiersByPrefix(ctx, req)
}

func (n *testNode) GetNotesById(ctx context.Context, req *noderpc.NoteIdList) (*noderpc.CommittedNoteList, error) {
	if n.notesByIdFn != nil {
		return n.notesByIdFn(ctx, req)
	}
	return n.UnimplementedApiServer.GetNotesById(ctx, req)
}

func (n *testNode) SubmitProvenTransaction(ctx context.Context, req *noderpc.ProvenTransaction) (*noderpc.SubmitProvenTransactionResponse, error) {
	if n.submitTxFn != nil {
		return n.submitTxFn(ctx, req)
	}
	return n.UnimplementedApiServer.SubmitProvenTransaction(ctx, req)
}

// startNode runs a gRPC server around node on a loopback listener and returns
// a Client connected to it.
func startNode(t *testing.T, node *testNode) *Client {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := grpc.NewServer()
	noderpc.RegisterApiServer(srv, node)
	go srv.Serve(lis) //nolint:errcheck // stopped via Cleanup
	t.Cleanup(srv.Stop)

	c, err := New(context.Background(), lis.Addr().String(), Options{Insecure: true})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestParseEndpoint(t *testing.T) {
	for _, tc := range []struct {
		endpoint  string
		target    string
		plaintext bool
	}{
		{"localhost:50051", "localhost:50051", true},
		{"127.0.0.1:50051", "127.0.0.1:50051", true},
		{"grpc://localhost:50051", "localhost:50051", true},
		{"http://localhost:50051", "localhost:50051", true},
		{"grpcs://rpc.testnet.miden.io:443", "rpc.testnet.miden.io:443", false},
		{"https://rpc.testnet.miden.io:443", "rpc.testnet.miden.io:443", false},
	} {
		target, plaintext, err := parseEndpoint(tc.endpoint, true)
		require.NoError(t, err, tc.endpoint)
		require.Equal(t, tc.target, target, tc.endpoint)
		require.Equal(t, tc.plaintext, plaintext, tc.endpoint)
	}

	// URL schemes decide TLS regardless of the Insecure option.
	_, plaintext, err := parseEndpoint("https://example.com:443", false)
	require.NoError(t, err)
	require.False(t, plaintext)
}

func TestNewInvalidEndpoint(t *testing.T) {
	for _, endpoint := range []string{
		"",
		"no port at all",
		"ftp://example.com:21",
	} {
		// Validation fails before any network I/O, so no server is needed
		// and no dial timeout is spent.
		_, err := New(context.Background(), endpoint, Options{})
		require.ErrorIs(t, err, ErrInvalidEndpoint, endpoint)
	}
}

func TestNewHandshakeFailure(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close()) // nothing listens here anymore

	_, err = New(context.Background(), addr, Options{
		Insecure:    true,
		DialTimeout: 100 * time.Millisecond,
	})
	require.ErrorIs(t, err, ErrConnect)
}

func TestEndpoint(t *testing.T) {
	c := startNode(t, &testNode{})
	_, _, err := net.SplitHostPort(c.Endpoint())
	require.NoError(t, err)
}

func TestCloseIsFinal(t *testing.T) {
	node := &testNode{
		statusFn: func(context.Context, *noderpc.StatusRequest) (*noderpc.RpcStatus, error) {
			return &noderpc.RpcStatus{Version: "0.8.0"}, nil
		},
	}
	c := startNode(t, node)

	_, err := c.GetStatus(context.Background())
	require.NoError(t, err)

	require.NoError(t, c.Close())
	_, err = c.GetStatus(context.Background())
	require.ErrorIs(t, err, ErrCall)
}
