package rpcclient

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/MCarlomagno/miden-rpc-client/pkg/noderpc"
	"github.com/MCarlomagno/miden-rpc-client/pkg/types"
)

// nullifierPrefixLen is the only prefix width the node's store supports.
const nullifierPrefixLen = 16

// AccountProofRequest selects one account for GetAccountProofs, optionally
// naming the storage map keys whose openings should be included.
type AccountProofRequest struct {
	AccountID      types.AccountID
	StorageMapKeys []types.Word
}

// GetStatus returns the node's status, including the versions and health of
// its store and block producer.
func (c *Client) GetStatus(ctx context.Context) (*noderpc.RpcStatus, error) {
	resp, err := c.api.Status(ctx, &noderpc.StatusRequest{})
	if err != nil {
		return nil, wrapCall("Status", err)
	}
	return resp, nil
}

// GetBlockHeaderByNumber returns the header of the given block, or of the
// latest block when blockNum is nil. When includeMMRProof is set the response
// also carries the header's chain inclusion proof.
func (c *Client) GetBlockHeaderByNumber(ctx context.Context, blockNum *uint32, includeMMRProof bool) (*noderpc.BlockHeaderByNumberResponse, error) {
	req := &noderpc.BlockHeaderByNumberRequest{
		BlockNum:        blockNum,
		IncludeMmrProof: &includeMMRProof,
	}
	resp, err := c.api.GetBlockHeaderByNumber(ctx, req)
	if err != nil {
		return nil, wrapCall("GetBlockHeaderByNumber", err)
	}
	return resp, nil
}

// SubmitProvenTransaction submits the opaque proof bytes of a transaction for
// inclusion.
func (c *Client) SubmitProvenTransaction(ctx context.Context, provenTx []byte) (*noderpc.SubmitProvenTransactionResponse, error) {
	req := &noderpc.ProvenTransaction{Transaction: provenTx}
	resp, err := c.api.SubmitProvenTransaction(ctx, req)
	if err != nil {
		return nil, wrapCall("SubmitProvenTransaction", err)
	}
	return resp, nil
}

// SubmitProvenBatch submits an encoded, externally proven transaction batch
// for inclusion.
func (c *Client) SubmitProvenBatch(ctx context.Context, encodedBatch []byte) (*noderpc.SubmitProvenBatchResponse, error) {
	req := &noderpc.ProvenTransactionBatch{Encoded: encodedBatch}
	resp, err := c.api.SubmitProvenBatch(ctx, req)
	if err != nil {
		return nil, wrapCall("SubmitProvenBatch", err)
	}
	return resp, nil
}

// SyncState returns state updates relevant to the given accounts and note
// tags committed after blockNum. Empty lists are valid and produce a
// well-formed request selecting nothing.
func (c *Client) SyncState(ctx context.Context, blockNum uint32, accountIDs []types.AccountID, noteTags []types.NoteTag) (*noderpc.SyncStateResponse, error) {
	req := &noderpc.SyncStateRequest{
		BlockNum:   blockNum,
		AccountIds: make([]*noderpc.AccountId, 0, len(accountIDs)),
		NoteTags:   make([]uint32, 0, len(noteTags)),
	}
	for _, id := range accountIDs {
		req.AccountIds = append(req.AccountIds, accountIDToProto(id))
	}
	for _, tag := range noteTags {
		req.NoteTags = append(req.NoteTags, uint32(tag))
	}
	resp, err := c.api.SyncState(ctx, req)
	if err != nil {
		return nil, wrapCall("SyncState", err)
	}
	return resp, nil
}

// CheckNullifiers returns a nullifier tree opening for each of the given
// nullifiers, in request order.
func (c *Client) CheckNullifiers(ctx context.Context, nullifiers []types.Nullifier) (*noderpc.CheckNullifiersResponse, error) {
	req := &noderpc.NullifierList{
		Nullifiers: make([]*noderpc.Digest, 0, len(nullifiers)),
	}
	for _, n := range nullifiers {
		req.Nullifiers = append(req.Nullifiers, wordToDigest(n))
	}
	resp, err := c.api.CheckNullifiers(ctx, req)
	if err != nil {
		return nil, wrapCall("CheckNullifiers", err)
	}
	return resp, nil
}

// CheckNullifiersByPrefix returns the nullifiers consumed at or after
// blockNum whose most significant prefixLen bits match one of prefixes. The
// node only supports 16-bit prefixes, so any other prefixLen is rejected
// without a network call.
func (c *Client) CheckNullifiersByPrefix(ctx context.Context, prefixLen uint32, prefixes []uint32, blockNum uint32) (*noderpc.CheckNullifiersByPrefixResponse, error) {
	if prefixLen != nullifierPrefixLen {
		return nil, fmt.Errorf("%w: %d (only %d-bit prefixes are supported)", ErrInvalidPrefixLength, prefixLen, nullifierPrefixLen)
	}
	req := &noderpc.CheckNullifiersByPrefixRequest{
		PrefixLen:  prefixLen,
		Nullifiers: prefixes,
		BlockNum:   blockNum,
	}
	resp, err := c.api.CheckNullifiersByPrefix(ctx, req)
	if err != nil {
		return nil, wrapCall("CheckNullifiersByPrefix", err)
	}
	return resp, nil
}

// GetNotesByID returns the committed notes with the given ids; unknown ids
// are simply absent from the response.
func (c *Client) GetNotesByID(ctx context.Context, ids []types.NoteID) (*noderpc.CommittedNoteList, error) {
	req := &noderpc.NoteIdList{
		Ids: make([]*noderpc.NoteId, 0, len(ids)),
	}
	for _, id := range ids {
		req.Ids = append(req.Ids, noteIDToProto(id))
	}
	resp, err := c.api.GetNotesById(ctx, req)
	if err != nil {
		return nil, wrapCall("GetNotesById", err)
	}
	return resp, nil
}

// GetAccountCommitment returns the latest state commitment of the account as
// a 0x-prefixed lowercase hex string.
func (c *Client) GetAccountCommitment(ctx context.Context, id types.AccountID) (string, error) {
	resp, err := c.api.GetAccountDetails(ctx, accountIDToProto(id))
	if err != nil {
		return "", wrapCall("GetAccountDetails", err)
	}
	summary := resp.GetSummary()
	if summary == nil {
		return "", malformed("GetAccountDetails", "account summary in response")
	}
	commitment := summary.GetAccountCommitment()
	if commitment == nil {
		return "", malformed("GetAccountDetails", "commitment in account summary")
	}
	return "0x" + hex.EncodeToString(digestToWord(commitment).Bytes()), nil
}

// GetAccountDetails returns the latest committed state of the account,
// including the serialized account data for public accounts.
func (c *Client) GetAccountDetails(ctx context.Context, id types.AccountID) (*noderpc.AccountDetails, error) {
	resp, err := c.api.GetAccountDetails(ctx, accountIDToProto(id))
	if err != nil {
		return nil, wrapCall("GetAccountDetails", err)
	}
	return resp, nil
}

// GetAccountProofs returns state proofs for the requested accounts anchored
// at the current chain tip. Code known to the caller can be skipped by
// listing its commitments in codeCommitments.
func (c *Client) GetAccountProofs(ctx context.Context, requests []AccountProofRequest, includeHeaders bool, codeCommitments []types.Word) (*noderpc.AccountProofs, error) {
	req := &noderpc.AccountProofsRequest{
		AccountRequests: make([]*noderpc.AccountRequest, 0, len(requests)),
		IncludeHeaders:  &includeHeaders,
		CodeCommitments: make([]*noderpc.Digest, 0, len(codeCommitments)),
	}
	for _, r := range requests {
		ar := &noderpc.AccountRequest{
			AccountId:      accountIDToProto(r.AccountID),
			StorageMapKeys: make([]*noderpc.Digest, 0, len(r.StorageMapKeys)),
		}
		for _, k := range r.StorageMapKeys {
			ar.StorageMapKeys = append(ar.StorageMapKeys, wordToDigest(k))
		}
		req.AccountRequests = append(req.AccountRequests, ar)
	}
	for _, cc := range codeCommitments {
		req.CodeCommitments = append(req.CodeCommitments, wordToDigest(cc))
	}
	resp, err := c.api.GetAccountProofs(ctx, req)
	if err != nil {
		return nil, wrapCall("GetAccountProofs", err)
	}
	return resp, nil
}

// GetBlockByNumber returns the raw serialized block at the given height; the
// block field is absent when the height is not committed yet.
func (c *Client) GetBlockByNumber(ctx context.Context, blockNum uint32) (*noderpc.MaybeBlock, error) {
	req := &noderpc.BlockNumber{BlockNum: blockNum}
	resp, err := c.api.GetBlockByNumber(ctx, req)
	if err != nil {
		return nil, wrapCall("GetBlockByNumber", err)
	}
	return resp, nil
}

// SyncAccountVault returns the account's asset vault updates within the
// [fromBlock, toBlock] range; a nil toBlock means the chain tip.
func (c *Client) SyncAccountVault(ctx context.Context, id types.AccountID, fromBlock uint32, toBlock *uint32) (*noderpc.SyncAccountVaultResponse, error) {
	req := &noderpc.SyncAccountVaultRequest{
		AccountId: accountIDToProto(id),
		BlockFrom: fromBlock,
		BlockTo:   toBlock,
	}
	resp, err := c.api.SyncAccountVault(ctx, req)
	if err != nil {
		return nil, wrapCall("SyncAccountVault", err)
	}
	return resp, nil
}

// SyncNotes returns the notes matching the given tags committed after
// blockNum.
func (c *Client) SyncNotes(ctx context.Context, blockNum uint32, noteTags []types.NoteTag) (*noderpc.SyncNotesResponse, error) {
	req := &noderpc.SyncNotesRequest{
		BlockNum: blockNum,
		NoteTags: make([]uint32, 0, len(noteTags)),
	}
	for _, tag := range noteTags {
		req.NoteTags = append(req.NoteTags, uint32(tag))
	}
	resp, err := c.api.SyncNotes(ctx, req)
	if err != nil {
		return nil, wrapCall("SyncNotes", err)
	}
	return resp, nil
}

// SyncStorageMaps returns the account's storage map updates within the
// [fromBlock, toBlock] range; a nil toBlock means the chain tip.
func (c *Client) SyncStorageMaps(ctx context.Context, id types.AccountID, fromBlock uint32, toBlock *uint32) (*noderpc.SyncStorageMapsResponse, error) {
	req := &noderpc.SyncStorageMapsRequest{
		AccountId: accountIDToProto(id),
		BlockFrom: fromBlock,
		BlockTo:   toBlock,
	}
	resp, err := c.api.SyncStorageMaps(ctx, req)
	if err != nil {
		return nil, wrapCall("SyncStorageMaps", err)
	}
	return resp, nil
}
