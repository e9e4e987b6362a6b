package noderpc

import (
	"github.com/golang/protobuf/proto"
)

// SyncStateRequest asks for state updates relevant to the given accounts and
// note tags, starting right after block_num. Empty lists are valid and simply
// select nothing.
type SyncStateRequest struct {
	BlockNum   uint32       `protobuf:"varint,1,opt,name=block_num,json=blockNum,proto3" json:"block_num,omitempty"`
	AccountIds []*AccountId `protobuf:"bytes,2,rep,name=account_ids,json=accountIds" json:"account_ids,omitempty"`
	NoteTags   []uint32     `protobuf:"varint,3,rep,packed,name=note_tags,json=noteTags,proto3" json:"note_tags,omitempty"`
}

func (m *SyncStateRequest) Reset()         { *m = SyncStateRequest{} }
func (m *SyncStateRequest) String() string { return proto.CompactTextString(m) }
func (*SyncStateRequest) ProtoMessage()    {}

func (m *SyncStateRequest) GetBlockNum() uint32 {
	if m != nil {
		return m.BlockNum
	}
	return 0
}

func (m *SyncStateRequest) GetAccountIds() []*AccountId {
	if m != nil {
		return m.AccountIds
	}
	return nil
}

func (m *SyncStateRequest) GetNoteTags() []uint32 {
	if m != nil {
		return m.NoteTags
	}
	return nil
}

// SyncStateResponse carries one chunk of the relevant updates up to the header
// of the chunk's last block; clients call SyncState again from that block to
// continue.
type SyncStateResponse struct {
	ChainTip     uint32                `protobuf:"varint,1,opt,name=chain_tip,json=chainTip,proto3" json:"chain_tip,omitempty"`
	BlockHeader  *BlockHeader          `protobuf:"bytes,2,opt,name=block_header,json=blockHeader" json:"block_header,omitempty"`
	Accounts     []*AccountSummary     `protobuf:"bytes,3,rep,name=accounts" json:"accounts,omitempty"`
	Transactions []*TransactionSummary `protobuf:"bytes,4,rep,name=transactions" json:"transactions,omitempty"`
	Notes        []*CommittedNote      `protobuf:"bytes,5,rep,name=notes" json:"notes,omitempty"`
}

func (m *SyncStateResponse) Reset()         { *m = SyncStateResponse{} }
func (m *SyncStateResponse) String() string { return proto.CompactTextString(m) }
func (*SyncStateResponse) ProtoMessage()    {}

func (m *SyncStateResponse) GetChainTip() uint32 {
	if m != nil {
		return m.ChainTip
	}
	return 0
}

func (m *SyncStateResponse) GetBlockHeader() *BlockHeader {
	if m != nil {
		return m.BlockHeader
	}
	return nil
}

func (m *SyncStateResponse) GetAccounts() []*AccountSummary {
	if m != nil {
		return m.Accounts
	}
	return nil
}

func (m *SyncStateResponse) GetTransactions() []*TransactionSummary {
	if m != nil {
		return m.Transactions
	}
	return nil
}

func (m *SyncStateResponse) GetNotes() []*CommittedNote {
	if m != nil {
		return m.Notes
	}
	return nil
}

// NullifierList is the request of the CheckNullifiers call.
type NullifierList struct {
	Nullifiers []*Digest `protobuf:"bytes,1,rep,name=nullifiers" json:"nullifiers,omitempty"`
}

func (m *NullifierList) Reset()         { *m = NullifierList{} }
func (m *NullifierList) String() string { return proto.CompactTextString(m) }
func (*NullifierList) ProtoMessage()    {}

func (m *NullifierList) GetNullifiers() []*Digest {
	if m != nil {
		return m.Nullifiers
	}
	return nil
}

// NullifierProof is the opening of the nullifier tree for one requested
// nullifier. BlockNum is zero when the nullifier is unspent.
type NullifierProof struct {
	Nullifier *Digest `protobuf:"bytes,1,opt,name=nullifier" json:"nullifier,omitempty"`
	BlockNum  uint32  `protobuf:"varint,2,opt,name=block_num,json=blockNum,proto3" json:"block_num,omitempty"`
	Opening   []byte  `protobuf:"bytes,3,opt,name=opening,proto3" json:"opening,omitempty"`
}

func (m *NullifierProof) Reset()         { *m = NullifierProof{} }
func (m *NullifierProof) String() string { return proto.CompactTextString(m) }
func (*NullifierProof) ProtoMessage()    {}

func (m *NullifierProof) GetNullifier() *Digest {
	if m != nil {
		return m.Nullifier
	}
	return nil
}

func (m *NullifierProof) GetBlockNum() uint32 {
	if m != nil {
		return m.BlockNum
	}
	return 0
}

func (m *NullifierProof) GetOpening() []byte {
	if m != nil {
		return m.Opening
	}
	return nil
}

// CheckNullifiersResponse returns one proof per requested nullifier, in
// request order.
type CheckNullifiersResponse struct {
	Proofs []*NullifierProof `protobuf:"bytes,1,rep,name=proofs" json:"proofs,omitempty"`
}

func (m *CheckNullifiersResponse) Reset()         { *m = CheckNullifiersResponse{} }
func (m *CheckNullifiersResponse) String() string { return proto.CompactTextString(m) }
func (*CheckNullifiersResponse) ProtoMessage()    {}

func (m *CheckNullifiersResponse) GetProofs() []*NullifierProof {
	if m != nil {
		return m.Proofs
	}
	return nil
}

// CheckNullifiersByPrefixRequest selects nullifiers consumed at or after
// block_num whose most significant prefix_len bits match one of the given
// prefixes. The node only supports prefix_len == 16.
type CheckNullifiersByPrefixRequest struct {
	PrefixLen  uint32   `protobuf:"varint,1,opt,name=prefix_len,json=prefixLen,proto3" json:"prefix_len,omitempty"`
	Nullifiers []uint32 `protobuf:"varint,2,rep,packed,name=nullifiers,proto3" json:"nullifiers,omitempty"`
	BlockNum   uint32   `protobuf:"varint,3,opt,name=block_num,json=blockNum,proto3" json:"block_num,omitempty"`
}

func (m *CheckNullifiersByPrefixRequest) Reset()         { *m = CheckNullifiersByPrefixRequest{} }
func (m *CheckNullifiersByPrefixRequest) String() string { return proto.CompactTextString(m) }
func (*CheckNullifiersByPrefixRequest) ProtoMessage()    {}

func (m *CheckNullifiersByPrefixRequest) GetPrefixLen() uint32 {
	if m != nil {
		return m.PrefixLen
	}
	return 0
}

func (m *CheckNullifiersByPrefixRequest) GetNullifiers() []uint32 {
	if m != nil {
		return m.Nullifiers
	}
	return nil
}

func (m *CheckNullifiersByPrefixRequest) GetBlockNum() uint32 {
	if m != nil {
		return m.BlockNum
	}
	return 0
}

// NullifierUpdate records the block in which a matching nullifier was
// consumed.
type NullifierUpdate struct {
	Nullifier *Digest `protobuf:"bytes,1,opt,name=nullifier" json:"nullifier,omitempty"`
	BlockNum  uint32  `protobuf:"varint,2,opt,name=block_num,json=blockNum,proto3" json:"block_num,omitempty"`
}

func (m *NullifierUpdate) Reset()         { *m = NullifierUpdate{} }
func (m *NullifierUpdate) String() string { return proto.CompactTextString(m) }
func (*NullifierUpdate) ProtoMessage()    {}

func (m *NullifierUpdate) GetNullifier() *Digest {
	if m != nil {
		return m.Nullifier
	}
	return nil
}

func (m *NullifierUpdate) GetBlockNum() uint32 {
	if m != nil {
		return m.BlockNum
	}
	return 0
}

// CheckNullifiersByPrefixResponse lists the nullifiers matching the request.
type CheckNullifiersByPrefixResponse struct {
	Nullifiers []*NullifierUpdate `protobuf:"bytes,1,rep,name=nullifiers" json:"nullifiers,omitempty"`
}

func (m *CheckNullifiersByPrefixResponse) Reset()         { *m = CheckNullifiersByPrefixResponse{} }
func (m *CheckNullifiersByPrefixResponse) String() string { return proto.CompactTextString(m) }
func (*CheckNullifiersByPrefixResponse) ProtoMessage()    {}

func (m *CheckNullifiersByPrefixResponse) GetNullifiers() []*NullifierUpdate {
	if m != nil {
		return m.Nullifiers
	}
	return nil
}

// AccountRequest selects one account for GetAccountProofs, optionally with
// the storage map keys to open.
type AccountRequest struct {
	AccountId      *AccountId `protobuf:"bytes,1,opt,name=account_id,json=accountId" json:"account_id,omitempty"`
	StorageMapKeys []*Digest  `protobuf:"bytes,2,rep,name=storage_map_keys,json=storageMapKeys" json:"storage_map_keys,omitempty"`
}

func (m *AccountRequest) Reset()         { *m = AccountRequest{} }
func (m *AccountRequest) String() string { return proto.CompactTextString(m) }
func (*AccountRequest) ProtoMessage()    {}

func (m *AccountRequest) GetAccountId() *AccountId {
	if m != nil {
		return m.AccountId
	}
	return nil
}

func (m *AccountRequest) GetStorageMapKeys() []*Digest {
	if m != nil {
		return m.StorageMapKeys
	}
	return nil
}

// AccountProofsRequest asks for state proofs of several accounts at the
// current chain tip. Known code commitments may be listed so the node can
// omit matching code from the response.
type AccountProofsRequest struct {
	AccountRequests []*AccountRequest `protobuf:"bytes,1,rep,name=account_requests,json=accountRequests" json:"account_requests,omitempty"`
	IncludeHeaders  *bool             `protobuf:"varint,2,opt,name=include_headers,json=includeHeaders" json:"include_headers,omitempty"`
	CodeCommitments []*Digest         `protobuf:"bytes,3,rep,name=code_commitments,json=codeCommitments" json:"code_commitments,omitempty"`
}

func (m *AccountProofsRequest) Reset()         { *m = AccountProofsRequest{} }
func (m *AccountProofsRequest) String() string { return proto.CompactTextString(m) }
func (*AccountProofsRequest) ProtoMessage()    {}

func (m *AccountProofsRequest) GetAccountRequests() []*AccountRequest {
	if m != nil {
		return m.AccountRequests
	}
	return nil
}

func (m *AccountProofsRequest) GetIncludeHeaders() bool {
	if m != nil && m.IncludeHeaders != nil {
		return *m.IncludeHeaders
	}
	return false
}

func (m *AccountProofsRequest) GetCodeCommitments() []*Digest {
	if m != nil {
		return m.CodeCommitments
	}
	return nil
}

// AccountProof is the state proof of a single account.
type AccountProof struct {
	AccountId         *AccountId `protobuf:"bytes,1,opt,name=account_id,json=accountId" json:"account_id,omitempty"`
	AccountCommitment *Digest    `protobuf:"bytes,2,opt,name=account_commitment,json=accountCommitment" json:"account_commitment,omitempty"`
	Proof             []byte     `protobuf:"bytes,3,opt,name=proof,proto3" json:"proof,omitempty"`
	Header            []byte     `protobuf:"bytes,4,opt,name=header" json:"header,omitempty"`
}

func (m *AccountProof) Reset()         { *m = AccountProof{} }
func (m *AccountProof) String() string { return proto.CompactTextString(m) }
func (*AccountProof) ProtoMessage()    {}

func (m *AccountProof) GetAccountId() *AccountId {
	if m != nil {
		return m.AccountId
	}
	return nil
}

func (m *AccountProof) GetAccountCommitment() *Digest {
	if m != nil {
		return m.AccountCommitment
	}
	return nil
}

func (m *AccountProof) GetProof() []byte {
	if m != nil {
		return m.Proof
	}
	return nil
}

func (m *AccountProof) GetHeader() []byte {
	if m != nil {
		return m.Header
	}
	return nil
}

// AccountProofs is the response of the GetAccountProofs call; all proofs are
// anchored at BlockNum.
type AccountProofs struct {
	BlockNum      uint32          `protobuf:"varint,1,opt,name=block_num,json=blockNum,proto3" json:"block_num,omitempty"`
	AccountProofs []*AccountProof `protobuf:"bytes,2,rep,name=account_proofs,json=accountProofs" json:"account_proofs,omitempty"`
}

func (m *AccountProofs) Reset()         { *m = AccountProofs{} }
func (m *AccountProofs) String() string { return proto.CompactTextString(m) }
func (*AccountProofs) ProtoMessage()    {}

func (m *AccountProofs) GetBlockNum() uint32 {
	if m != nil {
		return m.BlockNum
	}
	return 0
}

func (m *AccountProofs) GetAccountProofs() []*AccountProof {
	if m != nil {
		return m.AccountProofs
	}
	return nil
}

// SyncAccountVaultRequest asks for asset vault updates of one account within
// the [block_from, block_to] range; block_to defaults to the chain tip.
type SyncAccountVaultRequest struct {
	AccountId *AccountId `protobuf:"bytes,1,opt,name=account_id,json=accountId" json:"account_id,omitempty"`
	BlockFrom uint32     `protobuf:"varint,2,opt,name=block_from,json=blockFrom,proto3" json:"block_from,omitempty"`
	BlockTo   *uint32    `protobuf:"varint,3,opt,name=block_to,json=blockTo" json:"block_to,omitempty"`
}

func (m *SyncAccountVaultRequest) Reset()         { *m = SyncAccountVaultRequest{} }
func (m *SyncAccountVaultRequest) String() string { return proto.CompactTextString(m) }
func (*SyncAccountVaultRequest) ProtoMessage()    {}

func (m *SyncAccountVaultRequest) GetAccountId() *AccountId {
	if m != nil {
		return m.AccountId
	}
	return nil
}

func (m *SyncAccountVaultRequest) GetBlockFrom() uint32 {
	if m != nil {
		return m.BlockFrom
	}
	return 0
}

func (m *SyncAccountVaultRequest) GetBlockTo() uint32 {
	if m != nil && m.BlockTo != nil {
		return *m.BlockTo
	}
	return 0
}

// VaultUpdate is one serialized asset delta applied to an account vault.
type VaultUpdate struct {
	BlockNum uint32 `protobuf:"varint,1,opt,name=block_num,json=blockNum,proto3" json:"block_num,omitempty"`
	Asset    []byte `protobuf:"bytes,2,opt,name=asset,proto3" json:"asset,omitempty"`
}

func (m *VaultUpdate) Reset()         { *m = VaultUpdate{} }
func (m *VaultUpdate) String() string { return proto.CompactTextString(m) }
func (*VaultUpdate) ProtoMessage()    {}

func (m *VaultUpdate) GetBlockNum() uint32 {
	if m != nil {
		return m.BlockNum
	}
	return 0
}

func (m *VaultUpdate) GetAsset() []byte {
	if m != nil {
		return m.Asset
	}
	return nil
}

// SyncAccountVaultResponse carries one chunk of vault updates.
type SyncAccountVaultResponse struct {
	ChainTip uint32         `protobuf:"varint,1,opt,name=chain_tip,json=chainTip,proto3" json:"chain_tip,omitempty"`
	Updates  []*VaultUpdate `protobuf:"bytes,2,rep,name=updates" json:"updates,omitempty"`
}

func (m *SyncAccountVaultResponse) Reset()         { *m = SyncAccountVaultResponse{} }
func (m *SyncAccountVaultResponse) String() string { return proto.CompactTextString(m) }
func (*SyncAccountVaultResponse) ProtoMessage()    {}

func (m *SyncAccountVaultResponse) GetChainTip() uint32 {
	if m != nil {
		return m.ChainTip
	}
	return 0
}

func (m *SyncAccountVaultResponse) GetUpdates() []*VaultUpdate {
	if m != nil {
		return m.Updates
	}
	return nil
}

// SyncNotesRequest asks for notes matching the given tags committed after
// block_num.
type SyncNotesRequest struct {
	BlockNum uint32   `protobuf:"varint,1,opt,name=block_num,json=blockNum,proto3" json:"block_num,omitempty"`
	NoteTags []uint32 `protobuf:"varint,2,rep,packed,name=note_tags,json=noteTags,proto3" json:"note_tags,omitempty"`
}

func (m *SyncNotesRequest) Reset()         { *m = SyncNotesRequest{} }
func (m *SyncNotesRequest) String() string { return proto.CompactTextString(m) }
func (*SyncNotesRequest) ProtoMessage()    {}

func (m *SyncNotesRequest) GetBlockNum() uint32 {
	if m != nil {
		return m.BlockNum
	}
	return 0
}

func (m *SyncNotesRequest) GetNoteTags() []uint32 {
	if m != nil {
		return m.NoteTags
	}
	return nil
}

// SyncNotesResponse carries one chunk of matching notes up to BlockHeader.
type SyncNotesResponse struct {
	ChainTip    uint32           `protobuf:"varint,1,opt,name=chain_tip,json=chainTip,proto3" json:"chain_tip,omitempty"`
	BlockHeader *BlockHeader     `protobuf:"bytes,2,opt,name=block_header,json=blockHeader" json:"block_header,omitempty"`
	Notes       []*CommittedNote `protobuf:"bytes,3,rep,name=notes" json:"notes,omitempty"`
}

func (m *SyncNotesResponse) Reset()         { *m = SyncNotesResponse{} }
func (m *SyncNotesResponse) String() string { return proto.CompactTextString(m) }
func (*SyncNotesResponse) ProtoMessage()    {}

func (m *SyncNotesResponse) GetChainTip() uint32 {
	if m != nil {
		return m.ChainTip
	}
	return 0
}

func (m *SyncNotesResponse) GetBlockHeader() *BlockHeader {
	if m != nil {
		return m.BlockHeader
	}
	return nil
}

func (m *SyncNotesResponse) GetNotes() []*CommittedNote {
	if m != nil {
		return m.Notes
	}
	return nil
}

// SyncStorageMapsRequest asks for storage map updates of one account within
// the [block_from, block_to] range; block_to defaults to the chain tip.
type SyncStorageMapsRequest struct {
	AccountId *AccountId `protobuf:"bytes,1,opt,name=account_id,json=accountId" json:"account_id,omitempty"`
	BlockFrom uint32     `protobuf:"varint,2,opt,name=block_from,json=blockFrom,proto3" json:"block_from,omitempty"`
	BlockTo   *uint32    `protobuf:"varint,3,opt,name=block_to,json=blockTo" json:"block_to,omitempty"`
}

func (m *SyncStorageMapsRequest) Reset()         { *m = SyncStorageMapsRequest{} }
func (m *SyncStorageMapsRequest) String() string { return proto.CompactTextString(m) }
func (*SyncStorageMapsRequest) ProtoMessage()    {}

func (m *SyncStorageMapsRequest) GetAccountId() *AccountId {
	if m != nil {
		return m.AccountId
	}
	return nil
}

func (m *SyncStorageMapsRequest) GetBlockFrom() uint32 {
	if m != nil {
		return m.BlockFrom
	}
	return 0
}

func (m *SyncStorageMapsRequest) GetBlockTo() uint32 {
	if m != nil && m.BlockTo != nil {
		return *m.BlockTo
	}
	return 0
}

// StorageMapUpdate is one key/value write observed in an account's storage
// map.
type StorageMapUpdate struct {
	BlockNum  uint32  `protobuf:"varint,1,opt,name=block_num,json=blockNum,proto3" json:"block_num,omitempty"`
	SlotIndex uint32  `protobuf:"varint,2,opt,name=slot_index,json=slotIndex,proto3" json:"slot_index,omitempty"`
	Key       *Digest `protobuf:"bytes,3,opt,name=key" json:"key,omitempty"`
	Value     *Digest `protobuf:"bytes,4,opt,name=value" json:"value,omitempty"`
}

func (m *StorageMapUpdate) Reset()         { *m = StorageMapUpdate{} }
func (m *StorageMapUpdate) String() string { return proto.CompactTextString(m) }
func (*StorageMapUpdate) ProtoMessage()    {}

func (m *StorageMapUpdate) GetBlockNum() uint32 {
	if m != nil {
		return m.BlockNum
	}
	return 0
}

func (m *StorageMapUpdate) GetSlotIndex() uint32 {
	if m != nil {
		return m.SlotIndex
	}
	return 0
}

func (m *StorageMapUpdate) GetKey() *Digest {
	if m != nil {
		return m.Key
	}
	return nil
}

func (m *StorageMapUpdate) GetValue() *Digest {
	if m != nil {
		return m.Value
	}
	return nil
}

// SyncStorageMapsResponse carries one chunk of storage map updates.
type SyncStorageMapsResponse struct {
	ChainTip uint32              `protobuf:"varint,1,opt,name=chain_tip,json=chainTip,proto3" json:"chain_tip,omitempty"`
	Updates  []*StorageMapUpdate `protobuf:"bytes,2,rep,name=updates" json:"updates,omitempty"`
}

func (m *SyncStorageMapsResponse) Reset()         { *m = SyncStorageMapsResponse{} }
func (m *SyncStorageMapsResponse) String() string { return proto.CompactTextString(m) }
func (*SyncStorageMapsResponse) ProtoMessage()    {}

func (m *SyncStorageMapsResponse) GetChainTip() uint32 {
	if m != nil {
		return m.ChainTip
	}
	return 0
}

func (m *SyncStorageMapsResponse) GetUpdates() []*StorageMapUpdate {
	if m != nil {
		return m.Updates
	}
	return nil
}
