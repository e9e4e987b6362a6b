package noderpc

import (
	"github.com/golang/protobuf/proto"
)

// BlockHeader is the header of a committed block. All roots and commitments
// are digests over the corresponding block content.
type BlockHeader struct {
	Version              uint32  `protobuf:"varint,1,opt,name=version,proto3" json:"version,omitempty"`
	PrevBlockCommitment  *Digest `protobuf:"bytes,2,opt,name=prev_block_commitment,json=prevBlockCommitment" json:"prev_block_commitment,omitempty"`
	BlockNum             uint32  `protobuf:"varint,3,opt,name=block_num,json=blockNum,proto3" json:"block_num,omitempty"`
	ChainCommitment      *Digest `protobuf:"bytes,4,opt,name=chain_commitment,json=chainCommitment" json:"chain_commitment,omitempty"`
	AccountRoot          *Digest `protobuf:"bytes,5,opt,name=account_root,json=accountRoot" json:"account_root,omitempty"`
	NullifierRoot        *Digest `protobuf:"bytes,6,opt,name=nullifier_root,json=nullifierRoot" json:"nullifier_root,omitempty"`
	NoteRoot             *Digest `protobuf:"bytes,7,opt,name=note_root,json=noteRoot" json:"note_root,omitempty"`
	TxCommitment         *Digest `protobuf:"bytes,8,opt,name=tx_commitment,json=txCommitment" json:"tx_commitment,omitempty"`
	TxKernelCommitment   *Digest `protobuf:"bytes,9,opt,name=tx_kernel_commitment,json=txKernelCommitment" json:"tx_kernel_commitment,omitempty"`
	ProofCommitment      *Digest `protobuf:"bytes,10,opt,name=proof_commitment,json=proofCommitment" json:"proof_commitment,omitempty"`
	Timestamp            uint32  `protobuf:"varint,11,opt,name=timestamp,proto3" json:"timestamp,omitempty"`
}

func (m *BlockHeader) Reset()         { *m = BlockHeader{} }
func (m *BlockHeader) String() string { return proto.CompactTextString(m) }
func (*BlockHeader) ProtoMessage()    {}

func (m *BlockHeader) GetVersion() uint32 {
	if m != nil {
		return m.Version
	}
	return 0
}

func (m *BlockHeader) GetPrevBlockCommitment() *Digest {
	if m != nil {
		return m.PrevBlockCommitment
	}
	return nil
}

func (m *BlockHeader) GetBlockNum() uint32 {
	if m != nil {
		return m.BlockNum
	}
	return 0
}

func (m *BlockHeader) GetChainCommitment() *Digest {
	if m != nil {
		return m.ChainCommitment
	}
	return nil
}

func (m *BlockHeader) GetAccountRoot() *Digest {
	if m != nil {
		return m.AccountRoot
	}
	return nil
}

func (m *BlockHeader) GetNullifierRoot() *Digest {
	if m != nil {
		return m.NullifierRoot
	}
	return nil
}

func (m *BlockHeader) GetNoteRoot() *Digest {
	if m != nil {
		return m.NoteRoot
	}
	return nil
}

func (m *BlockHeader) GetTxCommitment() *Digest {
	if m != nil {
		return m.TxCommitment
	}
	return nil
}

func (m *BlockHeader) GetTxKernelCommitment() *Digest {
	if m != nil {
		return m.TxKernelCommitment
	}
	return nil
}

func (m *BlockHeader) GetProofCommitment() *Digest {
	if m != nil {
		return m.ProofCommitment
	}
	return nil
}

func (m *BlockHeader) GetTimestamp() uint32 {
	if m != nil {
		return m.Timestamp
	}
	return 0
}

// BlockNumber is the request of the GetBlockByNumber call.
type BlockNumber struct {
	BlockNum uint32 `protobuf:"varint,1,opt,name=block_num,json=blockNum,proto3" json:"block_num,omitempty"`
}

func (m *BlockNumber) Reset()         { *m = BlockNumber{} }
func (m *BlockNumber) String() string { return proto.CompactTextString(m) }
func (*BlockNumber) ProtoMessage()    {}

func (m *BlockNumber) GetBlockNum() uint32 {
	if m != nil {
		return m.BlockNum
	}
	return 0
}

// MaybeBlock carries the serialized block, absent when the requested height is
// not committed yet.
type MaybeBlock struct {
	Block []byte `protobuf:"bytes,1,opt,name=block" json:"block,omitempty"`
}

func (m *MaybeBlock) Reset()         { *m = MaybeBlock{} }
func (m *MaybeBlock) String() string { return proto.CompactTextString(m) }
func (*MaybeBlock) ProtoMessage()    {}

func (m *MaybeBlock) GetBlock() []byte {
	if m != nil {
		return m.Block
	}
	return nil
}

// BlockHeaderByNumberRequest asks for a header, optionally at a specific
// height (latest when absent) and optionally with an MMR inclusion proof.
type BlockHeaderByNumberRequest struct {
	BlockNum        *uint32 `protobuf:"varint,1,opt,name=block_num,json=blockNum" json:"block_num,omitempty"`
	IncludeMmrProof *bool   `protobuf:"varint,2,opt,name=include_mmr_proof,json=includeMmrProof" json:"include_mmr_proof,omitempty"`
}

func (m *BlockHeaderByNumberRequest) Reset()         { *m = BlockHeaderByNumberRequest{} }
func (m *BlockHeaderByNumberRequest) String() string { return proto.CompactTextString(m) }
func (*BlockHeaderByNumberRequest) ProtoMessage()    {}

func (m *BlockHeaderByNumberRequest) GetBlockNum() uint32 {
	if m != nil && m.BlockNum != nil {
		return *m.BlockNum
	}
	return 0
}

func (m *BlockHeaderByNumberRequest) GetIncludeMmrProof() bool {
	if m != nil && m.IncludeMmrProof != nil {
		return *m.IncludeMmrProof
	}
	return false
}

// BlockHeaderByNumberResponse returns the header and, when requested, the MMR
// path proving its inclusion in a chain of ChainLength blocks.
type BlockHeaderByNumberResponse struct {
	BlockHeader *BlockHeader `protobuf:"bytes,1,opt,name=block_header,json=blockHeader" json:"block_header,omitempty"`
	MmrPath     *MerklePath  `protobuf:"bytes,2,opt,name=mmr_path,json=mmrPath" json:"mmr_path,omitempty"`
	ChainLength *uint32      `protobuf:"varint,3,opt,name=chain_length,json=chainLength" json:"chain_length,omitempty"`
}

func (m *BlockHeaderByNumberResponse) Reset()         { *m = BlockHeaderByNumberResponse{} }
func (m *BlockHeaderByNumberResponse) String() string { return proto.CompactTextString(m) }
func (*BlockHeaderByNumberResponse) ProtoMessage()    {}

func (m *BlockHeaderByNumberResponse) GetBlockHeader() *BlockHeader {
	if m != nil {
		return m.BlockHeader
	}
	return nil
}

func (m *BlockHeaderByNumberResponse) GetMmrPath() *MerklePath {
	if m != nil {
		return m.MmrPath
	}
	return nil
}

func (m *BlockHeaderByNumberResponse) GetChainLength() uint32 {
	if m != nil && m.ChainLength != nil {
		return *m.ChainLength
	}
	return 0
}
