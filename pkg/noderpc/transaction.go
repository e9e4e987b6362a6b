package noderpc

import (
	"github.com/golang/protobuf/proto"
)

// ProvenTransaction wraps the opaque proof bytes of a single transaction.
type ProvenTransaction struct {
	Transaction []byte `protobuf:"bytes,1,opt,name=transaction,proto3" json:"transaction,omitempty"`
}

func (m *ProvenTransaction) Reset()         { *m = ProvenTransaction{} }
func (m *ProvenTransaction) String() string { return proto.CompactTextString(m) }
func (*ProvenTransaction) ProtoMessage()    {}

func (m *ProvenTransaction) GetTransaction() []byte {
	if m != nil {
		return m.Transaction
	}
	return nil
}

// ProvenTransactionBatch wraps an encoded, externally proven transaction
// batch.
type ProvenTransactionBatch struct {
	Encoded []byte `protobuf:"bytes,1,opt,name=encoded,proto3" json:"encoded,omitempty"`
}

func (m *ProvenTransactionBatch) Reset()         { *m = ProvenTransactionBatch{} }
func (m *ProvenTransactionBatch) String() string { return proto.CompactTextString(m) }
func (*ProvenTransactionBatch) ProtoMessage()    {}

func (m *ProvenTransactionBatch) GetEncoded() []byte {
	if m != nil {
		return m.Encoded
	}
	return nil
}

// SubmitProvenTransactionResponse reports the chain height at which the
// transaction was accepted into the mempool.
type SubmitProvenTransactionResponse struct {
	BlockHeight uint32 `protobuf:"varint,1,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
}

func (m *SubmitProvenTransactionResponse) Reset()         { *m = SubmitProvenTransactionResponse{} }
func (m *SubmitProvenTransactionResponse) String() string { return proto.CompactTextString(m) }
func (*SubmitProvenTransactionResponse) ProtoMessage()    {}

func (m *SubmitProvenTransactionResponse) GetBlockHeight() uint32 {
	if m != nil {
		return m.BlockHeight
	}
	return 0
}

// SubmitProvenBatchResponse acknowledges a submitted batch.
type SubmitProvenBatchResponse struct {
	BlockHeight uint32 `protobuf:"varint,1,opt,name=block_height,json=blockHeight,proto3" json:"block_height,omitempty"`
}

func (m *SubmitProvenBatchResponse) Reset()         { *m = SubmitProvenBatchResponse{} }
func (m *SubmitProvenBatchResponse) String() string { return proto.CompactTextString(m) }
func (*SubmitProvenBatchResponse) ProtoMessage()    {}

func (m *SubmitProvenBatchResponse) GetBlockHeight() uint32 {
	if m != nil {
		return m.BlockHeight
	}
	return 0
}

// TransactionSummary identifies a transaction committed against an account.
type TransactionSummary struct {
	AccountId     *AccountId `protobuf:"bytes,1,opt,name=account_id,json=accountId" json:"account_id,omitempty"`
	TransactionId *Digest    `protobuf:"bytes,2,opt,name=transaction_id,json=transactionId" json:"transaction_id,omitempty"`
	BlockNum      uint32     `protobuf:"varint,3,opt,name=block_num,json=blockNum,proto3" json:"block_num,omitempty"`
}

func (m *TransactionSummary) Reset()         { *m = TransactionSummary{} }
func (m *TransactionSummary) String() string { return proto.CompactTextString(m) }
func (*TransactionSummary) ProtoMessage()    {}

func (m *TransactionSummary) GetAccountId() *AccountId {
	if m != nil {
		return m.AccountId
	}
	return nil
}

func (m *TransactionSummary) GetTransactionId() *Digest {
	if m != nil {
		return m.TransactionId
	}
	return nil
}

func (m *TransactionSummary) GetBlockNum() uint32 {
	if m != nil {
		return m.BlockNum
	}
	return 0
}
