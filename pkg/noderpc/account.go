package noderpc

import (
	"github.com/golang/protobuf/proto"
)

// AccountId is the serialized form of an account identifier.
type AccountId struct {
	Id []byte `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
}

func (m *AccountId) Reset()         { *m = AccountId{} }
func (m *AccountId) String() string { return proto.CompactTextString(m) }
func (*AccountId) ProtoMessage()    {}

func (m *AccountId) GetId() []byte {
	if m != nil {
		return m.Id
	}
	return nil
}

// AccountSummary describes the latest committed state of an account.
type AccountSummary struct {
	AccountId         *AccountId `protobuf:"bytes,1,opt,name=account_id,json=accountId" json:"account_id,omitempty"`
	AccountCommitment *Digest    `protobuf:"bytes,2,opt,name=account_commitment,json=accountCommitment" json:"account_commitment,omitempty"`
	BlockNum          uint32     `protobuf:"varint,3,opt,name=block_num,json=blockNum,proto3" json:"block_num,omitempty"`
}

func (m *AccountSummary) Reset()         { *m = AccountSummary{} }
func (m *AccountSummary) String() string { return proto.CompactTextString(m) }
func (*AccountSummary) ProtoMessage()    {}

func (m *AccountSummary) GetAccountId() *AccountId {
	if m != nil {
		return m.AccountId
	}
	return nil
}

func (m *AccountSummary) GetAccountCommitment() *Digest {
	if m != nil {
		return m.AccountCommitment
	}
	return nil
}

func (m *AccountSummary) GetBlockNum() uint32 {
	if m != nil {
		return m.BlockNum
	}
	return 0
}

// AccountDetails is the response of the GetAccountDetails call. Details holds
// the serialized account data and is only present for public accounts.
type AccountDetails struct {
	Summary *AccountSummary `protobuf:"bytes,1,opt,name=summary" json:"summary,omitempty"`
	Details []byte          `protobuf:"bytes,2,opt,name=details" json:"details,omitempty"`
}

func (m *AccountDetails) Reset()         { *m = AccountDetails{} }
func (m *AccountDetails) String() string { return proto.CompactTextString(m) }
func (*AccountDetails) ProtoMessage()    {}

func (m *AccountDetails) GetSummary() *AccountSummary {
	if m != nil {
		return m.Summary
	}
	return nil
}

func (m *AccountDetails) GetDetails() []byte {
	if m != nil {
		return m.Details
	}
	return nil
}
