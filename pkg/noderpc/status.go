package noderpc

import (
	"github.com/golang/protobuf/proto"
)

// StatusRequest is the empty request of the Status call.
type StatusRequest struct{}

func (m *StatusRequest) Reset()         { *m = StatusRequest{} }
func (m *StatusRequest) String() string { return proto.CompactTextString(m) }
func (*StatusRequest) ProtoMessage()    {}

// StoreStatus reports the health of the node's store component.
type StoreStatus struct {
	Version  string `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
	Status   string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	ChainTip uint32 `protobuf:"varint,3,opt,name=chain_tip,json=chainTip,proto3" json:"chain_tip,omitempty"`
}

func (m *StoreStatus) Reset()         { *m = StoreStatus{} }
func (m *StoreStatus) String() string { return proto.CompactTextString(m) }
func (*StoreStatus) ProtoMessage()    {}

func (m *StoreStatus) GetVersion() string {
	if m != nil {
		return m.Version
	}
	return ""
}

func (m *StoreStatus) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

func (m *StoreStatus) GetChainTip() uint32 {
	if m != nil {
		return m.ChainTip
	}
	return 0
}

// BlockProducerStatus reports the health of the node's block producer.
type BlockProducerStatus struct {
	Version string `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
	Status  string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
}

func (m *BlockProducerStatus) Reset()         { *m = BlockProducerStatus{} }
func (m *BlockProducerStatus) String() string { return proto.CompactTextString(m) }
func (*BlockProducerStatus) ProtoMessage()    {}

func (m *BlockProducerStatus) GetVersion() string {
	if m != nil {
		return m.Version
	}
	return ""
}

func (m *BlockProducerStatus) GetStatus() string {
	if m != nil {
		return m.Status
	}
	return ""
}

// RpcStatus is the response of the Status call.
type RpcStatus struct {
	Version       string               `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
	Store         *StoreStatus         `protobuf:"bytes,2,opt,name=store" json:"store,omitempty"`
	BlockProducer *BlockProducerStatus `protobuf:"bytes,3,opt,name=block_producer,json=blockProducer" json:"block_producer,omitempty"`
}

func (m *RpcStatus) Reset()         { *m = RpcStatus{} }
func (m *RpcStatus) String() string { return proto.CompactTextString(m) }
func (*RpcStatus) ProtoMessage()    {}

func (m *RpcStatus) GetVersion() string {
	if m != nil {
		return m.Version
	}
	return ""
}

func (m *RpcStatus) GetStore() *StoreStatus {
	if m != nil {
		return m.Store
	}
	return nil
}

func (m *RpcStatus) GetBlockProducer() *BlockProducerStatus {
	if m != nil {
		return m.BlockProducer
	}
	return nil
}
