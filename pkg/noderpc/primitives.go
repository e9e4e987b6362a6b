package noderpc

import (
	"github.com/golang/protobuf/proto"
)

// Digest is a 256-bit commitment split into four 64-bit limbs. On the wire the
// limbs are fixed64 fields d0..d3; the canonical byte form is their
// little-endian concatenation.
type Digest struct {
	D0 uint64 `protobuf:"fixed64,1,opt,name=d0" json:"d0,omitempty"`
	D1 uint64 `protobuf:"fixed64,2,opt,name=d1" json:"d1,omitempty"`
	D2 uint64 `protobuf:"fixed64,3,opt,name=d2" json:"d2,omitempty"`
	D3 uint64 `protobuf:"fixed64,4,opt,name=d3" json:"d3,omitempty"`
}

func (m *Digest) Reset()         { *m = Digest{} }
func (m *Digest) String() string { return proto.CompactTextString(m) }
func (*Digest) ProtoMessage()    {}

func (m *Digest) GetD0() uint64 {
	if m != nil {
		return m.D0
	}
	return 0
}

func (m *Digest) GetD1() uint64 {
	if m != nil {
		return m.D1
	}
	return 0
}

func (m *Digest) GetD2() uint64 {
	if m != nil {
		return m.D2
	}
	return 0
}

func (m *Digest) GetD3() uint64 {
	if m != nil {
		return m.D3
	}
	return 0
}

// MerklePath is a sibling path from a leaf to the root of a Merkle tree.
type MerklePath struct {
	Siblings []*Digest `protobuf:"bytes,1,rep,name=siblings" json:"siblings,omitempty"`
}

func (m *MerklePath) Reset()         { *m = MerklePath{} }
func (m *MerklePath) String() string { return proto.CompactTextString(m) }
func (*MerklePath) ProtoMessage()    {}

func (m *MerklePath) GetSiblings() []*Digest {
	if m != nil {
		return m.Siblings
	}
	return nil
}
