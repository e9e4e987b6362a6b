package noderpc

import (
	"github.com/golang/protobuf/proto"
)

// NoteId wraps a note's commitment digest.
type NoteId struct {
	Id *Digest `protobuf:"bytes,1,opt,name=id" json:"id,omitempty"`
}

func (m *NoteId) Reset()         { *m = NoteId{} }
func (m *NoteId) String() string { return proto.CompactTextString(m) }
func (*NoteId) ProtoMessage()    {}

func (m *NoteId) GetId() *Digest {
	if m != nil {
		return m.Id
	}
	return nil
}

// NoteIdList is the request of the GetNotesById call.
type NoteIdList struct {
	Ids []*NoteId `protobuf:"bytes,1,rep,name=ids" json:"ids,omitempty"`
}

func (m *NoteIdList) Reset()         { *m = NoteIdList{} }
func (m *NoteIdList) String() string { return proto.CompactTextString(m) }
func (*NoteIdList) ProtoMessage()    {}

func (m *NoteIdList) GetIds() []*NoteId {
	if m != nil {
		return m.Ids
	}
	return nil
}

// NoteMetadata carries the sender, tag and type of a committed note.
type NoteMetadata struct {
	Sender   *AccountId `protobuf:"bytes,1,opt,name=sender" json:"sender,omitempty"`
	NoteType uint32     `protobuf:"varint,2,opt,name=note_type,json=noteType,proto3" json:"note_type,omitempty"`
	Tag      uint32     `protobuf:"varint,3,opt,name=tag,proto3" json:"tag,omitempty"`
	Aux      uint64     `protobuf:"fixed64,4,opt,name=aux,proto3" json:"aux,omitempty"`
}

func (m *NoteMetadata) Reset()         { *m = NoteMetadata{} }
func (m *NoteMetadata) String() string { return proto.CompactTextString(m) }
func (*NoteMetadata) ProtoMessage()    {}

func (m *NoteMetadata) GetSender() *AccountId {
	if m != nil {
		return m.Sender
	}
	return nil
}

func (m *NoteMetadata) GetNoteType() uint32 {
	if m != nil {
		return m.NoteType
	}
	return 0
}

func (m *NoteMetadata) GetTag() uint32 {
	if m != nil {
		return m.Tag
	}
	return 0
}

func (m *NoteMetadata) GetAux() uint64 {
	if m != nil {
		return m.Aux
	}
	return 0
}

// CommittedNote is a note recorded in a block, together with its inclusion
// path. Details holds the serialized note payload and is only present for
// public notes.
type CommittedNote struct {
	BlockNum         uint32        `protobuf:"varint,1,opt,name=block_num,json=blockNum,proto3" json:"block_num,omitempty"`
	NoteIndexInBlock uint32        `protobuf:"varint,2,opt,name=note_index_in_block,json=noteIndexInBlock,proto3" json:"note_index_in_block,omitempty"`
	NoteId           *NoteId       `protobuf:"bytes,3,opt,name=note_id,json=noteId" json:"note_id,omitempty"`
	Metadata         *NoteMetadata `protobuf:"bytes,4,opt,name=metadata" json:"metadata,omitempty"`
	InclusionPath    *MerklePath   `protobuf:"bytes,5,opt,name=inclusion_path,json=inclusionPath" json:"inclusion_path,omitempty"`
	Details          []byte        `protobuf:"bytes,6,opt,name=details" json:"details,omitempty"`
}

func (m *CommittedNote) Reset()         { *m = CommittedNote{} }
func (m *CommittedNote) String() string { return proto.CompactTextString(m) }
func (*CommittedNote) ProtoMessage()    {}

func (m *CommittedNote) GetBlockNum() uint32 {
	if m != nil {
		return m.BlockNum
	}
	return 0
}

func (m *CommittedNote) GetNoteIndexInBlock() uint32 {
	if m != nil {
		return m.NoteIndexInBlock
	}
	return 0
}

func (m *CommittedNote) GetNoteId() *NoteId {
	if m != nil {
		return m.NoteId
	}
	return nil
}

func (m *CommittedNote) GetMetadata() *NoteMetadata {
	if m != nil {
		return m.Metadata
	}
	return nil
}

func (m *CommittedNote) GetInclusionPath() *MerklePath {
	if m != nil {
		return m.InclusionPath
	}
	return nil
}

func (m *CommittedNote) GetDetails() []byte {
	if m != nil {
		return m.Details
	}
	return nil
}

// CommittedNoteList is the response of the GetNotesById call.
type CommittedNoteList struct {
	Notes []*CommittedNote `protobuf:"bytes,1,rep,name=notes" json:"notes,omitempty"`
}

func (m *CommittedNoteList) Reset()         { *m = CommittedNoteList{} }
func (m *CommittedNoteList) String() string { return proto.CompactTextString(m) }
func (*CommittedNoteList) ProtoMessage()    {}

func (m *CommittedNoteList) GetNotes() []*CommittedNote {
	if m != nil {
		return m.Notes
	}
	return nil
}
