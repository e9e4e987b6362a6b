package noderpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Full method names of the rpc.Api service.
const (
	ApiStatusMethod                  = "/rpc.Api/Status"
	ApiGetBlockHeaderByNumberMethod  = "/rpc.Api/GetBlockHeaderByNumber"
	ApiSubmitProvenTransactionMethod = "/rpc.Api/SubmitProvenTransaction"
	ApiSubmitProvenBatchMethod       = "/rpc.Api/SubmitProvenBatch"
	ApiSyncStateMethod               = "/rpc.Api/SyncState"
	ApiCheckNullifiersMethod         = "/rpc.Api/CheckNullifiers"
	ApiCheckNullifiersByPrefixMethod = "/rpc.Api/CheckNullifiersByPrefix"
	ApiGetNotesByIdMethod            = "/rpc.Api/GetNotesById"
	ApiGetAccountDetailsMethod       = "/rpc.Api/GetAccountDetails"
	ApiGetAccountProofsMethod        = "/rpc.Api/GetAccountProofs"
	ApiGetBlockByNumberMethod        = "/rpc.Api/GetBlockByNumber"
	ApiSyncAccountVaultMethod        = "/rpc.Api/SyncAccountVault"
	ApiSyncNotesMethod               = "/rpc.Api/SyncNotes"
	ApiSyncStorageMapsMethod         = "/rpc.Api/SyncStorageMaps"
)

// ApiClient is the client stub of the node's rpc.Api service. All methods are
// unary; concurrent calls multiplex over the one underlying connection.
type ApiClient interface {
	Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*RpcStatus, error)
	GetBlockHeaderByNumber(ctx context.Context, in *BlockHeaderByNumberRequest, opts ...grpc.CallOption) (*BlockHeaderByNumberResponse, error)
	SubmitProvenTransaction(ctx context.Context, in *ProvenTransaction, opts ...grpc.CallOption) (*SubmitProvenTransactionResponse, error)
	SubmitProvenBatch(ctx context.Context, in *ProvenTransactionBatch, opts ...grpc.CallOption) (*SubmitProvenBatchResponse, error)
	SyncState(ctx context.Context, in *SyncStateRequest, opts ...grpc.CallOption) (*SyncStateResponse, error)
	CheckNullifiers(ctx context.Context, in *NullifierList, opts ...grpc.CallOption) (*CheckNullifiersResponse, error)
	CheckNullifiersByPrefix(ctx context.Context, in *CheckNullifiersByPrefixRequest, opts ...grpc.CallOption) (*CheckNullifiersByPrefixResponse, error)
	GetNotesById(ctx context.Context, in *NoteIdList, opts ...grpc.CallOption) (*CommittedNoteList, error)
	GetAccountDetails(ctx context.Context, in *AccountId, opts ...grpc.CallOption) (*AccountDetails, error)
	GetAccountProofs(ctx context.Context, in *AccountProofsRequest, opts ...grpc.CallOption) (*AccountProofs, error)
	GetBlockByNumber(ctx context.Context, in *BlockNumber, opts ...grpc.CallOption) (*MaybeBlock, error)
	SyncAccountVault(ctx context.Context, in *SyncAccountVaultRequest, opts ...grpc.CallOption) (*SyncAccountVaultResponse, error)
	SyncNotes(ctx context.Context, in *SyncNotesRequest, opts ...grpc.CallOption) (*SyncNotesResponse, error)
	SyncStorageMaps(ctx context.Context, in *SyncStorageMapsRequest, opts ...grpc.CallOption) (*SyncStorageMapsResponse, error)
}

type apiClient struct {
	cc grpc.ClientConnInterface
}

// NewApiClient creates an ApiClient over an established connection.
func NewApiClient(cc grpc.ClientConnInterface) ApiClient {
	return &apiClient{cc}
}

func (c *apiClient) Status(ctx context.Context, in *StatusRequest, opts ...grpc.CallOption) (*RpcStatus, error) {
	out := new(RpcStatus)
	err := c.cc.Invoke(ctx, ApiStatusMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) GetBlockHeaderByNumber(ctx context.Context, in *BlockHeaderByNumberRequest, opts ...grpc.CallOption) (*BlockHeaderByNumberResponse, error) {
	out := new(BlockHeaderByNumberResponse)
	err := c.cc.Invoke(ctx, ApiGetBlockHeaderByNumberMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) SubmitProvenTransaction(ctx context.Context, in *ProvenTransaction, opts ...grpc.CallOption) (*SubmitProvenTransactionResponse, error) {
	out := new(SubmitProvenTransactionResponse)
	err := c.cc.Invoke(ctx, ApiSubmitProvenTransactionMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) SubmitProvenBatch(ctx context.Context, in *ProvenTransactionBatch, opts ...grpc.CallOption) (*SubmitProvenBatchResponse, error) {
	out := new(SubmitProvenBatchResponse)
	err := c.cc.Invoke(ctx, ApiSubmitProvenBatchMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) SyncState(ctx context.Context, in *SyncStateRequest, opts ...grpc.CallOption) (*SyncStateResponse, error) {
	out := new(SyncStateResponse)
	err := c.cc.Invoke(ctx, ApiSyncStateMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) CheckNullifiers(ctx context.Context, in *NullifierList, opts ...grpc.CallOption) (*CheckNullifiersResponse, error) {
	out := new(CheckNullifiersResponse)
	err := c.cc.Invoke(ctx, ApiCheckNullifiersMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) CheckNullifiersByPrefix(ctx context.Context, in *CheckNullifiersByPrefixRequest, opts ...grpc.CallOption) (*CheckNullifiersByPrefixResponse, error) {
	out := new(CheckNullifiersByPrefixResponse)
	err := c.cc.Invoke(ctx, ApiCheckNullifiersByPrefixMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) GetNotesById(ctx context.Context, in *NoteIdList, opts ...grpc.CallOption) (*CommittedNoteList, error) {
	out := new(CommittedNoteList)
	err := c.cc.Invoke(ctx, ApiGetNotesByIdMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) GetAccountDetails(ctx context.Context, in *AccountId, opts ...grpc.CallOption) (*AccountDetails, error) {
	out := new(AccountDetails)
	err := c.cc.Invoke(ctx, ApiGetAccountDetailsMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) GetAccountProofs(ctx context.Context, in *AccountProofsRequest, opts ...grpc.CallOption) (*AccountProofs, error) {
	out := new(AccountProofs)
	err := c.cc.Invoke(ctx, ApiGetAccountProofsMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) GetBlockByNumber(ctx context.Context, in *BlockNumber, opts ...grpc.CallOption) (*MaybeBlock, error) {
	out := new(MaybeBlock)
	err := c.cc.Invoke(ctx, ApiGetBlockByNumberMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) SyncAccountVault(ctx context.Context, in *SyncAccountVaultRequest, opts ...grpc.CallOption) (*SyncAccountVaultResponse, error) {
	out := new(SyncAccountVaultResponse)
	err := c.cc.Invoke(ctx, ApiSyncAccountVaultMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) SyncNotes(ctx context.Context, in *SyncNotesRequest, opts ...grpc.CallOption) (*SyncNotesResponse, error) {
	out := new(SyncNotesResponse)
	err := c.cc.Invoke(ctx, ApiSyncNotesMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *apiClient) SyncStorageMaps(ctx context.Context, in *SyncStorageMapsRequest, opts ...grpc.CallOption) (*SyncStorageMapsResponse, error) {
	out := new(SyncStorageMapsResponse)
	err := c.cc.Invoke(ctx, ApiSyncStorageMapsMethod, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApiServer is the server side of the rpc.Api service. It exists so tests and
// local tooling can stand in for a node; the real service is implemented by
// the node itself.
type ApiServer interface {
	Status(context.Context, *StatusRequest) (*RpcStatus, error)
	GetBlockHeaderByNumber(context.Context, *BlockHeaderByNumberRequest) (*BlockHeaderByNumberResponse, error)
	SubmitProvenTransaction(context.Context, *ProvenTransaction) (*SubmitProvenTransactionResponse, error)
	SubmitProvenBatch(context.Context, *ProvenTransactionBatch) (*SubmitProvenBatchResponse, error)
	SyncState(context.Context, *SyncStateRequest) (*SyncStateResponse, error)
	CheckNullifiers(context.Context, *NullifierList) (*CheckNullifiersResponse, error)
	CheckNullifiersByPrefix(context.Context, *CheckNullifiersByPrefixRequest) (*CheckNullifiersByPrefixResponse, error)
	GetNotesById(context.Context, *NoteIdList) (*CommittedNoteList, error)
	GetAccountDetails(context.Context, *AccountId) (*AccountDetails, error)
	GetAccountProofs(context.Context, *AccountProofsRequest) (*AccountProofs, error)
	GetBlockByNumber(context.Context, *BlockNumber) (*MaybeBlock, error)
	SyncAccountVault(context.Context, *SyncAccountVaultRequest) (*SyncAccountVaultResponse, error)
	SyncNotes(context.Context, *SyncNotesRequest) (*SyncNotesResponse, error)
	SyncStorageMaps(context.Context, *SyncStorageMapsRequest) (*SyncStorageMapsResponse, error)
}

// UnimplementedApiServer returns Unimplemented for every method. Embed it to
// implement only the methods a test needs.
type UnimplementedApiServer struct{}

func (UnimplementedApiServer) Status(context.Context, *StatusRequest) (*RpcStatus, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Status not implemented")
}

func (UnimplementedApiServer) GetBlockHeaderByNumber(context.Context, *BlockHeaderByNumberRequest) (*BlockHeaderByNumberResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBlockHeaderByNumber not implemented")
}

func (UnimplementedApiServer) SubmitProvenTransaction(context.Context, *ProvenTransaction) (*SubmitProvenTransactionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitProvenTransaction not implemented")
}

func (UnimplementedApiServer) SubmitProvenBatch(context.Context, *ProvenTransactionBatch) (*SubmitProvenBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitProvenBatch not implemented")
}

func (UnimplementedApiServer) SyncState(context.Context, *SyncStateRequest) (*SyncStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SyncState not implemented")
}

func (UnimplementedApiServer) CheckNullifiers(context.Context, *NullifierList) (*CheckNullifiersResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckNullifiers not implemented")
}

func (UnimplementedApiServer) CheckNullifiersByPrefix(context.Context, *CheckNullifiersByPrefixRequest) (*CheckNullifiersByPrefixResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckNullifiersByPrefix not implemented")
}

func (UnimplementedApiServer) GetNotesById(context.Context, *NoteIdList) (*CommittedNoteList, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetNotesById not implemented")
}

func (UnimplementedApiServer) GetAccountDetails(context.Context, *AccountId) (*AccountDetails, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAccountDetails not implemented")
}

func (UnimplementedApiServer) GetAccountProofs(context.Context, *AccountProofsRequest) (*AccountProofs, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAccountProofs not implemented")
}

func (UnimplementedApiServer) GetBlockByNumber(context.Context, *BlockNumber) (*MaybeBlock, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBlockByNumber not implemented")
}

func (UnimplementedApiServer) SyncAccountVault(context.Context, *SyncAccountVaultRequest) (*SyncAccountVaultResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SyncAccountVault not implemented")
}

func (UnimplementedApiServer) SyncNotes(context.Context, *SyncNotesRequest) (*SyncNotesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SyncNotes not implemented")
}

func (UnimplementedApiServer) SyncStorageMaps(context.Context, *SyncStorageMapsRequest) (*SyncStorageMapsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SyncStorageMaps not implemented")
}

// RegisterApiServer registers srv on s under the rpc.Api service name.
func RegisterApiServer(s grpc.ServiceRegistrar, srv ApiServer) {
	s.RegisterService(&ApiServiceDesc, srv)
}

func statusHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).Status(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiStatusMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).Status(ctx, req.(*StatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getBlockHeaderByNumberHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BlockHeaderByNumberRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).GetBlockHeaderByNumber(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiGetBlockHeaderByNumberMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).GetBlockHeaderByNumber(ctx, req.(*BlockHeaderByNumberRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func submitProvenTransactionHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProvenTransaction)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).SubmitProvenTransaction(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiSubmitProvenTransactionMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).SubmitProvenTransaction(ctx, req.(*ProvenTransaction))
	}
	return interceptor(ctx, in, info, handler)
}

func submitProvenBatchHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProvenTransactionBatch)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).SubmitProvenBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiSubmitProvenBatchMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).SubmitProvenBatch(ctx, req.(*ProvenTransactionBatch))
	}
	return interceptor(ctx, in, info, handler)
}

func syncStateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SyncStateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).SyncState(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiSyncStateMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).SyncState(ctx, req.(*SyncStateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func checkNullifiersHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NullifierList)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).CheckNullifiers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiCheckNullifiersMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).CheckNullifiers(ctx, req.(*NullifierList))
	}
	return interceptor(ctx, in, info, handler)
}

func checkNullifiersByPrefixHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckNullifiersByPrefixRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).CheckNullifiersByPrefix(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiCheckNullifiersByPrefixMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).CheckNullifiersByPrefix(ctx, req.(*CheckNullifiersByPrefixRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getNotesByIdHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(NoteIdList)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).GetNotesById(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiGetNotesByIdMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).GetNotesById(ctx, req.(*NoteIdList))
	}
	return interceptor(ctx, in, info, handler)
}

func getAccountDetailsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AccountId)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).GetAccountDetails(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiGetAccountDetailsMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).GetAccountDetails(ctx, req.(*AccountId))
	}
	return interceptor(ctx, in, info, handler)
}

func getAccountProofsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AccountProofsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).GetAccountProofs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiGetAccountProofsMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).GetAccountProofs(ctx, req.(*AccountProofsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func getBlockByNumberHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BlockNumber)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).GetBlockByNumber(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiGetBlockByNumberMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).GetBlockByNumber(ctx, req.(*BlockNumber))
	}
	return interceptor(ctx, in, info, handler)
}

func syncAccountVaultHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SyncAccountVaultRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).SyncAccountVault(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiSyncAccountVaultMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).SyncAccountVault(ctx, req.(*SyncAccountVaultRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func syncNotesHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SyncNotesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).SyncNotes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiSyncNotesMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).SyncNotes(ctx, req.(*SyncNotesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func syncStorageMapsHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SyncStorageMapsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ApiServer).SyncStorageMaps(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ApiSyncStorageMapsMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ApiServer).SyncStorageMaps(ctx, req.(*SyncStorageMapsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ApiServiceDesc is the grpc.ServiceDesc of the rpc.Api service.
var ApiServiceDesc = grpc.ServiceDesc{
	ServiceName: "rpc.Api",
	HandlerType: (*ApiServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Status", Handler: statusHandler},
		{MethodName: "GetBlockHeaderByNumber", Handler: getBlockHeaderByNumberHandler},
		{MethodName: "SubmitProvenTransaction", Handler: submitProvenTransactionHandler},
		{MethodName: "SubmitProvenBatch", Handler: submitProvenBatchHandler},
		{MethodName: "SyncState", Handler: syncStateHandler},
		{MethodName: "CheckNullifiers", Handler: checkNullifiersHandler},
		{MethodName: "CheckNullifiersByPrefix", Handler: checkNullifiersByPrefixHandler},
		{MethodName: "GetNotesById", Handler: getNotesByIdHandler},
		{MethodName: "GetAccountDetails", Handler: getAccountDetailsHandler},
		{MethodName: "GetAccountProofs", Handler: getAccountProofsHandler},
		{MethodName: "GetBlockByNumber", Handler: getBlockByNumberHandler},
		{MethodName: "SyncAccountVault", Handler: syncAccountVaultHandler},
		{MethodName: "SyncNotes", Handler: syncNotesHandler},
		{MethodName: "SyncStorageMaps", Handler: syncStorageMapsHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "rpc.proto",
}
