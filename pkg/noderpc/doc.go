/*
Package noderpc contains the wire-level binding of the Miden node's gRPC API.

The message types mirror the node's protobuf schema (see the proto directory at
the root of this repository) and are written by hand in the golang/protobuf
struct-tag style rather than generated, so the repository builds without a
protoc toolchain. They carry no behavior of their own; ApiClient is a thin stub
over grpc.ClientConn.

Most callers should use the rpcclient package instead, which accepts domain
types from pkg/types and performs the wire conversions. The types here are
exported for callers that want to talk to the node in raw wire terms.
*/
package noderpc
