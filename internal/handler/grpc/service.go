package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-ads-board/models"
)

const (
	ServiceName = "adsboard.v1.RPC"

	// CallMethod is the full method name of the only facade call.
	CallMethod = "/" + ServiceName + "/Call"
)

// RPCServer is the server side of the facade service.
type RPCServer interface {
	Call(ctx context.Context, request *models.RPCRequest) (*models.RPCResponse, error)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*RPCServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Call", Handler: callHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "adsboard/v1/rpc",
}

func callHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(models.RPCRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RPCServer).Call(ctx, in)
	}

	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: CallMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RPCServer).Call(ctx, req.(*models.RPCRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// RegisterRPCServer attaches srv to a gRPC server.
func RegisterRPCServer(registrar grpc.ServiceRegistrar, srv RPCServer) {
	registrar.RegisterService(&serviceDesc, srv)
}

// Invoke performs one facade call over conn with the JSON codec.
func Invoke(ctx context.Context, conn grpc.ClientConnInterface, request *models.RPCRequest, opts ...grpc.CallOption) (*models.RPCResponse, error) {
	out := new(models.RPCResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := conn.Invoke(ctx, CallMethod, request, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
