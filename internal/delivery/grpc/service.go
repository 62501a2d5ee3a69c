package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	ServiceName    = "girocode.v1.GiroCode"
	GenerateMethod = "/" + ServiceName + "/Generate"

	// CodeIDHeader is the response header carrying the generated code id.
	CodeIDHeader = "girocode-id"
)

// GiroCodeServer takes the payment fields as a Struct and answers with the PNG bytes.
type GiroCodeServer interface {
	Generate(ctx context.Context, req *structpb.Struct) (*wrapperspb.BytesValue, error)
}

// ServiceDesc is declared without a .proto file; no file descriptor is registered,
// so server reflection cannot describe this service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*GiroCodeServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: generateHandler},
	},
	Streams: []grpc.StreamDesc{},
}

func Register(s grpc.ServiceRegistrar, srv GiroCodeServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func generateHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GiroCodeServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: GenerateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(GiroCodeServer).Generate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}
