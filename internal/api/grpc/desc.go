package grpc

import (
	"context"

	grpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// Service definition is declared by hand. Request and reply are protobuf well known types,
// so there is nothing to generate:
//
//	service Updates {
//	  rpc Latest(google.protobuf.Empty) returns (google.protobuf.Struct);
//	}
const (
	serviceName      = "siteupdates.Updates"
	latestFullMethod = "/" + serviceName + "/Latest"
)

// UpdatesServer is the server API for Updates service.
type UpdatesServer interface {
	Latest(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// RegisterUpdatesServer registers Updates service implementation.
func RegisterUpdatesServer(s grpc.ServiceRegistrar, srv UpdatesServer) {
	s.RegisterService(&updatesServiceDesc, srv)
}

func latestHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UpdatesServer).Latest(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: latestFullMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UpdatesServer).Latest(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var updatesServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*UpdatesServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Latest",
			Handler:    latestHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "siteupdates.proto",
}

// UpdatesClient is the client API for Updates service.
type UpdatesClient struct {
	cc grpc.ClientConnInterface
}

// NewUpdatesClient creates new UpdatesClient instance.
func NewUpdatesClient(cc grpc.ClientConnInterface) *UpdatesClient {
	return &UpdatesClient{cc: cc}
}

// Latest returns updates document collected by the server.
func (c *UpdatesClient) Latest(ctx context.Context, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, latestFullMethod, new(emptypb.Empty), out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
