// Package encounterbuilderv1alpha1 defines the EncounterBuilderService gRPC contract.
//
// Every method is unary and exchanges google.protobuf.Struct messages with snake_case
// keys. A combatant is {id, name, kind, level, collection_tag}. A snapshot is
// {allies, opponents, budgets, average_ally_level, total_xp, per_ally_xp, difficulty}
// where budgets maps each tier name to its XP threshold.
package encounterbuilderv1alpha1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name
const ServiceName = "encounterbuilder.api.v1alpha1.EncounterBuilderService"

// Full method names
const (
	EncounterBuilderService_CreateSession_FullMethodName     = "/" + ServiceName + "/CreateSession"
	EncounterBuilderService_GetSnapshot_FullMethodName       = "/" + ServiceName + "/GetSnapshot"
	EncounterBuilderService_AddAlly_FullMethodName           = "/" + ServiceName + "/AddAlly"
	EncounterBuilderService_AddOpponent_FullMethodName       = "/" + ServiceName + "/AddOpponent"
	EncounterBuilderService_DropCombatant_FullMethodName     = "/" + ServiceName + "/DropCombatant"
	EncounterBuilderService_RemoveCombatant_FullMethodName   = "/" + ServiceName + "/RemoveCombatant"
	EncounterBuilderService_ClearRosters_FullMethodName      = "/" + ServiceName + "/ClearRosters"
	EncounterBuilderService_EndSession_FullMethodName        = "/" + ServiceName + "/EndSession"
	EncounterBuilderService_RegisterCombatant_FullMethodName = "/" + ServiceName + "/RegisterCombatant"
	EncounterBuilderService_ListCombatants_FullMethodName    = "/" + ServiceName + "/ListCombatants"
)

// EncounterBuilderServiceServer is the server API for EncounterBuilderService
type EncounterBuilderServiceServer interface {
	// CreateSession opens a session. Request: {}. Response: {session_id, snapshot}
	CreateSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// GetSnapshot reads a session. Request: {session_id}. Response: {snapshot}
	GetSnapshot(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// AddAlly adds an ally. Request: {session_id, combatant_id, collection_tag?}. Response: {combatant, snapshot}
	AddAlly(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// AddOpponent offers an opponent. Request: {session_id, combatant_id, collection_tag?}. Response: {combatant, admitted, snapshot}
	AddOpponent(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// DropCombatant applies a drop payload. Request: {session_id, side, payload}. Response: {combatant, admitted, snapshot}
	DropCombatant(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// RemoveCombatant removes a roster entry. Request: {session_id, side, combatant_id | name}. Response: {removed, snapshot}
	RemoveCombatant(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// ClearRosters empties both rosters. Request: {session_id}. Response: {snapshot}
	ClearRosters(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// EndSession closes a session. Request: {session_id}. Response: {}
	EndSession(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// RegisterCombatant writes the world catalog. Request: {combatant}. Response: {combatant, created}
	RegisterCombatant(context.Context, *structpb.Struct) (*structpb.Struct, error)
	// ListCombatants lists the world catalog. Request: {kind?}. Response: {combatants}
	ListCombatants(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// UnimplementedEncounterBuilderServiceServer can be embedded to have forward compatible implementations
type UnimplementedEncounterBuilderServiceServer struct{}

func (UnimplementedEncounterBuilderServiceServer) CreateSession(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateSession not implemented")
}

func (UnimplementedEncounterBuilderServiceServer) GetSnapshot(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GetSnapshot not implemented")
}

func (UnimplementedEncounterBuilderServiceServer) AddAlly(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AddAlly not implemented")
}

func (UnimplementedEncounterBuilderServiceServer) AddOpponent(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method AddOpponent not implemented")
}

func (UnimplementedEncounterBuilderServiceServer) DropCombatant(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method DropCombatant not implemented")
}

func (UnimplementedEncounterBuilderServiceServer) RemoveCombatant(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method RemoveCombatant not implemented")
}

func (UnimplementedEncounterBuilderServiceServer) ClearRosters(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ClearRosters not implemented")
}

func (UnimplementedEncounterBuilderServiceServer) EndSession(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method EndSession not implemented")
}

func (UnimplementedEncounterBuilderServiceServer) RegisterCombatant(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method RegisterCombatant not implemented")
}

func (UnimplementedEncounterBuilderServiceServer) ListCombatants(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method ListCombatants not implemented")
}

// RegisterEncounterBuilderServiceServer registers srv with the gRPC server
func RegisterEncounterBuilderServiceServer(s grpc.ServiceRegistrar, srv EncounterBuilderServiceServer) {
	s.RegisterService(&EncounterBuilderService_ServiceDesc, srv)
}

type unaryCall func(srv EncounterBuilderServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)

func unaryHandler(fullMethod string, call unaryCall) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(EncounterBuilderServiceServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(EncounterBuilderServiceServer), ctx, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// EncounterBuilderService_ServiceDesc is the grpc.ServiceDesc for EncounterBuilderService
var EncounterBuilderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*EncounterBuilderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateSession",
			Handler: unaryHandler(EncounterBuilderService_CreateSession_FullMethodName,
				func(srv EncounterBuilderServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return srv.CreateSession(ctx, in)
				}),
		},
		{
			MethodName: "GetSnapshot",
			Handler: unaryHandler(EncounterBuilderService_GetSnapshot_FullMethodName,
				func(srv EncounterBuilderServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return srv.GetSnapshot(ctx, in)
				}),
		},
		{
			MethodName: "AddAlly",
			Handler: unaryHandler(EncounterBuilderService_AddAlly_FullMethodName,
				func(srv EncounterBuilderServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return srv.AddAlly(ctx, in)
				}),
		},
		{
			MethodName: "AddOpponent",
			Handler: unaryHandler(EncounterBuilderService_AddOpponent_FullMethodName,
				func(srv EncounterBuilderServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return srv.AddOpponent(ctx, in)
				}),
		},
		{
			MethodName: "DropCombatant",
			Handler: unaryHandler(EncounterBuilderService_DropCombatant_FullMethodName,
				func(srv EncounterBuilderServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return srv.DropCombatant(ctx, in)
				}),
		},
		{
			MethodName: "RemoveCombatant",
			Handler: unaryHandler(EncounterBuilderService_RemoveCombatant_FullMethodName,
				func(srv EncounterBuilderServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return srv.RemoveCombatant(ctx, in)
				}),
		},
		{
			MethodName: "ClearRosters",
			Handler: unaryHandler(EncounterBuilderService_ClearRosters_FullMethodName,
				func(srv EncounterBuilderServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return srv.ClearRosters(ctx, in)
				}),
		},
		{
			MethodName: "EndSession",
			Handler: unaryHandler(EncounterBuilderService_EndSession_FullMethodName,
				func(srv EncounterBuilderServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return srv.EndSession(ctx, in)
				}),
		},
		{
			MethodName: "RegisterCombatant",
			Handler: unaryHandler(EncounterBuilderService_RegisterCombatant_FullMethodName,
				func(srv EncounterBuilderServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return srv.RegisterCombatant(ctx, in)
				}),
		},
		{
			MethodName: "ListCombatants",
			Handler: unaryHandler(EncounterBuilderService_ListCombatants_FullMethodName,
				func(srv EncounterBuilderServiceServer, ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
					return srv.ListCombatants(ctx, in)
				}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "encounterbuilder/api/v1alpha1/encounter_builder.proto",
}

// EncounterBuilderServiceClient is the client API for EncounterBuilderService
type EncounterBuilderServiceClient interface {
	CreateSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	GetSnapshot(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AddAlly(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	AddOpponent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	DropCombatant(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RemoveCombatant(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ClearRosters(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	EndSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	RegisterCombatant(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
	ListCombatants(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type encounterBuilderServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewEncounterBuilderServiceClient creates a client on the given connection
func NewEncounterBuilderServiceClient(cc grpc.ClientConnInterface) EncounterBuilderServiceClient {
	return &encounterBuilderServiceClient{cc}
}

func (c *encounterBuilderServiceClient) invoke(ctx context.Context, method string, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	if in == nil {
		in = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *encounterBuilderServiceClient) CreateSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EncounterBuilderService_CreateSession_FullMethodName, in, opts...)
}

func (c *encounterBuilderServiceClient) GetSnapshot(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EncounterBuilderService_GetSnapshot_FullMethodName, in, opts...)
}

func (c *encounterBuilderServiceClient) AddAlly(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EncounterBuilderService_AddAlly_FullMethodName, in, opts...)
}

func (c *encounterBuilderServiceClient) AddOpponent(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EncounterBuilderService_AddOpponent_FullMethodName, in, opts...)
}

func (c *encounterBuilderServiceClient) DropCombatant(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EncounterBuilderService_DropCombatant_FullMethodName, in, opts...)
}

func (c *encounterBuilderServiceClient) RemoveCombatant(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EncounterBuilderService_RemoveCombatant_FullMethodName, in, opts...)
}

func (c *encounterBuilderServiceClient) ClearRosters(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EncounterBuilderService_ClearRosters_FullMethodName, in, opts...)
}

func (c *encounterBuilderServiceClient) EndSession(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EncounterBuilderService_EndSession_FullMethodName, in, opts...)
}

func (c *encounterBuilderServiceClient) RegisterCombatant(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EncounterBuilderService_RegisterCombatant_FullMethodName, in, opts...)
}

func (c *encounterBuilderServiceClient) ListCombatants(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	return c.invoke(ctx, EncounterBuilderService_ListCombatants_FullMethodName, in, opts...)
}
