package grpc

import (
	"context"
	"fmt"

	jsoniter "github.com/json-iterator/go"
	"github.com/m-zajac/siteupdates/internal/api/response"
	"github.com/m-zajac/siteupdates/internal/app"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AppService can return recent updates of configured repositories.
type AppService interface {
	Updates(ctx context.Context) *app.Updates
}

// Service implements UpdatesServer, acting as a direct proxy to AppService.
type Service struct {
	appService AppService
}

var _ UpdatesServer = &Service{}

// NewService returns new Service instance.
func NewService(appService AppService) *Service {
	return &Service{
		appService: appService,
	}
}

// Latest calls service and returns updates document as a struct.
// The struct has the same shape as http api json response.
func (s *Service) Latest(ctx context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	updates := s.appService.Updates(ctx)
	if updates == nil {
		return nil, status.Error(codes.Internal, "service.Updates: no updates")
	}

	reply, err := EncodeUpdates(response.NewUpdates(*updates))
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encoding reply: %v", err)
	}

	return reply, nil
}

// EncodeUpdates converts updates document to protobuf struct.
func EncodeUpdates(u response.Updates) (*structpb.Struct, error) {
	data, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("marshalling json: %w", err)
	}

	var st structpb.Struct
	if err := protojson.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("unmarshalling struct: %w", err)
	}

	return &st, nil
}

// DecodeUpdates converts protobuf struct back to updates document.
func DecodeUpdates(st *structpb.Struct) (*response.Updates, error) {
	data, err := protojson.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshalling struct: %w", err)
	}

	var u response.Updates
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("unmarshalling json: %w", err)
	}
	if _, err := response.ParseTime(u.Updated); err != nil {
		return nil, fmt.Errorf("invalid updated field: %w", err)
	}

	return &u, nil
}
