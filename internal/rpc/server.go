// Package rpc exposes the gRPC ingress used by the co-located ingestion
// service. The caller resolves the destination; this adapter only formats
// and delivers.
package rpc

import (
	"context"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/user/githookbot/internal/relay"
	"github.com/user/githookbot/internal/rpc/hookpb"
	"github.com/user/githookbot/pkg/logger"
)

// Server receives pre-routed webhook events over gRPC. The contract is
// best-effort: delivery failures are logged and acknowledged, not
// propagated to the caller. Only a missing delivery service is an RPC
// error. No authentication happens here; the endpoint is reachable only
// from the trusted ingestion process.
type Server struct {
	hookpb.UnimplementedSendMessageServer

	svc            *relay.Service
	deliverTimeout time.Duration
	grpcServer     *grpc.Server
}

// NewServer creates the gRPC ingress adapter. svc may be nil when no
// delivery backend is configured; SendMessage then fails with an internal
// error status.
func NewServer(svc *relay.Service, deliverTimeout time.Duration) *Server {
	s := &Server{
		svc:            svc,
		deliverTimeout: deliverTimeout,
		grpcServer:     grpc.NewServer(),
	}
	hookpb.RegisterSendMessageServer(s.grpcServer, s)
	return s
}

// SendMessage formats and delivers one pre-routed event. A zero thread_id
// means the top-level chat. event_type, author_url and repo_url are
// accepted for forward compatibility and currently ignored.
func (s *Server) SendMessage(ctx context.Context, in *hookpb.Message) (*emptypb.Empty, error) {
	if s.svc == nil {
		logger.Error().Msg("gRPC message received but no delivery service is configured")
		return &emptypb.Empty{}, status.Error(codes.Internal, "delivery service is not configured")
	}

	logger.Info().
		Str("event_type", in.GetEventType()).
		Str("author", in.GetAuthor()).
		Int64("chat_id", in.GetChatId()).
		Msg("Received gRPC message")

	dest := relay.Destination{ChatID: in.GetChatId(), ThreadID: in.GetThreadId()}

	// Delivery outlives the RPC: the caller already got its ack semantics,
	// a disconnect must not abort the send.
	deliverCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.deliverTimeout)
	defer cancel()

	if err := s.svc.Relay(deliverCtx, dest, in.GetAuthor(), "", in.GetComment(), in.GetRepoName()); err != nil {
		logger.Error().Err(err).Int64("chat_id", in.GetChatId()).Msg("Failed to deliver gRPC message")
	}

	return &emptypb.Empty{}, nil
}

// Start begins serving on the given address. Serve errors after startup
// are logged, not returned.
func (s *Server) Start(address string) error {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}

	go func() {
		logger.Info().Str("address", address).Msg("Starting gRPC server")
		if err := s.grpcServer.Serve(lis); err != nil {
			logger.Error().Err(err).Msg("gRPC server error")
		}
	}()
	return nil
}

// Stop gracefully stops the server, letting in-flight calls finish.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}
