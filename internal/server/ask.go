package server

import (
	"context"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	instsyspb "github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/proto/instsys/v1"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/query"
)

type AskServer struct {
	instsyspb.UnimplementedAskServiceServer
	router *query.Router
	logger *slog.Logger
}

func NewAskServer(router *query.Router, logger *slog.Logger) *AskServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &AskServer{router: router, logger: logger}
}

func (s *AskServer) Ask(ctx context.Context, req *instsyspb.AskRequest) (*instsyspb.AskResponse, error) {
	question := strings.TrimSpace(req.GetQuestion())
	if question == "" {
		return nil, status.Error(codes.InvalidArgument, "question is required")
	}

	ans, err := s.router.Ask(ctx, question)
	if err != nil {
		s.logger.Error("ask.failed", "question", question, "err", err)
		return nil, status.Errorf(codes.Internal, "ask: %v", err)
	}

	return &instsyspb.AskResponse{
		Intent:  string(ans.Intent),
		Subject: ans.Subject,
		Text:    ans.Text,
		Matched: ans.Matched,
	}, nil
}
