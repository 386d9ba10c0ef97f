// Package server implements the NetEnforcer gRPC service. It validates each
// batch entry independently, skipping invalid entries with a warning, and
// dispatches valid ones into the registry.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"google.golang.org/grpc"

	"github.com/netqos/netenforcer"
	"github.com/netqos/netenforcer/config"
	"github.com/netqos/netenforcer/enforcer"
	pb "github.com/netqos/netenforcer/server/pb"
)

// DefaultListenAddress is the TCP address served when none is configured.
const DefaultListenAddress = ":7777"

// Server is the request handler for the upstream controller.
type Server struct {
	pb.UnimplementedNetEnforcerServer

	cfg      config.Config
	registry *enforcer.Registry
	logger   *slog.Logger

	// mu serializes request processing. The registry is single threaded by
	// contract; gRPC is not, so the boundary takes the lock.
	mu sync.Mutex
}

// New creates a Server around a registry.
func New(cfg config.Config, registry *enforcer.Registry, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		cfg:      cfg,
		registry: registry,
		logger:   logger.With("component", "server"),
	}
}

// UpdateClients applies a batch of policy updates. Each entry is validated
// on its own; a bad entry is logged and skipped and the batch continues.
func (s *Server) UpdateClients(ctx context.Context, req *pb.UpdateClientsRequest) (*pb.UpdateClientsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range req.GetUpdates() {
		key, chain, err := s.validate(u)
		if err != nil {
			s.logger.Warn("skipping client update", "error", err)
			continue
		}
		s.registry.Apply(ctx, key, u.GetPriority(), chain)
	}
	return &pb.UpdateClientsResponse{}, nil
}

// RemoveClients removes a batch of clients: each removal is an update to the
// sentinel priority with an empty chain.
func (s *Server) RemoveClients(ctx context.Context, req *pb.RemoveClientsRequest) (*pb.RemoveClientsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range req.GetClients() {
		key := netenforcer.ClientKey{DstAddr: c.GetDstAddr(), SrcAddr: c.GetSrcAddr()}
		s.registry.Apply(ctx, key, s.cfg.Sentinel(), nil)
	}
	return &pb.RemoveClientsResponse{}, nil
}

// GetOccupancy reports one client's occupancy since the previous query.
func (s *Server) GetOccupancy(ctx context.Context, req *pb.GetOccupancyRequest) (*pb.GetOccupancyResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := netenforcer.ClientKey{DstAddr: req.GetKey().GetDstAddr(), SrcAddr: req.GetKey().GetSrcAddr()}
	return &pb.GetOccupancyResponse{Occupancy: s.registry.Occupancy(ctx, key)}, nil
}

// validate checks one update entry against the configured bounds and
// converts its wire form into domain values.
func (s *Server) validate(u *pb.ClientUpdate) (netenforcer.ClientKey, netenforcer.RateChain, error) {
	var key netenforcer.ClientKey
	k := u.GetKey()
	if k == nil {
		return key, nil, fmt.Errorf("client update without a key")
	}
	key = netenforcer.ClientKey{DstAddr: k.GetDstAddr(), SrcAddr: k.GetSrcAddr()}
	if u.GetPriority() >= s.cfg.NumPriorities {
		return key, nil, netenforcer.ErrBadPriority{Priority: u.GetPriority(), Limit: s.cfg.NumPriorities}
	}
	rates, bursts := u.GetRateLimitRates(), u.GetRateLimitBursts()
	if len(rates) != len(bursts) {
		return key, nil, netenforcer.ErrChainMismatch{Rates: len(rates), Bursts: len(bursts)}
	}
	if len(rates) > s.cfg.MaxChainLen() {
		return key, nil, netenforcer.ErrChainTooLong{Len: len(rates), Limit: s.cfg.MaxChainLen()}
	}
	chain := make(netenforcer.RateChain, len(rates))
	for i := range rates {
		chain[i] = netenforcer.RateLimit{Rate: rates[i], Burst: bursts[i]}
	}
	return key, chain, nil
}

// Serve listens on addr and serves the NetEnforcer service until ctx is
// cancelled, then stops gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultListenAddress
	}
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	grpcServer := grpc.NewServer()
	pb.RegisterNetEnforcerServer(grpcServer, s)
	go func() {
		<-ctx.Done()
		grpcServer.GracefulStop()
	}()
	s.logger.Info("serving", "addr", lis.Addr().String())
	return grpcServer.Serve(lis)
}
