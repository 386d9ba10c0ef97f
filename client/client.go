// Package client is a thin gRPC client for the NetEnforcer service, used by
// the upstream controller.
package client

import (
	"context"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/netqos/netenforcer/server/pb"
)

// Client talks to one enforcement daemon.
type Client struct {
	conn *grpc.ClientConn
	rpc  pb.NetEnforcerClient
}

// New creates a client for the daemon at target, e.g. "host:7777". The
// connection is plaintext; the control plane runs on a trusted network.
func New(target string) (*Client, error) {
	conn, err := grpc.NewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", target, err)
	}
	return &Client{conn: conn, rpc: pb.NewNetEnforcerClient(conn)}, nil
}

// UpdateClients applies a batch of policy updates.
func (c *Client) UpdateClients(ctx context.Context, updates []*pb.ClientUpdate) error {
	_, err := c.rpc.UpdateClients(ctx, &pb.UpdateClientsRequest{Updates: updates})
	return err
}

// RemoveClients removes a batch of clients.
func (c *Client) RemoveClients(ctx context.Context, keys []*pb.ClientKey) error {
	_, err := c.rpc.RemoveClients(ctx, &pb.RemoveClientsRequest{Clients: keys})
	return err
}

// GetOccupancy reports one client's occupancy since the previous query.
func (c *Client) GetOccupancy(ctx context.Context, key *pb.ClientKey) (float64, error) {
	res, err := c.rpc.GetOccupancy(ctx, &pb.GetOccupancyRequest{Key: key})
	if err != nil {
		return 0, err
	}
	return res.GetOccupancy(), nil
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
