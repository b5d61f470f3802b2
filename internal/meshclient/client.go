// Package meshclient acquires landmark sets from the external detection
// model. The engine treats the model as a black box that yields an ordered
// array of normalized points, or an empty result when no face is found.
package meshclient

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"facemetry/internal/capture"
	"facemetry/internal/facerr"
	"facemetry/internal/landmark"
)

// DefaultTimeout bounds one inference round trip.
const DefaultTimeout = 2 * time.Second

// Source yields the landmark set for a frame. An empty set means no face was
// found; that is a result, not an error.
type Source interface {
	Detect(ctx context.Context, frame capture.Frame) (landmark.Set, error)
}

// inferenceRequest is sent to the detection service.
type inferenceRequest struct {
	Width  int    `msgpack:"w"`
	Height int    `msgpack:"h"`
	Data   []byte `msgpack:"d"` // RGBA uint8, row-major
}

// inferencePoint mirrors one landmark on the wire.
type inferencePoint struct {
	X          float64  `msgpack:"x"`
	Y          float64  `msgpack:"y"`
	Z          *float64 `msgpack:"z"`
	Visibility *float64 `msgpack:"v"`
	Presence   *float64 `msgpack:"p"`
}

// inferenceResponse is received from the detection service.
type inferenceResponse struct {
	Points      []inferencePoint `msgpack:"points"`
	InferenceMS float64          `msgpack:"inference_ms"`
	Error       string           `msgpack:"error"`
}

// Client talks msgpack to the detection service over a unix or tcp socket,
// one connection per inference.
type Client struct {
	network string
	address string
	timeout time.Duration
}

// NewClient parses a scheme-prefixed address (unix:///run/mesh.sock or
// tcp://host:port; a bare host:port means tcp) and creates a client.
func NewClient(address string, timeout time.Duration) (*Client, error) {
	network, addr, err := splitAddress(address)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{network: network, address: addr, timeout: timeout}, nil
}

func splitAddress(address string) (network, addr string, err error) {
	switch {
	case address == "":
		return "", "", facerr.New(facerr.CodeInvalidConfig, "empty detection service address")
	case strings.HasPrefix(address, "unix://"):
		return "unix", strings.TrimPrefix(address, "unix://"), nil
	case strings.HasPrefix(address, "tcp://"):
		return "tcp", strings.TrimPrefix(address, "tcp://"), nil
	default:
		return "tcp", address, nil
	}
}

// Detect runs one inference round trip. The response must carry either no
// points or a complete mesh; any other count marks a protocol mismatch.
func (c *Client) Detect(ctx context.Context, frame capture.Frame) (landmark.Set, error) {
	dialer := net.Dialer{Timeout: c.timeout}
	conn, err := dialer.DialContext(ctx, c.network, c.address)
	if err != nil {
		return nil, facerr.Wrap(facerr.CodeDetectorUnavailable,
			fmt.Errorf("dial %s %s: %w", c.network, c.address, err))
	}
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, facerr.Wrap(facerr.CodeDetectorUnavailable, err)
	}

	req := inferenceRequest{
		Width:  frame.Width,
		Height: frame.Height,
		Data:   frame.Pix,
	}
	if err := msgpack.NewEncoder(conn).Encode(req); err != nil {
		return nil, facerr.Wrap(facerr.CodeDetectorUnavailable, fmt.Errorf("send request: %w", err))
	}

	var resp inferenceResponse
	if err := msgpack.NewDecoder(conn).Decode(&resp); err != nil {
		return nil, facerr.Wrap(facerr.CodeDetectorUnavailable, fmt.Errorf("read response: %w", err))
	}

	if resp.Error != "" {
		return nil, facerr.Newf(facerr.CodeDetectorUnavailable, "detection service: %s", resp.Error)
	}
	if len(resp.Points) == 0 {
		return nil, nil
	}
	if len(resp.Points) != landmark.MeshSize {
		return nil, facerr.Newf(facerr.CodeDetectorUnavailable,
			"detection service returned %d points, want %d or none", len(resp.Points), landmark.MeshSize)
	}

	set := make(landmark.Set, len(resp.Points))
	for i, p := range resp.Points {
		set[i] = landmark.Point{X: p.X, Y: p.Y, Z: p.Z, Visibility: p.Visibility, Presence: p.Presence}
	}
	return set, nil
}
