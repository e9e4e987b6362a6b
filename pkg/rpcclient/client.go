package rpcclient

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/MCarlomagno/miden-rpc-client/pkg/noderpc"
)

const defaultDialTimeout = 4 * time.Second

// Client is the middleman for executing RPC calls against a remote Miden
// node. It owns a single multiplexed connection and is safe to use from
// multiple goroutines; it keeps no other state, applies no retries and sets
// no per-call deadlines (pass a context with a deadline if you need one).
type Client struct {
	conn     *grpc.ClientConn
	api      noderpc.ApiClient
	endpoint string
	opts     Options
}

// Options defines options for the RPC client. All values are optional.
type Options struct {
	// DialTimeout bounds the connection handshake in New. Defaults to 4
	// seconds.
	DialTimeout time.Duration
	// CACert is a path to an extra PEM root certificate to trust in
	// addition to the system pool.
	CACert string
	// Insecure disables TLS for bare host:port endpoints. Endpoints given
	// as URLs derive this from the scheme instead.
	Insecure bool
}

// New returns a Client connected to the node at endpoint. The endpoint is
// either a bare host:port or a URL with a grpc(s):// or http(s):// scheme;
// TLS uses the platform's trusted roots. The handshake is performed here, so
// a returned Client is ready to use.
func New(ctx context.Context, endpoint string, opts Options) (*Client, error) {
	target, plaintext, err := parseEndpoint(endpoint, opts.Insecure)
	if err != nil {
		return nil, err
	}

	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}

	creds := insecure.NewCredentials()
	if !plaintext {
		creds, err = transportCredentials(opts.CACert)
		if err != nil {
			return nil, err
		}
	}

	dialCtx, cancel := context.WithTimeout(ctx, opts.DialTimeout)
	defer cancel()

	conn, err := grpc.DialContext(dialCtx, target,
		grpc.WithTransportCredentials(creds),
		grpc.WithBlock(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConnect, endpoint, err)
	}

	return &Client{
		conn:     conn,
		api:      noderpc.NewApiClient(conn),
		endpoint: endpoint,
		opts:     opts,
	}, nil
}

// parseEndpoint validates the endpoint string without any network I/O and
// reports the dial target plus whether to skip TLS.
func parseEndpoint(endpoint string, insecureOpt bool) (target string, plaintext bool, err error) {
	u, uerr := url.Parse(endpoint)
	if uerr == nil && u.Scheme != "" && u.Host != "" {
		switch u.Scheme {
		case "grpc", "http":
			return u.Host, true, nil
		case "grpcs", "https":
			return u.Host, false, nil
		default:
			return "", false, fmt.Errorf("%w: %s: unsupported scheme %q", ErrInvalidEndpoint, endpoint, u.Scheme)
		}
	}
	if _, _, herr := net.SplitHostPort(endpoint); herr != nil {
		return "", false, fmt.Errorf("%w: %s: %w", ErrInvalidEndpoint, endpoint, herr)
	}
	return endpoint, insecureOpt, nil
}

// transportCredentials builds TLS credentials from the system roots,
// optionally extended with a CA certificate file.
func transportCredentials(caCert string) (credentials.TransportCredentials, error) {
	pool, err := x509.SystemCertPool()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTLSConfig, err)
	}
	if caCert != "" {
		pem, err := os.ReadFile(caCert)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTLSConfig, err)
		}
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("%w: no certificates found in %s", ErrTLSConfig, caCert)
		}
	}
	return credentials.NewTLS(&tls.Config{RootCAs: pool}), nil
}

// Endpoint returns the endpoint the client was constructed with.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// API exposes the raw wire-level stub for calls that want to skip the domain
// type conversions.
func (c *Client) API() noderpc.ApiClient {
	return c.api
}

// Close tears down the underlying connection. The client must not be used
// afterwards.
func (c *Client) Close() error {
	return c.conn.Close()
}
