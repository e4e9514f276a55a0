package docker

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/docker/client"
	"go.uber.org/zap"
)

// Config sisältää Docker client konfiguraation
type Config struct {
	Host      string
	TLSVerify bool
	CertPath  string
	// Timeout bounds the initial ping and every later API request.
	Timeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Host:    "unix:///var/run/docker.sock",
		Timeout: 5 * time.Second,
	}
}

// Client wrappaa Docker API clientin
type Client struct {
	cli     apiClient
	timeout time.Duration
	log     *zap.Logger
}

// NewClient connects to the engine and verifies it answers a ping.
func NewClient(ctx context.Context, cfg Config, log *zap.Logger) (*Client, error) {
	opts := []client.Opt{
		client.WithHost(cfg.Host),
		client.WithAPIVersionNegotiation(),
	}

	if cfg.TLSVerify {
		opts = append(opts, client.WithTLSClientConfig(
			cfg.CertPath+"/ca.pem",
			cfg.CertPath+"/cert.pem",
			cfg.CertPath+"/key.pem",
		))
	}

	cli, err := client.NewClientWithOpts(opts...)
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}

	c := newClient(cli, cfg.Timeout, log)
	if err := c.Ping(ctx); err != nil {
		cli.Close()
		return nil, err
	}
	return c, nil
}

func newClient(cli apiClient, timeout time.Duration, log *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultConfig().Timeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{cli: cli, timeout: timeout, log: log}
}

// Ping checks that the engine is reachable.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if _, err := c.cli.Ping(ctx); err != nil {
		return fmt.Errorf("ping docker engine: %w", err)
	}
	return nil
}

// Close sulkee yhteyden
func (c *Client) Close() error {
	if c.cli != nil {
		return c.cli.Close()
	}
	return nil
}
