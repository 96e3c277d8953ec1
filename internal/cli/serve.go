package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sbgnconv/pkg/cache"
	"github.com/matzehuels/sbgnconv/pkg/server"
)

const serverKeyScope = "server:"

// serveOpts holds the command-line flags of the serve command.
type serveOpts struct {
	addr         string
	maxBodyBytes int64
	timeout      time.Duration
	noCache      bool
}

// serverConfig merges the flags that were set into the [serve] section.
func (o *serveOpts) serverConfig(cmd *cobra.Command, cfg ServeConfig) (server.Config, error) {
	timeout, err := cfg.timeout()
	if err != nil {
		return server.Config{}, err
	}
	sc := server.Config{
		Addr:         cfg.Addr,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Timeout:      timeout,
	}
	flags := cmd.Flags()
	if flags.Changed("addr") {
		sc.Addr = o.addr
	}
	if flags.Changed("max-body") {
		sc.MaxBodyBytes = o.maxBodyBytes
	}
	if flags.Changed("timeout") {
		sc.Timeout = o.timeout
	}
	return sc, nil
}

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve conversions over HTTP",
		Long: `Serve conversions over HTTP.

Routes:
  GET  /healthz   liveness probe
  POST /convert   convert the request body (query: to, from, no_render, no_annotations, no_notes, refresh)
  POST /check     detect the schema generation of the request body
  POST /inspect   summarize the request body (query: format)
  POST /preview   draw the request body (query: format, detailed, scale)

The server uses the cache backend configured in the [cache] section. Its
keys are prefixed with "server:" so they never collide with CLI entries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := opts.serverConfig(cmd, c.config.Serve)
			if err != nil {
				return err
			}
			return c.runServe(cmd.Context(), sc, opts.noCache)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", server.DefaultAddr, "listen address")
	cmd.Flags().Int64Var(&opts.maxBodyBytes, "max-body", server.DefaultMaxBodyBytes, "maximum request body size in bytes")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", server.DefaultTimeout, "per-request timeout")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, sc server.Config, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache, cache.NewScopedKeyer(nil, serverKeyScope))
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	srv := server.New(runner, sc, c.Logger)
	c.Logger.Debug("server config", "max_body", sc.MaxBodyBytes, "timeout", sc.Timeout, "cache", c.config.Cache.Backend)
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
