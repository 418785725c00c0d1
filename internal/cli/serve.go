package cli

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/jmclachlan11/boxbuilder/pkg/observability"
	"github.com/jmclachlan11/boxbuilder/pkg/pipeline"
	"github.com/jmclachlan11/boxbuilder/pkg/server"
)

// serveCommand runs the HTTP API until interrupted.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
		metrics bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve cut lists and drawings over HTTP",
		Example: `  boxbuilder serve --addr :8080
  curl 'localhost:8080/api/v1/box?machine=916&thickness=1/2'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}
			runner, err := c.newRunner(ctx, cfg, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			opts := server.Options{
				Timeout: timeout,
				Render:  pipeline.Options{Width: cfg.Render.Width, Height: cfg.Render.Height, Scale: cfg.Render.Scale},
			}
			if metrics {
				reg := prometheus.NewRegistry()
				reg.MustRegister(
					collectors.NewGoCollector(),
					collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
				)
				prom := observability.NewPrometheus(reg)
				observability.SetPipelineHooks(prom)
				observability.SetCacheHooks(prom)
				observability.SetHTTPHooks(prom)
				defer observability.Reset()
				opts.Gatherer = reg
			}

			return server.New(runner, c.Logger, opts).ListenAndServe(ctx, addr)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&addr, "addr", ":8080", "listen address (default from config)")
	fs.BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	fs.BoolVar(&metrics, "metrics", true, "expose Prometheus metrics on /metrics")
	fs.DurationVar(&timeout, "timeout", 30*time.Second, "per-request timeout")
	return cmd
}
