package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/pkg/html"
	"github.com/loom-ui/loom/pkg/server"
	"github.com/loom-ui/loom/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		logJSON bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the demo counter app",
		Long: `Run a demo Loom server.

Serves an interactive counter: "/" renders the current view as a
static HTML snapshot, "/ws" runs the live patch session, "/metrics"
exposes Prometheus metrics. The HTML page carries no client script;
interactive clients connect to "/ws" and speak the binary frame
protocol directly.

Examples:
  loom serve
  loom serve --addr=:3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, logJSON)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "Address to listen on")
	cmd.Flags().BoolVar(&logJSON, "log-json", false, "Emit logs as JSON")

	return cmd
}

func runServe(addr string, logJSON bool) error {
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, nil)
	if logJSON {
		handler = slog.NewJSONHandler(os.Stderr, nil)
	}
	logger := slog.New(handler)

	cfg := server.DefaultConfig()
	cfg.Addr = addr
	cfg.Logger = logger

	srv := server.New(counterApp, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.ListenAndServe(ctx)
}

// counterApp builds the demo app: one counter per session.
func counterApp() server.App {
	count := 0
	return func() *vdom.Node {
		return html.Div(html.Class("counter"),
			html.H1(html.Textf("Count: %d", count)),
			html.Button(
				html.OnClick(func(vdom.MouseEvent) { count++ }),
				html.Text("+1"),
			),
			html.Button(
				html.OnClick(func(vdom.MouseEvent) { count-- }),
				html.Text("-1"),
			),
			html.Button(
				html.OnClick(func(vdom.MouseEvent) { count = 0 }),
				html.Text("Reset"),
			),
		)
	}
}
