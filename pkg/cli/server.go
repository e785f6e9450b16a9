package cli

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mchmarny/shoreline/pkg/beach"
	urfave "github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const (
	serverShutdownWaitSeconds = 5
	serverTimeoutSeconds      = 30
	serverMaxHeaderBytes      = 20
	corsMaxAgeSeconds         = 300
)

//go:embed assets/* templates/*
var embedFS embed.FS

const (
	flagPort       = "port"
	flagAddress    = "address"
	flagCORSOrigin = "cors-origin"
	flagNoBrowser  = "no-browser"
)

func newServerCmd() *urfave.Command {
	return &urfave.Command{
		Name:    "server",
		Aliases: []string{"serve"},
		Usage:   "Start the local dashboard HTTP server",
		Action:  cmdStartServer,
		Flags: []urfave.Flag{
			&urfave.IntFlag{
				Name:  flagPort,
				Usage: "Port on which the server will listen (overrides config)",
			},
			&urfave.StringFlag{
				Name:  flagAddress,
				Usage: "Address on which the server will listen (overrides config)",
			},
			&urfave.StringSliceFlag{
				Name:  flagCORSOrigin,
				Usage: "Origin allowed to call the JSON API (repeatable, overrides config)",
			},
			&urfave.BoolFlag{
				Name:    flagNoBrowser,
				Aliases: []string{"nb"},
				Usage:   "Do not open browser automatically",
			},
		},
	}
}

func cmdStartServer(ctx context.Context, cmd *urfave.Command) error {
	cfg, err := getConfig(ctx)
	if err != nil {
		return err
	}

	sc := cfg.Config.Server
	if cmd.IsSet(flagPort) {
		sc.Port = cmd.Int(flagPort)
	}
	if cmd.IsSet(flagAddress) {
		sc.Address = cmd.String(flagAddress)
	}
	if cmd.IsSet(flagCORSOrigin) {
		sc.CORSOrigins = cmd.StringSlice(flagCORSOrigin)
	}

	handler, err := makeRouter(cfg.Scorer, sc.CORSOrigins)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	address := net.JoinHostPort(sc.Address, fmt.Sprint(sc.Port))
	return serve(ctx, address, handler, func(url string) {
		slog.Info("server started", "address", url)
		if !cmd.Bool(flagNoBrowser) {
			openBrowser(url)
		}
	})
}

// serve runs the HTTP server until ctx is done, then shuts it down
// gracefully. ready is called with the base URL once the listener is bound.
func serve(ctx context.Context, address string, handler http.Handler, ready func(url string)) error {
	ln, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", address, err)
	}

	s := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: serverTimeoutSeconds * time.Second,
		ReadTimeout:       serverTimeoutSeconds * time.Second,
		WriteTimeout:      serverTimeoutSeconds * time.Second,
		MaxHeaderBytes:    1 << serverMaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error running server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")
		sctx, cancel := context.WithTimeout(context.Background(), serverShutdownWaitSeconds*time.Second)
		defer cancel()
		if err := s.Shutdown(sctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error shutting down server: %w", err)
		}
		return nil
	})

	if ready != nil {
		ready("http://" + ln.Addr().String())
	}

	return g.Wait()
}

func makeRouter(scorer *beach.Scorer, corsOrigins []string) (http.Handler, error) {
	tmpl, err := template.New("").ParseFS(embedFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	static, err := fs.Sub(embedFS, "assets")
	if err != nil {
		return nil, fmt.Errorf("failed to load static assets: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger, middleware.Recoverer)

	if len(corsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         corsMaxAgeSeconds,
		}))
	}

	// Static files
	r.Method(http.MethodGet, "/static/*", http.StripPrefix("/static/", http.FileServerFS(static)))
	r.Get("/favicon.ico", faviconHandler)

	// Views
	r.Get("/", homeViewHandler(tmpl, scorer))

	// Data API
	r.Route("/api", func(r chi.Router) {
		r.Get("/options", optionsAPIHandler(scorer))
		r.Get("/evaluate", evaluateAPIHandler(scorer))
		r.Get("/curves", curvesAPIHandler(scorer))
		r.Get("/table", tableAPIHandler(scorer))
	})

	return r, nil
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			slog.Debug("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"id", middleware.GetReqID(r.Context()),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func openBrowser(url string) {
	var cmd string
	args := make([]string, 0, 1)

	switch runtime.GOOS {
	case "darwin":
		cmd = "open"
	case "linux":
		cmd = "xdg-open"
	default: // windows
		cmd = "rundll32"
		args = []string{"url.dll,FileProtocolHandler"}
	}

	args = append(args, url)
	if err := exec.Command(cmd, args...).Start(); err != nil {
		slog.Error("failed to open browser", "error", err)
	}
}
