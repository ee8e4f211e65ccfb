package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/reoring/cardkit"
	"github.com/reoring/cardkit/elements"
	echomw "github.com/reoring/cardkit/middleware/echo"
	ginmw "github.com/reoring/cardkit/middleware/gin"
)

// HTTP engines accepted by --engine.
const (
	engineEcho = "echo"
	engineGin  = "gin"
)

const shutdownTimeout = 5 * time.Second

type serveOpts struct {
	host   hostOpts
	addr   string
	engine string
}

func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080", engine: engineEcho}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve card parsing and checking over HTTP",
		Long: `Serve exposes two endpoints taking a card document as the request body:

  POST /cards/parse   returns the canonical card and parse warnings
  POST /cards/check   returns the per-element render status for the host

The host config (--host) supplies capabilities and parse limits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}
	opts.host.register(cmd)
	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.engine, "engine", opts.engine, "HTTP engine: echo or gin")
	return cmd
}

func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)
	s, err := opts.host.session()
	if err != nil {
		return err
	}
	handler, err := newHandler(opts.engine, s, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{Addr: opts.addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Info("listening", "addr", opts.addr, "engine", opts.engine)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info("server stopped")
	return ctx.Err()
}

// newHandler builds the HTTP handler for engine.
func newHandler(engine string, s *session, logger *log.Logger) (http.Handler, error) {
	switch engine {
	case engineEcho:
		return newEchoHandler(s, logger), nil
	case engineGin:
		return newGinHandler(s, logger), nil
	}
	return nil, fmt.Errorf("unknown engine %q (want %s or %s)", engine, engineEcho, engineGin)
}

func parsePayload(res cardkit.ParseResult[*elements.Card]) (map[string]any, error) {
	v, err := res.Value.SerializeToJSONValue()
	if err != nil {
		return nil, err
	}
	return map[string]any{"card": v, "warnings": warningsOf(res), "session": res.SessionID}, nil
}

func checkPayload(s *session, res cardkit.ParseResult[*elements.Card]) map[string]any {
	return map[string]any{
		"elements": checkCard(res.Value, s.cfg.Capabilities),
		"warnings": warningsOf(res),
		"session":  res.SessionID,
	}
}

func warningsOf(res cardkit.ParseResult[*elements.Card]) cardkit.Issues {
	if res.Warnings == nil {
		return cardkit.Issues{}
	}
	return res.Warnings
}

func newEchoHandler(s *session, logger *log.Logger) http.Handler {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			c.SetRequest(req.WithContext(cardkit.WithLogger(req.Context(), logger)))
			return next(c)
		}
	})

	parse := echomw.ParseJSON(s.families.ParseCard, s.opt)
	e.POST("/cards/parse", func(c echo.Context) error {
		res, _ := echomw.GetParsed[*elements.Card](c)
		body, err := parsePayload(res)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]any{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, body)
	}, parse)
	e.POST("/cards/check", func(c echo.Context) error {
		res, _ := echomw.GetParsed[*elements.Card](c)
		return c.JSON(http.StatusOK, checkPayload(s, res))
	}, parse)
	return e
}

func newGinHandler(s *session, logger *log.Logger) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), func(c *gin.Context) {
		c.Request = c.Request.WithContext(cardkit.WithLogger(c.Request.Context(), logger))
		c.Next()
	})

	parse := ginmw.ParseJSON(s.families.ParseCard, s.opt)
	r.POST("/cards/parse", parse, func(c *gin.Context) {
		res, _ := ginmw.GetParsed[*elements.Card](c)
		body, err := parsePayload(res)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, body)
	})
	r.POST("/cards/check", parse, func(c *gin.Context) {
		res, _ := ginmw.GetParsed[*elements.Card](c)
		c.JSON(http.StatusOK, checkPayload(s, res))
	})
	return r
}
