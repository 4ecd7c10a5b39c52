package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bitcoin-sv/bank-wallet/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	echo       *echo.Echo
	address    string
	logger     *slog.Logger
	registerer prometheus.Registerer
}

type ServerOption func(s *Server)

// WithRegisterer sets where the request metrics are registered, prometheus.DefaultRegisterer by default.
func WithRegisterer(r prometheus.Registerer) ServerOption {
	return func(s *Server) {
		s.registerer = r
	}
}

func NewServer(l *slog.Logger, address string, handler *Handler, opts ...ServerOption) *Server {
	s := &Server{
		address:    address,
		logger:     l.With(slog.String("module", "api-server")),
		registerer: prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(s)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.Recover())
	e.Use(eventIDMiddleware)
	e.Use(echomiddleware.RequestLoggerWithConfig(requestLogConfig(s.logger)))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "bank_wallet_api",
		Registerer: s.registerer,
	}))

	handler.Register(e)
	s.echo = e

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) Start() {
	go func() {
		s.logger.Info("Starting API server", slog.String("address", s.address))
		err := s.echo.Start(s.address)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Failed to start API server", slog.String("err", err.Error()))
		}
	}()
}

func (s *Server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Failed to close API echo server", slog.String("err", err.Error()))
	}
}

func eventIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		eventID := uuid.New().String()
		//nolint:staticcheck // use string key on purpose
		reqCtx := context.WithValue(req.Context(), logger.EventIDField, eventID) //lint:ignore SA1029 use string key on purpose
		c.SetRequest(req.WithContext(reqCtx))
		c.Response().Header().Set(echo.HeaderXRequestID, eventID)

		return next(c)
	}
}

func requestLogConfig(l *slog.Logger) echomiddleware.RequestLoggerConfig {
	return echomiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ctx := c.Request().Context()
			eventID, _ := ctx.Value(logger.EventIDField).(string)

			if v.Error == nil {
				l.DebugContext(ctx, "REQUEST",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String(logger.EventIDField, eventID),
				)
			} else {
				l.ErrorContext(ctx, "REQUEST_ERROR",
					slog.String("uri", v.URI),
					slog.Int("status", v.Status),
					slog.String(logger.EventIDField, eventID),
					slog.String("err", v.Error.Error()),
				)
			}
			return nil
		},
	}
}
