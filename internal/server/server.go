package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rgehrsitz/fincalc/internal/calculation"
	"github.com/rgehrsitz/fincalc/internal/config"
)

// Server exposes the calculators over HTTP
type Server struct {
	router *gin.Engine
	engine *calculation.CalculationEngine
	cache  ResultCache
	logger calculation.Logger
	cfg    *config.AppConfig
}

// NewServer creates a server. cache may be nil to disable caching. Money fields
// are JSON numbers only when the process sets decimal.MarshalJSONWithoutQuotes,
// as cmd/fincalc does at startup.
func NewServer(cfg *config.AppConfig, engine *calculation.CalculationEngine, cache ResultCache, logger calculation.Logger) *Server {
	if cfg == nil {
		cfg = config.DefaultAppConfig()
	}
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	if logger == nil {
		logger = calculation.NopLogger{}
	}

	gin.SetMode(cfg.Server.Mode)

	s := &Server{
		router: gin.New(),
		engine: engine,
		cache:  cache,
		logger: logger,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

// setupRoutes registers the calculator endpoints
func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery(), requestID())
	if gin.Mode() != gin.TestMode {
		s.router.Use(gin.Logger())
	}

	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.POST("/sip", s.calculate("sip", func() calcRequest { return &sipRequest{} }))
	s.router.POST("/sip-step-up", s.calculate("sip-step-up", func() calcRequest { return &stepUpRequest{} }))
	s.router.POST("/emi", s.calculate("emi", func() calcRequest { return &emiRequest{} }))
	s.router.POST("/sip-tenure", s.calculate("sip-tenure", func() calcRequest { return &tenureRequest{} }))
	s.router.POST("/lumpsum", s.calculate("lumpsum", func() calcRequest { return &lumpsumRequest{} }))
	s.router.POST("/education-goal", s.calculate("education-goal", func() calcRequest { return &educationRequest{} }))
	s.router.POST("/retirement-goal", s.calculate("retirement-goal", func() calcRequest { return &retirementRequest{} }))
	s.router.POST("/marriage-goal", s.calculate("marriage-goal", func() calcRequest { return &marriageRequest{} }))
	s.router.POST("/cost-of-delay-sip", s.calculate("cost-of-delay-sip", func() calcRequest { return &costOfDelayRequest{} }))
	s.router.POST("/plan", s.runPlan)
}

// Handler returns the HTTP handler, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	if addr == "" {
		addr = s.cfg.Addr()
	}
	readTimeout, err := s.cfg.ReadTimeout()
	if err != nil {
		return err
	}
	writeTimeout, err := s.cfg.WriteTimeout()
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Infof("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
