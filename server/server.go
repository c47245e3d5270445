package server

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/promptgen-dev/promptgen/compare"
	"github.com/promptgen-dev/promptgen/config"
	"github.com/promptgen-dev/promptgen/llm"
	"github.com/promptgen-dev/promptgen/logger"
	"github.com/promptgen-dev/promptgen/output"
	"github.com/promptgen-dev/promptgen/prompt"
	"github.com/promptgen-dev/promptgen/version"
)

// Server exposes the prompt generator over HTTP: a small web page plus a
// JSON API mirroring the CLI's single and comparison modes.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine

	// newClient is swapped out in tests to avoid real provider calls.
	newClient func(provider llm.Provider) (llm.LLM, error)
}

// New builds the server from the resolved configuration.
func New(cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), accessLog())
	engine.SetHTMLTemplate(template.Must(template.New("index").Parse(indexHTML)))

	srv := &Server{
		cfg:    cfg,
		engine: engine,
		newClient: func(provider llm.Provider) (llm.LLM, error) {
			return llm.NewLLM(provider, cfg)
		},
	}
	srv.registerRoutes()
	return srv
}

func (s *Server) registerRoutes() {
	s.engine.GET("/", s.index)
	s.engine.GET("/healthz", s.health)

	api := s.engine.Group("/api")
	api.POST("/generate", s.generate)
	api.POST("/compare", s.compare)
}

// Start serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.Server.Addr,
		Handler: s.engine,
	}
	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	logger.Infof("Serving on %s", s.cfg.Server.Addr)
	return srv.ListenAndServe()
}

// requestID tags every request with an ID for log correlation. A caller
// supplied X-Request-ID is kept.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// accessLog writes one line per request.
func accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Infof("%s %s -> %d (%s) request_id=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(),
			time.Since(start).Round(time.Millisecond), c.GetString("request_id"))
	}
}

type generateRequest struct {
	Provider     string `json:"provider"`
	ProjectIdea  string `json:"project_idea"`
	Requirements string `json:"requirements"`
}

type generateResponse struct {
	Provider    string `json:"provider"`
	DisplayName string `json:"display_name"`
	Filename    string `json:"filename"`
	Content     string `json:"content"`
}

type compareRequest struct {
	ProjectIdea  string `json:"project_idea"`
	Requirements string `json:"requirements"`
}

type compareResult struct {
	Provider    string `json:"provider"`
	DisplayName string `json:"display_name"`
	Filename    string `json:"filename"`
	Content     string `json:"content,omitempty"`
	Error       string `json:"error,omitempty"`
}

type compareResponse struct {
	Results []compareResult `json:"results"`
}

type providerOption struct {
	Value string
	Label string
}

// taglines is presentation copy for the model picker.
var taglines = map[llm.Provider]string{
	llm.ProviderAnthropic: "Best for Logic",
	llm.ProviderOpenAI:    "Best for Creativity",
	llm.ProviderDeepSeek:  "Best for Syntax",
}

func providerOptions() []providerOption {
	all := llm.All()
	options := make([]providerOption, 0, len(all))
	for _, provider := range all {
		label := provider.DisplayName()
		if tagline, ok := taglines[provider]; ok {
			label += " (" + tagline + ")"
		}
		options = append(options, providerOption{
			Value: string(provider),
			Label: label,
		})
	}
	return options
}

func (s *Server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index", gin.H{
		"Providers": providerOptions(),
	})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": version.Version,
	})
}

func (s *Server) generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	provider := llm.ProviderAnthropic
	if strings.TrimSpace(req.Provider) != "" {
		var err error
		provider, err = llm.ParseProvider(req.Provider)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	promptReq, err := prompt.NewRequest(req.ProjectIdea, req.Requirements)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	client, err := s.newClient(provider)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := client.Generate(llm.Request{Prompt: promptReq.Render()})
	if resp.Error != nil {
		c.JSON(statusFor(resp.Error), gin.H{"error": resp.Error.Error()})
		return
	}

	c.JSON(http.StatusOK, generateResponse{
		Provider:    string(provider),
		DisplayName: provider.DisplayName(),
		Filename:    output.DefaultFilename,
		Content:     resp.Content,
	})
}

func (s *Server) compare(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	promptReq, err := prompt.NewRequest(req.ProjectIdea, req.Requirements)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results := compare.Run(promptReq, s.candidates())

	out := compareResponse{Results: make([]compareResult, 0, len(results))}
	for _, result := range results {
		item := compareResult{
			Provider:    string(result.Provider),
			DisplayName: result.Provider.DisplayName(),
			Filename:    output.Filename(result.Provider),
			Content:     result.Content,
		}
		if result.Err != nil {
			item.Error = result.Err.Error()
		}
		out.Results = append(out.Results, item)
	}

	c.JSON(http.StatusOK, out)
}

// candidates builds one candidate per provider through the injectable
// constructor.
func (s *Server) candidates() []compare.Candidate {
	all := llm.All()
	candidates := make([]compare.Candidate, 0, len(all))
	for _, provider := range all {
		client, err := s.newClient(provider)
		candidates = append(candidates, compare.Candidate{
			Provider: provider,
			Client:   client,
			Err:      err,
		})
	}
	return candidates
}

// statusFor maps a generation error onto an HTTP status: bad input is the
// caller's fault, upstream failures are a bad gateway.
func statusFor(err error) int {
	var validationErr *prompt.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}

	var providerErr *llm.ProviderError
	var transportErr *llm.TransportError
	if errors.As(err, &providerErr) || errors.As(err, &transportErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
