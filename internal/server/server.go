package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/config"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/core/model"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/driver"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/geocode"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/llm"
	"github.com/AnthonyP05/WizardsOfWaverlyHacks/internal/search"
)

type Server struct {
	Assistant *core.Assistant
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using env-only configuration", cfgPath, err)
		cfg = &config.Config{}
	}

	// Env vars win over the config file (simple override logic)
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("SEARCH_API_KEY"); v != "" {
		cfg.Search.APIKey = v
	}
	if v := os.Getenv("SEARCH_BASE_URL"); v != "" {
		cfg.Search.BaseURL = v
	}
	if v := os.Getenv("MEMGRAPH_URI"); v != "" {
		cfg.Memgraph.URI = v
	}
	if v := os.Getenv("MEMGRAPH_USER"); v != "" {
		cfg.Memgraph.User = v
	}
	if v := os.Getenv("MEMGRAPH_PASSWORD"); v != "" {
		cfg.Memgraph.Password = v
	}

	// Default to Ollama with a multimodal model if no provider is configured
	if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "ollama"
		cfg.LLM.Model = "llava:latest"
		cfg.LLM.BaseURL = "http://localhost:11434"
	}

	var d driver.GraphDriver
	if cfg.Memgraph.URI != "" {
		md, err := driver.NewMemgraphDriver(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
		if err != nil {
			log.Fatalf("Failed to connect to Memgraph: %v", err)
		}
		d = md
	} else {
		log.Println("MEMGRAPH_URI not set, running without the rules cache")
	}

	llmClient, visionClient, err := llm.NewClient(context.Background(), cfg.LLM)
	if err != nil {
		log.Fatalf("Failed to initialize LLM client: %v", err)
	}

	searchClient := search.NewHTTPClient(cfg.Search)
	geocoder := geocode.NewClient(cfg.Geocode)

	a := core.NewAssistant(d, searchClient, llmClient, visionClient, geocoder, cfg)
	if err := a.BuildIndices(context.Background()); err != nil {
		log.Printf("Warning: failed to build indices: %v", err)
	}

	return &Server{Assistant: a}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(requestID())

	r.GET("/health", s.Health)
	r.POST("/rules", s.GetRules)
	r.POST("/compare", s.CompareItems)
	r.POST("/scan", s.ScanImage)

	return r
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Request-ID", uuid.New().String())
		c.Next()
	}
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type RulesRequest struct {
	Zip      string `json:"zip"`
	Guidance bool   `json:"guidance"`
}

func (s *Server) GetRules(c *gin.Context) {
	var req RulesRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Zip == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: zip is required"})
		return
	}

	r := s.Assistant.GetRules(c.Request.Context(), req.Zip)

	resp := gin.H{"rules": r}
	if req.Guidance {
		if text := s.Assistant.Guidance(c.Request.Context(), r); text != "" {
			resp["guidance"] = text
		}
	}
	c.JSON(http.StatusOK, resp)
}

type CompareRequest struct {
	Zip   string               `json:"zip"`
	Items []model.DetectedItem `json:"items"`
}

func (s *Server) CompareItems(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Zip == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: zip is required"})
		return
	}

	comparison := s.Assistant.CompareItems(c.Request.Context(), req.Zip, req.Items)
	c.JSON(http.StatusOK, gin.H{"comparison": comparison})
}

type ScanRequest struct {
	Zip      string `json:"zip"`
	Image    string `json:"image"`
	MimeType string `json:"mime_type"`
}

func (s *Server) ScanImage(c *gin.Context) {
	var req ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Zip == "" || req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: zip and image are required"})
		return
	}

	comparison, items, err := s.Assistant.ScanImage(c.Request.Context(), req.Zip, req.Image, req.MimeType)
	if err != nil {
		log.Printf("Failed to scan image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comparison": comparison, "items": items})
}
