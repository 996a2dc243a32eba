package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulseboard/feedback-api/external/lottie"
	"github.com/pulseboard/feedback-api/sentiment"
	"github.com/pulseboard/feedback-api/store"
)

// Server serves the feedback form API and the admin analytics dashboard.
type Server struct {
	mongoStore store.MongoStore
	analyzer   *sentiment.Analyzer
	assets     *lottie.Client
	sessions   *SessionStore
	traceMode  bool
}

func NewServer(mongoStore store.MongoStore, analyzer *sentiment.Analyzer, assets *lottie.Client, traceMode bool) *Server {
	return &Server{
		mongoStore: mongoStore,
		analyzer:   analyzer,
		assets:     assets,
		sessions:   NewSessionStore(),
		traceMode:  traceMode,
	}
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.DumpRequest)

	r.GET("/healthz", s.healthz)

	apiRoute := r.Group("/api")
	apiRoute.POST("/auth/login", s.login)
	apiRoute.POST("/auth/logout", s.logout)
	apiRoute.POST("/feedback", s.createFeedback)
	apiRoute.GET("/assets/animation", s.fetchAnimation)

	adminRoute := apiRoute.Group("", s.RequireAdmin)
	adminRoute.GET("/dashboard", s.dashboard)
	adminRoute.GET("/feedback", s.listFeedback)

	return r
}

// Run starts serving on addr and blocks.
func (s *Server) Run(addr string) error {
	return s.setupRouter().Run(addr)
}

func (s *Server) healthz(c *gin.Context) {
	if err := s.mongoStore.Ping(); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
