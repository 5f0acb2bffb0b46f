package api

import (
	"github.com/ByerDev/mazegeneratorsolver/api/i"
	logger "github.com/ByerDev/mazegeneratorsolver/infrastruture/log"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its controllers.
type Router struct {
	addr        string
	baseURL     string
	controllers []i.Controller
	logger      *logger.Logger
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr        string // Address to listen on
	BaseURL     string // Base URL for API routes
	Controllers []i.Controller
	Logger      *logger.Logger // Optional request logger
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	r := &Router{
		addr:        config.Addr,
		baseURL:     config.BaseURL,
		controllers: config.Controllers,
		logger:      config.Logger,
	}
	if r.logger == nil {
		r.logger = logger.Discard()
	}
	return r
}

// Handler builds the gin engine with every controller mounted under {baseURL}/v1.
func (r *Router) Handler() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(r.logger))

	api := router.Group(r.baseURL)
	{
		v1 := api.Group("/v1")
		for _, c := range r.controllers {
			c.Register(v1)
		}
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	r.logger.Infof("listening on %s", r.addr)
	return r.Handler().Run(r.addr)
}
