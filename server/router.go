// Package server wires the HTTP surface together and runs it.
package server

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/orderman/orderman-api/controllers"
	"github.com/orderman/orderman-api/middleware"
	"github.com/orderman/orderman-api/services"
)

// Deps are the collaborators the router needs
type Deps struct {
	Customers   services.CustomerService
	Database    controllers.DatabaseInspector
	Logger      *slog.Logger
	CORSOrigins []string
}

// NewRouter builds the gin engine with every route registered
func NewRouter(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORS(deps.CORSOrigins))

	customers := controllers.NewCustomerController(deps.Customers, deps.Logger)
	health := controllers.NewHealthController(deps.Database)

	router.GET("/customers/:id", customers.GetCustomer)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", health.HealthCheck)
		v1.GET("/database/status", health.DatabaseStatus)
	}

	return router
}
