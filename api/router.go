package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewRouter assembles the /airline surface. Middlewares apply to the whole
// group.
func NewRouter(userHandler *UserHandler, flightHandler *FlightHandler, middlewares ...gin.HandlerFunc) *gin.Engine {
	router := gin.Default()

	airline := router.Group("/airline")
	airline.Use(middlewares...)
	airline.GET("/", welcome)
	userHandler.Register(airline)
	flightHandler.Register(airline)

	return router
}

func welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"msg": "Welcome"})
}
