package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "ClinicDesk is running")
}

// SetupRootRoute registers the health text and the prometheus endpoint.
func SetupRootRoute(router *gin.Engine, gatherer prometheus.Gatherer) {
	router.GET("/", rootHandler)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
}
