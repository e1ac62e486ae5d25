package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hqv2816/storefront-api/internal/adapter/http/middleware"
	"github.com/hqv2816/storefront-api/internal/domain"
	"github.com/hqv2816/storefront-api/internal/logging"
)

func NewRouter(ph *ProductHandler, oh *OrderHandler, ah *AuthHandler, authz *middleware.Authz) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics())

	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	{
		v1.POST("/login", ah.Login)
		v1.POST("/users", ah.Register)
		v1.GET("/me", authz.Require(), ah.Me)

		v1.GET("/products", ph.List)
		v1.GET("/products/:id", ph.Get)
		v1.POST("/products", authz.Require(domain.RoleAdmin), ph.Create)

		v1.POST("/orders", authz.Require(), oh.Create)
		v1.GET("/orders/:id", authz.Require(), oh.Get)
		v1.GET("/customers/:id/orders", authz.Require(), oh.ListByCustomer)

		v1.POST("/orders/:id/process", authz.Require(domain.RoleAdmin), oh.Process)
		v1.POST("/orders/:id/complete", authz.Require(domain.RoleAdmin), oh.Complete)
		v1.POST("/orders/:id/cancel", authz.Require(), oh.Cancel)
	}

	return r
}
