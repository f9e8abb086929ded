package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CreateResource(c *ginext.Context)
	GetResource(c *ginext.Context)
	GetAvailability(c *ginext.Context)
	SetAvailability(c *ginext.Context)
	GetQuote(c *ginext.Context)
	CreateHold(c *ginext.Context)
	GetHold(c *ginext.Context)
	ReleaseHold(c *ginext.Context)
	FinalizeHold(c *ginext.Context)
	UpsertRule(c *ginext.Context)
	ListRules(c *ginext.Context)
	DeleteRule(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Resources
		api.POST("/resources", h.CreateResource)
		api.GET("/resources/:id", h.GetResource)

		// Calendar + pricing
		api.GET("/resources/:id/availability", h.GetAvailability)
		api.PUT("/resources/:id/availability/:date", h.SetAvailability)
		api.GET("/resources/:id/quote", h.GetQuote)

		// Holds
		api.POST("/resources/:id/holds", h.CreateHold)
		api.GET("/holds/:id", h.GetHold)
		api.POST("/holds/:id/finalize", h.FinalizeHold)
		api.POST("/holds/:id/release", h.ReleaseHold)

		// Discount rules (owner CRUD)
		api.PUT("/resources/:id/rules", h.UpsertRule)
		api.GET("/resources/:id/rules", h.ListRules)
		api.DELETE("/rules/:id", h.DeleteRule)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
