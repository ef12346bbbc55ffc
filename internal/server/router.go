package server

import "github.com/gin-gonic/gin"

type ApiRouter struct {
	h *Handler
}

func NewRouter(h *Handler) *ApiRouter {
	return &ApiRouter{h: h}
}

func (api *ApiRouter) Load(g *gin.Engine) {
	g.GET("/healthz", api.h.Health())

	base := g.Group("/api/v1")

	t := base.Group("/trades")
	{
		t.GET("", api.h.TradesGetList())
		t.POST("", api.h.TradeCreate())
		t.GET("/:seq", api.h.TradeGet())
	}

	base.GET("/balance", api.h.BalanceGet())
	base.GET("/analysis", api.h.AnalysisGet())
}
