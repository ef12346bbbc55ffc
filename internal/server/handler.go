package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rustyeddy/tradebook/analysis"
	"github.com/rustyeddy/tradebook/internal/app"
	"github.com/rustyeddy/tradebook/journal"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

// TradeReq is the body of POST /api/v1/trades.
type TradeReq struct {
	Pair     string   `json:"pair" binding:"required"`
	Side     string   `json:"side" binding:"required,oneof=buy sell"`
	Time     string   `json:"time" binding:"required"`
	Date     string   `json:"date"`
	Trend1D  string   `json:"trend_1d" binding:"required,oneof=Bullish Bearish"`
	Trend1H  string   `json:"trend_1h" binding:"required,oneof=Bullish Bearish"`
	Trend15m string   `json:"trend_15m" binding:"required,oneof=Bullish Bearish"`
	Criteria []string `json:"criteria"`
	Result   *float64 `json:"result" binding:"required"`
	Notes    string   `json:"notes"`
}

func (r TradeReq) trade() (journal.Trade, error) {
	cs, err := journal.ParseCriteria(r.Criteria)
	if err != nil {
		return journal.Trade{}, fmt.Errorf("%w: %v", journal.ErrInvalidTrade, err)
	}
	return journal.Trade{
		Pair:     r.Pair,
		Side:     journal.Side(r.Side),
		Time:     r.Time,
		Date:     r.Date,
		Trend1D:  journal.Trend(r.Trend1D),
		Trend1H:  journal.Trend(r.Trend1H),
		Trend15m: journal.Trend(r.Trend15m),
		Criteria: journal.NewCriteriaSet(cs...),
		Result:   *r.Result,
		Notes:    r.Notes,
	}, nil
}

type TradeListResp struct {
	Trades   []journal.Trade `json:"trades"`
	Total    int             `json:"total"`
	Warnings []string        `json:"warnings,omitempty"`
}

type BalanceResp struct {
	Balance        float64 `json:"balance"`
	InitialBalance float64 `json:"initial_balance"`
}

func (h *Handler) TradesGetList() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		trades, warnings, err := h.svc.Trades()
		if err != nil {
			JSON(ctx, err, nil)
			return
		}
		JSON(ctx, nil, TradeListResp{Trades: trades, Total: len(trades), Warnings: warnings})
	}
}

func (h *Handler) TradeGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		seq, err := strconv.Atoi(ctx.Param("seq"))
		if err != nil {
			JSON(ctx, fmt.Errorf("%w: seq %q", errBadRequest, ctx.Param("seq")), nil)
			return
		}
		t, err := h.svc.Trade(seq)
		if err != nil {
			JSON(ctx, err, nil)
			return
		}
		JSON(ctx, nil, t)
	}
}

func (h *Handler) TradeCreate() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var req TradeReq
		if err := ctx.ShouldBindJSON(&req); err != nil {
			JSON(ctx, fmt.Errorf("%w: %v", errBadRequest, err), nil)
			return
		}

		t, err := req.trade()
		if err != nil {
			JSON(ctx, err, nil)
			return
		}
		stored, err := h.svc.AddTrade(t)
		if err != nil {
			JSON(ctx, err, nil)
			return
		}
		JSON(ctx, nil, stored)
	}
}

func (h *Handler) BalanceGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		bal, err := h.svc.Balance()
		if err != nil {
			JSON(ctx, err, nil)
			return
		}
		JSON(ctx, nil, BalanceResp{Balance: bal, InitialBalance: h.svc.Options().InitialBalance})
	}
}

func (h *Handler) AnalysisGet() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		r, err := h.svc.Analyze()
		if err != nil {
			JSON(ctx, err, nil)
			return
		}
		if ctx.Query("format") == "org" {
			text, err := analysis.RenderOrg(r)
			if err != nil {
				JSON(ctx, err, nil)
				return
			}
			ctx.String(http.StatusOK, text)
			return
		}
		JSON(ctx, nil, r)
	}
}

func (h *Handler) Health() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		JSON(ctx, nil, gin.H{"status": "ok"})
	}
}
