package routes

import (
	"context"
	"net/http"

	"github.com/Puss-M/Domino-Agent/internal/server/middleware"
	"github.com/Puss-M/Domino-Agent/pkg/logger"

	"github.com/labstack/echo/v4"
)

func AnalyzeEventHandler(c echo.Context) error {
	type analyzeBody struct {
		Event string `json:"event" validate:"required"`
	}

	data := new(analyzeBody)
	if err := c.Bind(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := c.Validate(data); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	cc := c.(*middleware.AppContext)
	app := cc.App
	logger.Info("[API] Received analysis request", "user_id", cc.UserID(), "role", cc.Role(), "event", data.Event)

	ctx := c.Request().Context()
	if app.AnalysisTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, app.AnalysisTimeout)
		defer cancel()
	}

	result, err := app.Engine.Analyze(ctx, data.Event, app.AiClient)
	if err != nil {
		logger.Error("[API] Analysis failed", "user_id", cc.UserID(), "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": err.Error()})
	}

	return c.JSON(http.StatusOK, result)
}
