package controller

import (
	"linkmark-be/internal/pkg/serverutils"
	"linkmark-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStatsController interface {
	RegisterRoutes(r fiber.Router)
	Global(ctx *fiber.Ctx) error
	Personal(ctx *fiber.Ctx) error
}

type statsController struct {
	statsService service.IStatsService
}

func NewStatsController(statsService service.IStatsService) IStatsController {
	return &statsController{
		statsService: statsService,
	}
}

func (c *statsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/stats/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("global", c.Global)
	h.Get("me", c.Personal)
}

func (c *statsController) Global(ctx *fiber.Ctx) error {
	res, err := c.statsService.Global(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get global stats", res))
}

func (c *statsController) Personal(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.statsService.Personal(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get personal stats", res))
}
