package controller

import (
	"cinemotion-be/internal/pkg/serverutils"
	"cinemotion-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IRecommendationController interface {
	RegisterRoutes(r fiber.Router)
	GetPersonal(ctx *fiber.Ctx) error
	GetRandom(ctx *fiber.Ctx) error
}

type recommendationController struct {
	recommendationService service.IRecommendationService
}

func NewRecommendationController(recommendationService service.IRecommendationService) IRecommendationController {
	return &recommendationController{
		recommendationService: recommendationService,
	}
}

func (c *recommendationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/make-server/recommend")
	h.Post("personal", serverutils.JwtMiddleware, c.GetPersonal)
	h.Get("random", c.GetRandom)
}

func (c *recommendationController) GetPersonal(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.recommendationService.GetPersonalRecommendations(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get recommendations", res))
}

func (c *recommendationController) GetRandom(ctx *fiber.Ctx) error {
	res, err := c.recommendationService.GetRandomRecommendations(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get random recommendations", res))
}
