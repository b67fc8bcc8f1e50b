package controller

import (
	"cinemotion-be/internal/dto"
	"cinemotion-be/internal/pkg/serverutils"
	"cinemotion-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMoodController interface {
	RegisterRoutes(r fiber.Router)
	AnalyzeEmotionalJourney(ctx *fiber.Ctx) error
	AnalyzePartyMood(ctx *fiber.Ctx) error
	AnalyzeCharacterMatch(ctx *fiber.Ctx) error
}

type moodController struct {
	moodService service.IMoodService
}

func NewMoodController(moodService service.IMoodService) IMoodController {
	return &moodController{
		moodService: moodService,
	}
}

func (c *moodController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/make-server")
	h.Post("analyze-emotional-journey", c.AnalyzeEmotionalJourney)
	h.Post("analyze-party-mood", c.AnalyzePartyMood)
	h.Post("analyze-character-match", c.AnalyzeCharacterMatch)
}

func (c *moodController) AnalyzeEmotionalJourney(ctx *fiber.Ctx) error {
	var req dto.AnalyzeEmotionalJourneyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	// Typed pipeline errors bubble to the error handler middleware.
	res, err := c.moodService.AnalyzeEmotionalJourney(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze emotional journey", res))
}

func (c *moodController) AnalyzePartyMood(ctx *fiber.Ctx) error {
	var req dto.AnalyzePartyMoodRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.moodService.AnalyzePartyMood(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze party mood", res))
}

func (c *moodController) AnalyzeCharacterMatch(ctx *fiber.Ctx) error {
	var req dto.AnalyzeCharacterMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.moodService.AnalyzeCharacterMatch(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success analyze character match", res))
}
