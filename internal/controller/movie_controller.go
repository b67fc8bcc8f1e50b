package controller

import (
	"cinemotion-be/internal/dto"
	"cinemotion-be/internal/pkg/serverutils"
	"cinemotion-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IMovieController interface {
	RegisterRoutes(r fiber.Router)
	FetchMovies(ctx *fiber.Ctx) error
	FetchMoodPicks(ctx *fiber.Ctx) error
}

type movieController struct {
	movieService service.IMovieService
}

func NewMovieController(movieService service.IMovieService) IMovieController {
	return &movieController{
		movieService: movieService,
	}
}

func (c *movieController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/make-server/movies")
	h.Get("", c.FetchMovies)
	h.Get("mood-picks", serverutils.OptionalJwtMiddleware, c.FetchMoodPicks)
}

func (c *movieController) FetchMovies(ctx *fiber.Ctx) error {
	var req dto.FetchMoviesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid query parameters")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.movieService.FetchMovies(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch movies", res))
}

func (c *movieController) FetchMoodPicks(ctx *fiber.Ctx) error {
	var userId *uuid.UUID
	if raw, ok := ctx.Locals("user_id").(string); ok {
		if id, err := uuid.Parse(raw); err == nil {
			userId = &id
		}
	}

	res, err := c.movieService.FetchMoodPicks(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success fetch mood picks", res))
}
