package controller

import (
	"strconv"

	"cinemotion-be/internal/dto"
	"cinemotion-be/internal/pkg/serverutils"
	"cinemotion-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetProfile(ctx *fiber.Ctx) error
	SaveMovie(ctx *fiber.Ctx) error
	GetSavedMovies(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	AddHistory(ctx *fiber.Ctx) error
	DeleteHistory(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/make-server/user")
	h.Use(serverutils.JwtMiddleware)
	h.Get("profile", c.GetProfile)
	h.Post("save", c.SaveMovie)
	h.Get("saved", c.GetSavedMovies)
	h.Get("history", c.GetHistory)
	h.Post("history", c.AddHistory)
	h.Delete("history/:movie_id", c.DeleteHistory)
}

func (c *userController) GetProfile(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.userService.GetProfile(ctx.Context(), userId)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get profile", res))
}

func (c *userController) SaveMovie(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SaveMovieRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.userService.SaveMovie(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success save movie", nil))
}

func (c *userController) GetSavedMovies(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.userService.GetSavedMovies(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get saved movies", res))
}

func (c *userController) GetHistory(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	res, err := c.userService.GetHistory(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get history", res))
}

func (c *userController) AddHistory(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.SaveMovieRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.userService.AddHistory(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success add history", nil))
}

func (c *userController) DeleteHistory(ctx *fiber.Ctx) error {
	userIdStr := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	movieId, err := strconv.ParseInt(ctx.Params("movie_id"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Movie ID is required")
	}

	if err := c.userService.DeleteHistory(ctx.Context(), userId, movieId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete history", nil))
}
