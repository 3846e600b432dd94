package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"servizi-facili-be/internal/dto"
	"servizi-facili-be/internal/pkg/serverutils"
	"servizi-facili-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Login(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	authService      service.IAuthService
	assistantService service.IAssistantService
}

func NewAuthController(authService service.IAuthService, assistantService service.IAssistantService) IAuthController {
	return &authController{
		authService:      authService,
		assistantService: assistantService,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/login", c.Login)
	h.Post("/logout", serverutils.JwtMiddleware, c.Logout)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	// If an assistant session accompanies the login, let it resume any
	// conversation that was waiting on authentication.
	if sessionId, ok := optionalSessionId(ctx); ok {
		resumed, err := c.assistantService.HandleLogin(ctx.Context(), sessionId, res.Name)
		if err != nil && !errors.Is(err, service.ErrSessionNotFound) {
			return err
		}
		if resumed != nil {
			res.Messages = resumed.Messages
		}
	}

	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	if sessionId, ok := optionalSessionId(ctx); ok {
		if err := c.assistantService.HandleLogout(ctx.Context(), sessionId); err != nil && !errors.Is(err, service.ErrSessionNotFound) {
			return err
		}
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Logout successful", nil))
}

func optionalSessionId(ctx *fiber.Ctx) (uuid.UUID, bool) {
	raw := ctx.Get(HeaderSessionId)
	if raw == "" {
		return uuid.Nil, false
	}
	sessionId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return sessionId, true
}
