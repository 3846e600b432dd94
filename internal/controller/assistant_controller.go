package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"servizi-facili-be/internal/dto"
	"servizi-facili-be/internal/pkg/serverutils"
	"servizi-facili-be/internal/service"
)

// HeaderSessionId carries the assistant session id on every session-scoped
// request.
const HeaderSessionId = "X-Session-Id"

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	OpenSession(ctx *fiber.Ctx) error
	SendMessage(ctx *fiber.Ctx) error
	Transcript(ctx *fiber.Ctx) error
	Preferences(ctx *fiber.Ctx) error
	SetRoute(ctx *fiber.Ctx) error
	Clear(ctx *fiber.Ctx) error
	CloseSession(ctx *fiber.Ctx) error
	DeleteSession(ctx *fiber.Ctx) error
	QuickActions(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
}

func NewAssistantController(assistantService service.IAssistantService) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant")
	h.Use(serverutils.OptionalJwtMiddleware)
	h.Post("/session", c.OpenSession)
	h.Post("/message", c.SendMessage)
	h.Get("/transcript", c.Transcript)
	h.Get("/preferences", c.Preferences)
	h.Post("/route", c.SetRoute)
	h.Post("/clear", c.Clear)
	h.Post("/close", c.CloseSession)
	h.Delete("/session", c.DeleteSession)
	h.Get("/quick-actions", c.QuickActions)
}

func (c *assistantController) OpenSession(ctx *fiber.Ctx) error {
	var req dto.OpenSessionRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}
	req.UserName = serverutils.UserName(ctx)

	res, err := c.assistantService.OpenSession(ctx.Context(), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Session opened", res))
}

func (c *assistantController) SendMessage(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdFromHeader(ctx)
	if err != nil {
		return err
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	res, err := c.assistantService.SendMessage(ctx.Context(), sessionId, serverutils.IsAuthenticated(ctx), &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Message processed", res))
}

func (c *assistantController) Transcript(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdFromHeader(ctx)
	if err != nil {
		return err
	}

	res, err := c.assistantService.Transcript(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Transcript", res))
}

func (c *assistantController) Preferences(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdFromHeader(ctx)
	if err != nil {
		return err
	}

	res, err := c.assistantService.Preferences(ctx.Context(), sessionId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Preferences", res))
}

func (c *assistantController) SetRoute(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdFromHeader(ctx)
	if err != nil {
		return err
	}

	var req dto.SetRouteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := c.assistantService.SetRoute(ctx.Context(), sessionId, req.Route); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Route updated", nil))
}

func (c *assistantController) Clear(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdFromHeader(ctx)
	if err != nil {
		return err
	}

	if err := c.assistantService.Clear(ctx.Context(), sessionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Conversation cleared", nil))
}

func (c *assistantController) CloseSession(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdFromHeader(ctx)
	if err != nil {
		return err
	}

	if err := c.assistantService.CloseSession(ctx.Context(), sessionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Session closed", nil))
}

func (c *assistantController) DeleteSession(ctx *fiber.Ctx) error {
	sessionId, err := sessionIdFromHeader(ctx)
	if err != nil {
		return err
	}

	if err := c.assistantService.DeleteSession(ctx.Context(), sessionId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Session deleted", nil))
}

func (c *assistantController) QuickActions(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Quick actions", c.assistantService.QuickActions()))
}

func sessionIdFromHeader(ctx *fiber.Ctx) (uuid.UUID, error) {
	raw := ctx.Get(HeaderSessionId)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Missing "+HeaderSessionId+" header")
	}
	sessionId, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid "+HeaderSessionId+" header")
	}
	return sessionId, nil
}
