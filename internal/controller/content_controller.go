package controller

import (
	"github.com/gofiber/fiber/v2"

	"servizi-facili-be/internal/pkg/serverutils"
	"servizi-facili-be/pkg/catalog"
	"servizi-facili-be/pkg/glossary"
	"servizi-facili-be/pkg/scam"
)

// IContentController serves the static content the frontend renders outside
// the conversation: the service catalog, the glossary and the scam training
// emails.
type IContentController interface {
	RegisterRoutes(r fiber.Router)
	Glossary(ctx *fiber.Ctx) error
	Catalog(ctx *fiber.Ctx) error
	CatalogService(ctx *fiber.Ctx) error
	ScamExamples(ctx *fiber.Ctx) error
}

type contentController struct {
	catalog *catalog.Catalog
}

func NewContentController(cat *catalog.Catalog) IContentController {
	return &contentController{catalog: cat}
}

func (c *contentController) RegisterRoutes(r fiber.Router) {
	r.Get("/glossary", c.Glossary)
	r.Get("/catalog", c.Catalog)
	r.Get("/catalog/:id", c.CatalogService)
	r.Get("/scam-examples", c.ScamExamples)
}

func (c *contentController) Glossary(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Glossary", glossary.Termini))
}

func (c *contentController) Catalog(ctx *fiber.Ctx) error {
	if query := ctx.Query("q"); query != "" {
		return ctx.JSON(serverutils.SuccessResponse("Catalog search", c.catalog.Search(query)))
	}
	return ctx.JSON(serverutils.SuccessResponse("Catalog", c.catalog.Services()))
}

func (c *contentController) CatalogService(ctx *fiber.Ctx) error {
	service, ok := c.catalog.Service(ctx.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Service not found")
	}
	return ctx.JSON(serverutils.SuccessResponse("Service", service))
}

func (c *contentController) ScamExamples(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Scam examples", scam.Examples()))
}
