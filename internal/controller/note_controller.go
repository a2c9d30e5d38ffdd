package controller

import (
	"linkmark-be/internal/apperror"
	"linkmark-be/internal/dto"
	"linkmark-be/internal/pkg/serverutils"
	"linkmark-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INoteController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type noteController struct {
	noteService service.INoteService
}

func NewNoteController(noteService service.INoteService) INoteController {
	return &noteController{
		noteService: noteService,
	}
}

// Notes hang off their bookmark, so every route is nested under the
// bookmark id.
func (c *noteController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bookmark/v1/:bookmarkId/notes")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":noteId", c.Show)
	h.Put(":noteId", c.Update)
	h.Delete(":noteId", c.Delete)
}

func parseIds(ctx *fiber.Ctx, withNote bool) (uuid.UUID, uuid.UUID, error) {
	bookmarkId, err := uuid.Parse(ctx.Params("bookmarkId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, apperror.NewNotFound()
	}
	if !withNote {
		return bookmarkId, uuid.Nil, nil
	}
	noteId, err := uuid.Parse(ctx.Params("noteId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, apperror.NewNotFound()
	}
	return bookmarkId, noteId, nil
}

func (c *noteController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	bookmarkId, _, err := parseIds(ctx, false)
	if err != nil {
		return err
	}

	var req dto.CreateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("request body is not valid JSON")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Add(ctx.Context(), userId, bookmarkId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create note", res))
}

func (c *noteController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	bookmarkId, noteId, err := parseIds(ctx, true)
	if err != nil {
		return err
	}

	res, err := c.noteService.Get(ctx.Context(), userId, bookmarkId, noteId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show note", res))
}

func (c *noteController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	bookmarkId, noteId, err := parseIds(ctx, true)
	if err != nil {
		return err
	}

	var req dto.UpdateNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return apperror.NewValidation("request body is not valid JSON")
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.noteService.Update(ctx.Context(), userId, bookmarkId, noteId, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update note", res))
}

func (c *noteController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	bookmarkId, noteId, err := parseIds(ctx, true)
	if err != nil {
		return err
	}

	if err := c.noteService.Delete(ctx.Context(), userId, bookmarkId, noteId); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete note", nil))
}

func (c *noteController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	bookmarkId, _, err := parseIds(ctx, false)
	if err != nil {
		return err
	}

	res, err := c.noteService.List(ctx.Context(), userId, bookmarkId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list notes", res))
}
