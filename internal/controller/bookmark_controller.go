package controller

import (
	"bytes"
	"encoding/json"
	"net/url"

	"linkmark-be/internal/apperror"
	"linkmark-be/internal/dto"
	"linkmark-be/internal/pkg/serverutils"
	"linkmark-be/internal/service"
	"linkmark-be/pkg/pagination"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBookmarkController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	ListTags(ctx *fiber.Ctx) error
}

type bookmarkController struct {
	bookmarkService service.IBookmarkService
}

func NewBookmarkController(bookmarkService service.IBookmarkService) IBookmarkController {
	return &bookmarkController{
		bookmarkService: bookmarkService,
	}
}

func (c *bookmarkController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bookmark/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("tags", c.ListTags)
	h.Post("", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Put(":id", c.Update)
	h.Delete(":id", c.Delete)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

// Create accepts either one bookmark object or an array of them. An
// array is stored atomically: one bad element rejects the whole batch.
func (c *bookmarkController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	body := bytes.TrimLeft(ctx.Body(), " \t\r\n")
	if len(body) > 0 && body[0] == '[' {
		var reqs []*dto.CreateBookmarkRequest
		if err := json.Unmarshal(body, &reqs); err != nil {
			return apperror.NewValidation("request body is not valid JSON")
		}

		res, err := c.bookmarkService.CreateBatch(ctx.Context(), userId, reqs)
		if err != nil {
			return err
		}
		return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create bookmarks", res))
	}

	var req dto.CreateBookmarkRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return apperror.NewValidation("request body is not valid JSON")
	}

	res, err := c.bookmarkService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success create bookmark", res))
}

func (c *bookmarkController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewNotFound()
	}

	res, err := c.bookmarkService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success show bookmark", res))
}

func (c *bookmarkController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewNotFound()
	}

	var req dto.UpdateBookmarkRequest
	if err := json.Unmarshal(ctx.Body(), &req); err != nil {
		return apperror.NewValidation("request body is not valid JSON")
	}

	res, err := c.bookmarkService.Update(ctx.Context(), userId, id, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success update bookmark", res))
}

func (c *bookmarkController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return apperror.NewNotFound()
	}

	if err := c.bookmarkService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success delete bookmark", nil))
}

// List returns one page of bookmarks in reading order. When more pages
// follow, a Link header points at the last page so clients can size
// their pagination without a second round trip.
func (c *bookmarkController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.ListBookmarksRequest
	if err := ctx.QueryParser(&req); err != nil {
		return apperror.NewValidation("invalid query parameters")
	}

	res, err := c.bookmarkService.List(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	if res.Page < res.LastPage {
		page := pagination.Page{
			Number:  res.Page,
			PerPage: res.PerPage,
			Last:    res.LastPage,
		}
		// carry the request's query over verbatim; LastPageLink only
		// rewrites page
		query := url.Values{}
		for k, v := range ctx.Queries() {
			query.Set(k, v)
		}
		ctx.Set(fiber.HeaderLink, page.LastPageLink(ctx.Path(), query))
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list bookmarks", res.Items))
}

func (c *bookmarkController) ListTags(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.bookmarkService.ListTags(ctx.Context(), userId)
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse("Success list tags", res))
}
