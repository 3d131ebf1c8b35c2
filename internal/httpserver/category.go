package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop/internal/events"
	"github.com/Skotchmaster/shop/internal/logging"
	"github.com/Skotchmaster/shop/internal/service"
	"github.com/Skotchmaster/shop/internal/transport"
)

type CategoryHTTP struct {
	Svc    *service.CategoryService
	Events events.Publisher
}

func (h *CategoryHTTP) GetCategories(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "category.get_categories").Logger()

	items, err := h.Svc.List(ctx)
	if err != nil {
		return failure(&l, "get_categories_failed", err, "category not found", "cannot get categories")
	}

	l.Debug().Int("count", len(items)).Msg("get_categories_success")
	return c.JSON(http.StatusOK, items)
}

func (h *CategoryHTTP) GetCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "category.get_category").Logger()

	id, err := parseID(c, &l, "get_category_failed")
	if err != nil {
		return err
	}

	cat, err := h.Svc.Get(ctx, id)
	if err != nil {
		return failure(&l, "get_category_failed", err, "category not found", "cannot get category")
	}

	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHTTP) CreateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "category.create_category").Logger()

	var req transport.CategoryRequest
	if err := bindBody(c, &l, "create_category_failed", &req); err != nil {
		return err
	}

	cat, err := h.Svc.Create(ctx, req)
	if err != nil {
		return failure(&l, "create_category_failed", err, "category not found", "could not create category")
	}

	publish(ctx, h.Events, events.TopicCategory, cat.ID, map[string]any{
		"type":       "category_created",
		"categoryID": cat.ID,
		"name":       cat.Name,
	})

	l.Info().Uint("category_id", cat.ID).Msg("create_category_success")
	return c.JSON(http.StatusCreated, cat)
}

func (h *CategoryHTTP) UpdateCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "category.update_category").Logger()

	id, err := parseID(c, &l, "update_category_failed")
	if err != nil {
		return err
	}

	var req transport.CategoryRequest
	if err := bindBody(c, &l, "update_category_failed", &req); err != nil {
		return err
	}

	cat, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return failure(&l, "update_category_failed", err, "category not found", "could not update category")
	}

	publish(ctx, h.Events, events.TopicCategory, cat.ID, map[string]any{
		"type":       "category_updated",
		"categoryID": cat.ID,
		"name":       cat.Name,
		"version":    cat.Version,
	})

	l.Info().Uint("category_id", cat.ID).Msg("update_category_success")
	return c.JSON(http.StatusOK, cat)
}

func (h *CategoryHTTP) DeleteCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "category.delete_category").Logger()

	id, err := parseID(c, &l, "delete_category_failed")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return failure(&l, "delete_category_failed", err, "category not found", "could not delete category")
	}

	publish(ctx, h.Events, events.TopicCategory, id, map[string]any{
		"type":       "category_deleted",
		"categoryID": id,
	})

	l.Info().Uint("category_id", id).Msg("delete_category_success")
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "category removed"})
}
