package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/shop/internal/events"
	"github.com/Skotchmaster/shop/internal/logging"
	"github.com/Skotchmaster/shop/internal/models"
	"github.com/Skotchmaster/shop/internal/service"
	"github.com/Skotchmaster/shop/internal/transport"
)

type ProductHTTP struct {
	Svc    *service.ProductService
	Events events.Publisher
}

func productEvent(kind string, p *models.Product) map[string]any {
	return map[string]any{
		"type":       kind,
		"productID":  p.ID,
		"categoryID": p.CategoryID,
		"title":      p.Title,
		"price":      p.Price,
		"version":    p.Version,
	}
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "product.get_products").Logger()

	items, err := h.Svc.List(ctx)
	if err != nil {
		return failure(&l, "get_products_failed", err, "product not found", "cannot get products")
	}

	l.Debug().Int("count", len(items)).Msg("get_products_success")
	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) GetProductsByCategory(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "product.get_products_by_category").Logger()

	categoryID, err := parseID(c, &l, "get_products_by_category_failed")
	if err != nil {
		return err
	}

	items, err := h.Svc.ByCategory(ctx, categoryID)
	if err != nil {
		return failure(&l, "get_products_by_category_failed", err, "product not found", "cannot get products")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "product.get_product").Logger()

	id, err := parseID(c, &l, "get_product_failed")
	if err != nil {
		return err
	}

	prod, err := h.Svc.Get(ctx, id)
	if err != nil {
		return failure(&l, "get_product_failed", err, "product not found", "cannot get product")
	}

	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "product.create_product").Logger()

	var req transport.ProductRequest
	if err := bindBody(c, &l, "create_product_failed", &req); err != nil {
		return err
	}

	prod, err := h.Svc.Create(ctx, req)
	if err != nil {
		return failure(&l, "create_product_failed", err, "product not found", "could not create product")
	}

	publish(ctx, h.Events, events.TopicProduct, prod.ID, productEvent("product_created", prod))

	l.Info().Uint("product_id", prod.ID).Msg("create_product_success")
	return c.JSON(http.StatusCreated, prod)
}

func (h *ProductHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "product.update_product").Logger()

	id, err := parseID(c, &l, "update_product_failed")
	if err != nil {
		return err
	}

	var req transport.ProductRequest
	if err := bindBody(c, &l, "update_product_failed", &req); err != nil {
		return err
	}

	prod, err := h.Svc.Update(ctx, id, req)
	if err != nil {
		return failure(&l, "update_product_failed", err, "product not found", "could not update product")
	}

	publish(ctx, h.Events, events.TopicProduct, prod.ID, productEvent("product_updated", prod))

	l.Info().Uint("product_id", prod.ID).Msg("update_product_success")
	return c.JSON(http.StatusOK, prod)
}

func (h *ProductHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With().Str("handler", "product.delete_product").Logger()

	id, err := parseID(c, &l, "delete_product_failed")
	if err != nil {
		return err
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return failure(&l, "delete_product_failed", err, "product not found", "could not delete product")
	}

	publish(ctx, h.Events, events.TopicProduct, id, map[string]any{
		"type":      "product_deleted",
		"productID": id,
	})

	l.Info().Uint("product_id", id).Msg("delete_product_success")
	return c.JSON(http.StatusOK, transport.MessageResponse{Message: "product removed"})
}
