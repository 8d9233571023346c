package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/marketplace/internal/apperr"
	"github.com/Skotchmaster/marketplace/internal/logging"
	mw "github.com/Skotchmaster/marketplace/internal/middleware/auth"
	"github.com/Skotchmaster/marketplace/internal/mykafka"
	"github.com/Skotchmaster/marketplace/internal/service"
	"github.com/Skotchmaster/marketplace/internal/transport"
)

type ProductHandler struct {
	Products *service.ProductService
	Producer *mykafka.Producer
}

func (h *ProductHandler) publish(c echo.Context, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.Producer.PublishEvent(ctx, "product_events", fmt.Sprint(event["product_id"]), event); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "error", err)
	}
}

func (h *ProductHandler) bindProduct(c echo.Context) (*transport.ProductRequest, error) {
	var req transport.ProductRequest
	if err := c.Bind(&req); err != nil {
		return nil, fail(c, http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return nil, validationFailed(c, err)
	}
	return &req, nil
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	req, err := h.bindProduct(c)
	if req == nil {
		return err
	}

	row, err := h.Products.Create(ctx, service.ProductAttrs{
		Name:        req.Name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
	}, mw.UserID(c))
	if err != nil {
		return internalError(c)
	}

	h.publish(c, map[string]interface{}{
		"type":       "product_created",
		"product_id": row.ID,
		"owner_id":   row.UserID,
	})

	return created(c, "Product created successfully", row)
}

func (h *ProductHandler) MyProducts(c echo.Context) error {
	items, err := h.Products.ListMine(c.Request().Context(), mw.UserID(c))
	if err != nil {
		return internalError(c)
	}
	return ok(c, "", items)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, okID := paramUint(c, "productId")
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}

	req, err := h.bindProduct(c)
	if req == nil {
		return err
	}

	row, err := h.Products.Update(ctx, id, service.ProductAttrs{
		Name:        req.Name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Description: req.Description,
	}, mw.UserID(c))
	if err != nil {
		if errors.Is(err, apperr.ErrNotYourProduct) {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		return internalError(c)
	}

	h.publish(c, map[string]interface{}{
		"type":       "product_updated",
		"product_id": row.ID,
		"owner_id":   row.UserID,
	})

	return ok(c, "Product updated successfully", row)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, okID := paramUint(c, "productId")
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}

	if err := h.Products.Delete(c.Request().Context(), id, mw.UserID(c)); err != nil {
		if errors.Is(err, apperr.ErrNotYourProduct) {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		return internalError(c)
	}

	h.publish(c, map[string]interface{}{"type": "product_deleted", "product_id": id})
	return ok(c, "Product deleted successfully", nil)
}

func (h *ProductHandler) ApprovedProducts(c echo.Context) error {
	items, err := h.Products.ListApproved(c.Request().Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, "", items)
}

func (h *ProductHandler) AllProductsForAdmin(c echo.Context) error {
	items, err := h.Products.ListAllForAdmin(c.Request().Context())
	if err != nil {
		return internalError(c)
	}
	return ok(c, "", items)
}

func (h *ProductHandler) ApproveProduct(c echo.Context) error {
	return h.moderate(c, "approve")
}

func (h *ProductHandler) DisapproveProduct(c echo.Context) error {
	return h.moderate(c, "disapprove")
}

func (h *ProductHandler) moderate(c echo.Context, action string) error {
	id, okID := paramUint(c, "productId")
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}

	var err error
	if action == "approve" {
		err = h.Products.Approve(c.Request().Context(), id)
	} else {
		err = h.Products.Disapprove(c.Request().Context(), id)
	}
	if err != nil {
		if errors.Is(err, apperr.ErrProductNotFound) {
			return fail(c, http.StatusBadRequest, err.Error())
		}
		return internalError(c)
	}

	h.publish(c, map[string]interface{}{"type": "product_" + action + "d", "product_id": id})

	if action == "approve" {
		return ok(c, "Product approved successfully", nil)
	}
	return ok(c, "Product disapproved successfully", nil)
}

// GetProduct is the public by-id lookup. It does not filter by status, so a
// pending or disapproved product is still fetchable when the id is known.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, okID := paramUint(c, "productId")
	if !okID {
		return fail(c, http.StatusBadRequest, "invalid product id")
	}

	row, err := h.Products.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperr.ErrProductNotFound) {
			return fail(c, http.StatusNotFound, err.Error())
		}
		return internalError(c)
	}

	return ok(c, "", row)
}
