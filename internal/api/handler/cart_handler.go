package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesmgmt/sales-system/internal/api/metrics"
	"github.com/salesmgmt/sales-system/internal/core/domain"
	"github.com/salesmgmt/sales-system/internal/core/ports"
)

// CartHandler handles customer shopping carts.
type CartHandler struct {
	cartService ports.CartService
}

func NewCartHandler(cartService ports.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type addCartItemRequest struct {
	CustomerID int     `json:"customer_id" validate:"required,gt=0"`
	ProductID  int     `json:"product_id"  validate:"required,gt=0"`
	Quantity   int     `json:"quantity"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"image_url"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Add handles POST /api/cart. Adding a product already in the cart
// increments the existing line instead of duplicating it.
//
// @Summary      Add an item to a customer's cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addCartItemRequest  true  "Cart line"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	item := domain.CartItem{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		Quantity:   req.Quantity,
		Name:       req.Name,
		Price:      req.Price,
		ImageURL:   req.ImageURL,
	}
	if err := h.cartService.AddItem(c.Request().Context(), &item); err != nil {
		return err
	}

	metrics.CartItemsAddedTotal.Inc()
	return c.JSON(http.StatusCreated, map[string]string{"message": "item added to cart"})
}

// Get handles GET /api/cart/:customerId.
func (h *CartHandler) Get(c echo.Context) error {
	customerID, err := pathID(c, "customerId")
	if err != nil {
		return err
	}

	items, err := h.cartService.ListByCustomer(c.Request().Context(), customerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Update handles PUT /api/cart/:id. A zero or negative quantity removes
// the line.
func (h *CartHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	if err := h.cartService.UpdateQuantity(c.Request().Context(), id, req.Quantity); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "cart updated"})
}

// Delete handles DELETE /api/cart/:id.
func (h *CartHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.cartService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "item removed"})
}
