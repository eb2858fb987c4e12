package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesmgmt/sales-system/internal/core/domain"
	"github.com/salesmgmt/sales-system/internal/core/ports"
)

// ProductHandler handles the product catalogue. All routes are guarded by
// the auth middleware; the authenticated subject becomes the default owner
// of products it creates.
type ProductHandler struct {
	productService ports.ProductService
}

func NewProductHandler(productService ports.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

type productRequest struct {
	Name          string  `json:"name"        validate:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"       validate:"required,gt=0"`
	Stock         int     `json:"stock"       validate:"gte=0"`
	ImageURL      string  `json:"image_url"`
	SalespersonID int     `json:"salesperson_id"`
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	// The creating salesperson owns the product unless the payload names
	// another owner explicitly.
	if req.SalespersonID == 0 {
		userID, err := ctxUserID(c)
		if err != nil {
			return err
		}
		req.SalespersonID = userID
	}

	product := domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Stock:         req.Stock,
		ImageURL:      req.ImageURL,
		SalespersonID: req.SalespersonID,
	}
	if err := h.productService.Create(c.Request().Context(), &product); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// List handles GET /api/products.
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.productService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Update handles PUT /api/products/:id.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	err = h.productService.Update(c.Request().Context(), id, &domain.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		Stock:         req.Stock,
		ImageURL:      req.ImageURL,
		SalespersonID: req.SalespersonID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product updated"})
}

// Delete handles DELETE /api/products/:id.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "product deleted"})
}
