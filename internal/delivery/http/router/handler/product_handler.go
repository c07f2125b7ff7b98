package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"easyshop/internal/delivery/http/response"
	"easyshop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ProductHandler holds dependencies for product browsing and admin handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

// Search handles GET /products with optional cat, minPrice, maxPrice and
// subCategory query filters. Absent parameters are not applied.
func (h *ProductHandler) Search(c echo.Context) error {
	input := &usecase.SearchProductsInput{}

	if raw := c.QueryParam("cat"); raw != "" {
		categoryID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid cat filter")
		}
		input.CategoryID = &categoryID
	}
	if raw := c.QueryParam("minPrice"); raw != "" {
		minPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid minPrice filter")
		}
		input.MinPrice = &minPrice
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid maxPrice filter")
		}
		input.MaxPrice = &maxPrice
	}
	if raw := c.QueryParam("subCategory"); raw != "" {
		input.SubCategory = &raw
	}

	products, err := h.uc.SearchProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "")
}

// ListGenres handles GET /products/genres.
func (h *ProductHandler) ListGenres(c echo.Context) error {
	genres, err := h.uc.ListGenres(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, genres, "")
}

// Get handles GET /products/:id.
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	product, err := h.uc.GetProduct(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "")
}

// Create handles POST /products. Admin only.
func (h *ProductHandler) Create(c echo.Context) error {
	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

// Update handles PUT /products/:id. Admin only.
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	var input *usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated")
}

// Delete handles DELETE /products/:id. Admin only.
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product id")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
