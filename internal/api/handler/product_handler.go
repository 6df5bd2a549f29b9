package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ecomarket/catalog-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog products.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// List handles GET /products.
//
// @Summary      List active, in-stock products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ListByCategory handles GET /products/category/:category_slug. It includes
// products of the category's direct subcategories.
//
// @Summary      List products of a category and its subcategories
// @Tags         products
// @Produce      json
// @Param        category_slug  path  string  true  "Category slug"
// @Success      200  {array}   domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /products/category/{category_slug} [get]
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	products, err := h.service.ListByCategorySlug(c.Request().Context(), c.Param("category_slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Detail handles GET /products/detail/:product_slug.
//
// @Summary      Get a product by slug
// @Tags         products
// @Produce      json
// @Param        product_slug  path  string  true  "Product slug"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /products/detail/{product_slug} [get]
func (h *ProductHandler) Detail(c echo.Context) error {
	product, err := h.service.GetBySlug(c.Request().Context(), c.Param("product_slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /products. The caller becomes the product's supplier.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      productRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), claims, ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /products/detail/:product_slug.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        product_slug  path      string          true  "Product slug"
// @Param        body          body      productRequest  true  "Product details"
// @Success      200  {object}  domain.Product
// @Failure      400  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/detail/{product_slug} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), claims, c.Param("product_slug"), ports.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		Stock:       req.Stock,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id. The product is deactivated, not
// removed.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Product id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), claims, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
