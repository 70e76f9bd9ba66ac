package handler

import (
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sweetcrumb/menu-system/internal/core/domain"
	"github.com/sweetcrumb/menu-system/internal/core/ports"
)

// MenuHandler handles HTTP requests for menu item operations.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// Create handles POST /api/menu.
//
// @Summary      Create a new menu item
// @Tags         menu
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "Item name"
// @Param        description  formData  string  true   "Item description"
// @Param        price        formData  string  true   "Price"
// @Param        stock        formData  int     false  "Initial stock (default 0)"
// @Param        image        formData  file    true   "Item image"
// @Success      201  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/menu [post]
func (h *MenuHandler) Create(c echo.Context) error {
	stock := 0
	if raw := c.FormValue("stock"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "stock must be a non-negative integer")
		}
		stock = n
	}

	file, err := c.FormFile("image")
	if err != nil {
		return domain.ErrMissingFields
	}
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	created, err := h.service.Create(c.Request().Context(), ports.CreateMenuItemInput{
		Name:        c.FormValue("name"),
		Description: c.FormValue("description"),
		Price:       c.FormValue("price"),
		Stock:       stock,
		Image:       toImageUpload(file, src),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{
		Message: "Menu item created successfully",
		Menu:    toMenuItemResponse(created),
	})
}

// List handles GET /api/menu. The response is the bare array, newest first.
//
// @Summary      List all menu items
// @Tags         menu
// @Produce      json
// @Success      200  {array}   menuItemResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/menu [get]
func (h *MenuHandler) List(c echo.Context) error {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMenuItemResponses(items))
}

// Update handles PUT /api/menu/:id. Only supplied form fields are changed;
// an attached image replaces the stored URL.
//
// @Summary      Update a menu item
// @Tags         menu
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      string  true   "Item ID"
// @Param        name         formData  string  false  "Item name"
// @Param        description  formData  string  false  "Item description"
// @Param        price        formData  string  false  "Price"
// @Param        stock        formData  int     false  "Stock"
// @Param        image        formData  file    false  "Replacement image"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/menu/{id} [put]
func (h *MenuHandler) Update(c echo.Context) error {
	var input ports.UpdateMenuItemInput

	if v := c.FormValue("name"); v != "" {
		input.Name = &v
	}
	if v := c.FormValue("description"); v != "" {
		input.Description = &v
	}
	if v := c.FormValue("price"); v != "" {
		input.Price = &v
	}
	if raw := c.FormValue("stock"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "stock must be a non-negative integer")
		}
		input.Stock = &n
	}

	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			return err
		}
		defer src.Close()
		input.Image = toImageUpload(file, src)
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "Menu item updated successfully",
		Menu:    toMenuItemResponse(updated),
	})
}

// UpdateStock handles PATCH /api/menu/:id/stock — the narrow stock-only
// write path.
//
// @Summary      Update stock for a menu item
// @Tags         menu
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Item ID"
// @Param        body  body      updateStockRequest  true  "New stock count"
// @Success      200  {object}  messageResponse
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/menu/{id}/stock [patch]
func (h *MenuHandler) UpdateStock(c echo.Context) error {
	var req updateStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Stock == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Stock value is required")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.UpdateStock(c.Request().Context(), c.Param("id"), *req.Stock)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "Stock updated successfully",
		Menu:    toMenuItemResponse(updated),
	})
}

// Delete handles DELETE /api/menu/:id and returns the deleted snapshot.
//
// @Summary      Delete a menu item
// @Tags         menu
// @Produce      json
// @Param        id  path  string  true  "Item ID"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/menu/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "Menu item deleted successfully",
		Menu:    toMenuItemResponse(deleted),
	})
}

func toImageUpload(file *multipart.FileHeader, src multipart.File) *ports.ImageUpload {
	return &ports.ImageUpload{
		Filename:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
		Size:        file.Size,
		Content:     src,
	}
}
