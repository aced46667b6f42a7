package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-system/internal/application/dto"
	"github.com/jhoicas/inventario-system/internal/application/usecase"
	"github.com/jhoicas/inventario-system/pkg/logger"
)

// ProductHandler maneja las peticiones HTTP para Product (protegido).
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	val *Validator
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, val *Validator, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, val: val, log: log}
}

// List godoc
// @Summary      Listar productos
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        searchTerm  query  string  false  "Texto en nombre o descripción"
// @Param        category    query  string  false  "Categoría exacta"
// @Success      200  {object}  dto.Envelope{data=[]dto.ProductResponse}
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var q dto.ProductQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("INVALID_QUERY", "parámetros de consulta inválidos"))
	}
	out, err := h.uc.List(c.UserContext(), q)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out, "")
}

// LowStock godoc
// @Summary      Productos con inventario bajo
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]dto.ProductResponse}
// @Router       /api/products/low-stock [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.ListLowStock(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out, "")
}

// Categories godoc
// @Summary      Categorías distintas
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.Envelope{data=[]string}
// @Router       /api/products/categories [get]
func (h *ProductHandler) Categories(c *fiber.Ctx) error {
	out, err := h.uc.Categories(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out, "")
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope{data=dto.ProductResponse}
// @Failure      404  {object}  dto.Envelope
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out, "")
}

// Create godoc
// @Summary      Crear producto
// @Description  Si la cantidad inicial es menor a 5 se notifica a los administradores.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.Envelope{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      403   {object}  dto.Envelope
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if valid, err := h.val.parseAndValidate(c, &in); !valid {
		return err
	}
	out, err := h.uc.Create(c.UserContext(), in, GetUserID(c))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Location("/api/products/" + out.ID)
	return ok(c, fiber.StatusCreated, out, "Producto creado exitosamente")
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.Envelope{data=dto.ProductResponse}
// @Failure      400   {object}  dto.Envelope
// @Failure      404   {object}  dto.Envelope
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if valid, err := h.val.parseAndValidate(c, &in); !valid {
		return err
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, out, "Producto actualizado exitosamente")
}

// Delete godoc
// @Summary      Eliminar producto (borrado lógico)
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, nil, "Producto eliminado exitosamente")
}

// ReportLowStock godoc
// @Summary      Reportar falta de stock
// @Description  Avisa a los administradores aunque la cantidad no esté bajo el umbral.
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.Envelope
// @Failure      404  {object}  dto.Envelope
// @Router       /api/products/{id}/report-low-stock [post]
func (h *ProductHandler) ReportLowStock(c *fiber.Ctx) error {
	if err := h.uc.ReportLowStock(c.UserContext(), c.Params("id"), GetUserID(c)); err != nil {
		return writeError(c, h.log, err)
	}
	return ok(c, fiber.StatusOK, nil, "Reporte enviado exitosamente a los administradores")
}
