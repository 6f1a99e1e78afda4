package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"labo-isometeer-backend/controllers"
	invoicehandler "labo-isometeer-backend/lib/invoice"
	"labo-isometeer-backend/middleware"
	"labo-isometeer-backend/models"
	apimodels "labo-isometeer-backend/models/api"
	invoiceapimodels "labo-isometeer-backend/models/api/invoice"
)

type invoiceApiController struct {
	controllers.BaseAPIController
}

func InitInvoiceApiRouters(app *fiber.App) {
	controller := invoiceApiController{}
	app.Route("invoice", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RoleRequired(models.UserRoleDirector, models.UserRoleFacturacion))
		router.Post("list", controller.list)
		router.Post("export", controller.export)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("status", controller.changeStatus)
			idRoute.Get("pdf", controller.getPDF)
			idRoute.Post("send", controller.send)
		})
	})
}

// @Summary Creación de factura
// @Tags Facturas
// @Description Creación de factura en borrador
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 invoiceapimodels.InvoiceData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/invoice [post]
func (c *invoiceApiController) create(ctx *fiber.Ctx) error {
	var payload invoiceapimodels.InvoiceData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := invoicehandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creando la factura")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Obtener factura por ID
// @Tags Facturas
// @Description Obtener factura por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=invoiceapimodels.InvoiceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/invoice/{id} [get]
func (c *invoiceApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := invoicehandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo la factura")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Lista de facturas
// @Tags Facturas
// @Description Lista de facturas con filtros por estado y cliente
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 invoiceapimodels.InvoiceFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]invoiceapimodels.InvoiceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/invoice/list [post]
func (c *invoiceApiController) list(ctx *fiber.Ctx) error {
	var payload invoiceapimodels.InvoiceFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := invoicehandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo la lista de facturas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Actualización de factura
// @Tags Facturas
// @Description Actualización de factura en borrador
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 invoiceapimodels.InvoiceData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/invoice/{id} [put]
func (c *invoiceApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload invoiceapimodels.InvoiceData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = invoicehandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error actualizando la factura")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Cambiar estado de factura
// @Tags Facturas
// @Description Cambiar estado de factura según sus transiciones válidas
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 invoiceapimodels.StatusChangeRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/invoice/{id}/status [put]
func (c *invoiceApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload invoiceapimodels.StatusChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = invoicehandler.Instance.ChangeStatus(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error cambiando el estado de la factura")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eliminación de factura
// @Tags Facturas
// @Description Eliminación de factura en borrador
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/invoice/{id} [delete]
func (c *invoiceApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = invoicehandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando la factura")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Descargar factura en PDF
// @Tags Facturas
// @Description Descargar factura en PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/invoice/{id}/pdf [get]
func (c *invoiceApiController) getPDF(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, err := invoicehandler.Instance.GetPDF(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generando el PDF de la factura")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename="+fileName)
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Enviar factura por correo
// @Tags Facturas
// @Description Enviar la factura en PDF al correo indicado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 invoiceapimodels.SendRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/invoice/{id}/send [post]
func (c *invoiceApiController) send(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload invoiceapimodels.SendRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = invoicehandler.Instance.Send(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error enviando la factura")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Exportar libro de facturas
// @Tags Facturas
// @Description Exportar el libro de facturas en xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 invoiceapimodels.InvoiceFilter	true	"request body"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/invoice/export [post]
func (c *invoiceApiController) export(ctx *fiber.Ctx) error {
	var payload invoiceapimodels.InvoiceFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	buf, err := invoicehandler.Instance.ExportBook(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error exportando el libro de facturas")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename=facturas.xlsx")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
