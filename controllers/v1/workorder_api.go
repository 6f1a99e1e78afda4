package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"labo-isometeer-backend/controllers"
	workorderhandler "labo-isometeer-backend/lib/workorder"
	"labo-isometeer-backend/middleware"
	"labo-isometeer-backend/models"
	apimodels "labo-isometeer-backend/models/api"
	otapimodels "labo-isometeer-backend/models/api/workorder"
)

type workOrderApiController struct {
	controllers.BaseAPIController
}

func InitWorkOrderApiRouters(app *fiber.App) {
	controller := workOrderApiController{}
	app.Route("ot", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("list", controller.list)
		router.Post("", middleware.RoleRequired(models.UserRoleDirector), controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", middleware.RoleRequired(models.UserRoleDirector), controller.update)
			idRoute.Delete("", middleware.AdminRequired(), controller.delete)
			idRoute.Put("authorize", middleware.RoleRequired(models.UserRoleDirector), controller.authorize)
			idRoute.Put("cancel", middleware.RoleRequired(models.UserRoleDirector), controller.cancel)
			idRoute.Post("contract", middleware.RoleRequired(models.UserRoleDirector), controller.attachContract)
			idRoute.Get("contract", controller.getContract)
			idRoute.Get("pdf", controller.getPDF)
			idRoute.Route("activity", func(actRoute fiber.Router) {
				actRoute.Post("", middleware.RoleRequired(models.UserRoleDirector), controller.addActivity)
				actRoute.Route(":activity_id", func(actIDRoute fiber.Router) {
					actIDRoute.Delete("", middleware.RoleRequired(models.UserRoleDirector), controller.deleteActivity)
					actIDRoute.Put("state", controller.changeActivityState)
					actIDRoute.Put("assign", middleware.RoleRequired(models.UserRoleDirector), controller.assign)
				})
			})
		})
	})
}

// @Summary Creación de OT
// @Tags Órdenes de trabajo
// @Description Creación de OT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 otapimodels.WorkOrderData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot [post]
func (c *workOrderApiController) create(ctx *fiber.Ctx) error {
	var payload otapimodels.WorkOrderData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := workorderhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creando la OT")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Obtener OT por ID
// @Tags Órdenes de trabajo
// @Description Obtener OT por ID, con su estado derivado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=otapimodels.WorkOrderView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot/{id} [get]
func (c *workOrderApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := workorderhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo la OT")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Lista de OT
// @Tags Órdenes de trabajo
// @Description Lista de OT con filtros por estado, cliente, tipo y fecha
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 otapimodels.WorkOrderFilter	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]otapimodels.WorkOrderView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot/list [post]
func (c *workOrderApiController) list(ctx *fiber.Ctx) error {
	var payload otapimodels.WorkOrderFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := workorderhandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo la lista de OT")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Actualización de OT
// @Tags Órdenes de trabajo
// @Description Actualización del título de la OT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 otapimodels.WorkOrderUpdate	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot/{id} [put]
func (c *workOrderApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload otapimodels.WorkOrderUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = workorderhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error actualizando la OT")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Autorizar OT
// @Tags Órdenes de trabajo
// @Description Autorizar OT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot/{id}/authorize [put]
func (c *workOrderApiController) authorize(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = workorderhandler.Instance.Authorize(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error autorizando la OT")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Anular OT
// @Tags Órdenes de trabajo
// @Description Anular OT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot/{id}/cancel [put]
func (c *workOrderApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = workorderhandler.Instance.Cancel(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error anulando la OT")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eliminación de OT
// @Tags Órdenes de trabajo
// @Description Eliminación de OT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot/{id} [delete]
func (c *workOrderApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = workorderhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando la OT")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Agregar actividad
// @Tags Órdenes de trabajo
// @Description Agregar actividad a la OT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 otapimodels.ActivityData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot/{id}/activity [post]
func (c *workOrderApiController) addActivity(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload otapimodels.ActivityData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actID, err := workorderhandler.Instance.AddActivity(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error agregando la actividad")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(actID))
}

// @Summary Eliminar actividad
// @Tags Órdenes de trabajo
// @Description Eliminar actividad de la OT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   activity_id    		path    string  				    	true         "activity ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot/{id}/activity/{activity_id} [delete]
func (c *workOrderApiController) deleteActivity(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actID, err := c.GetParam(ctx, "activity_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = workorderhandler.Instance.DeleteActivity(id, actID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando la actividad")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Cambiar estado de actividad
// @Tags Órdenes de trabajo
// @Description Cambiar estado de actividad (un paso por vez)
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 otapimodels.ActivityStateRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   activity_id    		path    string  				    	true         "activity ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot/{id}/activity/{activity_id}/state [put]
func (c *workOrderApiController) changeActivityState(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actID, err := c.GetParam(ctx, "activity_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload otapimodels.ActivityStateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = workorderhandler.Instance.ChangeActivityState(id, actID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error cambiando el estado de la actividad")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Asignar actividad
// @Tags Órdenes de trabajo
// @Description Reemplazar los asignados de la actividad
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 otapimodels.AssignRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   activity_id    		path    string  				    	true         "activity ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot/{id}/activity/{activity_id}/assign [put]
func (c *workOrderApiController) assign(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	actID, err := c.GetParam(ctx, "activity_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload otapimodels.AssignRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = workorderhandler.Instance.Assign(id, actID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error asignando la actividad")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Adjuntar contrato
// @Tags Órdenes de trabajo
// @Description Adjuntar el contrato firmado de la OT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Param   file				formData	file	true	"contract file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot/{id}/contract [post]
func (c *workOrderApiController) attachContract(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("falta el archivo del contrato"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error leyendo el archivo del contrato")
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error leyendo el archivo del contrato")
	}
	contentType := fileHeader.Header.Get("Content-Type")
	err = workorderhandler.Instance.AttachContract(ctx.Context(), id, fileHeader.Filename, body, contentType)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error adjuntando el contrato")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Descargar contrato
// @Tags Órdenes de trabajo
// @Description Descargar el contrato de la OT
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot/{id}/contract [get]
func (c *workOrderApiController) getContract(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, err := workorderhandler.Instance.GetContract(ctx.Context(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error descargando el contrato")
	}
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename="+fileName)
	return ctx.Status(fiber.StatusOK).Send(body)
}

// @Summary Descargar hoja de ruta en PDF
// @Tags Órdenes de trabajo
// @Description Descargar la hoja de ruta de la OT en PDF
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/ot/{id}/pdf [get]
func (c *workOrderApiController) getPDF(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileName, body, err := workorderhandler.Instance.GetPDF(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error generando el PDF de la OT")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename="+fileName)
	return ctx.Status(fiber.StatusOK).Send(body)
}
