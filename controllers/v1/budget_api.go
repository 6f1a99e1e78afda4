package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"labo-isometeer-backend/controllers"
	budgethandler "labo-isometeer-backend/lib/budget"
	"labo-isometeer-backend/middleware"
	"labo-isometeer-backend/models"
	apimodels "labo-isometeer-backend/models/api"
	budgetapimodels "labo-isometeer-backend/models/api/budget"
)

type budgetApiController struct {
	controllers.BaseAPIController
}

func InitBudgetApiRouters(app *fiber.App) {
	controller := budgetApiController{}
	app.Route("budget", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.RoleRequired(models.UserRoleDirector, models.UserRoleFacturacion))
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("approve", controller.approve)
			idRoute.Put("reject", controller.reject)
		})
	})
}

// @Summary Creación de presupuesto
// @Tags Presupuestos
// @Description Creación de presupuesto
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 budgetapimodels.BudgetData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/budget [post]
func (c *budgetApiController) create(ctx *fiber.Ctx) error {
	var payload budgetapimodels.BudgetData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := budgethandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creando el presupuesto")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Obtener presupuesto por ID
// @Tags Presupuestos
// @Description Obtener presupuesto por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=budgetapimodels.BudgetView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/budget/{id} [get]
func (c *budgetApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := budgethandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo el presupuesto")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Lista de presupuestos
// @Tags Presupuestos
// @Description Lista de presupuestos con filtros por estado y cliente
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 budgetapimodels.BudgetListRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]budgetapimodels.BudgetView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/budget/list [post]
func (c *budgetApiController) list(ctx *fiber.Ctx) error {
	var payload budgetapimodels.BudgetListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := budgethandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo la lista de presupuestos")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Actualización de presupuesto
// @Tags Presupuestos
// @Description Actualización de presupuesto pendiente
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 budgetapimodels.BudgetData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/budget/{id} [put]
func (c *budgetApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload budgetapimodels.BudgetData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = budgethandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error actualizando el presupuesto")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Aprobar presupuesto
// @Tags Presupuestos
// @Description Aprobar presupuesto, con opción de crear la OT sin autorizar
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 budgetapimodels.ApproveRequest	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/budget/{id}/approve [put]
func (c *budgetApiController) approve(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload budgetapimodels.ApproveRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	workOrderID, err := budgethandler.Instance.Approve(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error aprobando el presupuesto")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(workOrderID))
}

// @Summary Rechazar presupuesto
// @Tags Presupuestos
// @Description Rechazar presupuesto pendiente
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/budget/{id}/reject [put]
func (c *budgetApiController) reject(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = budgethandler.Instance.Reject(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error rechazando el presupuesto")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eliminación de presupuesto
// @Tags Presupuestos
// @Description Eliminación de presupuesto no aprobado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/budget/{id} [delete]
func (c *budgetApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = budgethandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando el presupuesto")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
