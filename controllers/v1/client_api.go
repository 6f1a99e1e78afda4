package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"labo-isometeer-backend/controllers"
	clienthandler "labo-isometeer-backend/lib/client"
	"labo-isometeer-backend/middleware"
	"labo-isometeer-backend/models"
	apimodels "labo-isometeer-backend/models/api"
	clientapimodels "labo-isometeer-backend/models/api/client"
)

type clientApiController struct {
	controllers.BaseAPIController
}

func InitClientApiRouters(app *fiber.App) {
	controller := clientApiController{}
	app.Route("client", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Post("list", controller.list)
		router.Use(middleware.RoleRequired(models.UserRoleDirector, models.UserRoleFacturacion))
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Creación de cliente
// @Tags Clientes
// @Description Creación de cliente
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 clientapimodels.ClientData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client [post]
func (c *clientApiController) create(ctx *fiber.Ctx) error {
	var payload clientapimodels.ClientData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := clienthandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error creando el cliente")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Obtener cliente por ID
// @Tags Clientes
// @Description Obtener cliente por ID
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response{data=clientapimodels.ClientView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id} [get]
func (c *clientApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := clienthandler.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo el cliente")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Actualización de cliente
// @Tags Clientes
// @Description Actualización de cliente
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 clientapimodels.ClientData	true	"request body"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id} [put]
func (c *clientApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	var payload clientapimodels.ClientData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = clienthandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error actualizando el cliente")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Eliminación de cliente
// @Tags Clientes
// @Description Eliminación de cliente
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id} [delete]
func (c *clientApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = clienthandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error eliminando el cliente")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Lista de clientes
// @Tags Clientes
// @Description Lista de clientes
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 clientapimodels.ClientListRequest	true	"request body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]clientapimodels.ClientView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/list [post]
func (c *clientApiController) list(ctx *fiber.Ctx) error {
	var payload clientapimodels.ClientListRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	list, rowCount, err := clienthandler.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo la lista de clientes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
