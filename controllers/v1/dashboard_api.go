package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"labo-isometeer-backend/controllers"
	dashboardhandler "labo-isometeer-backend/lib/dashboard"
	"labo-isometeer-backend/middleware"
	apimodels "labo-isometeer-backend/models/api"
	dashboardapimodels "labo-isometeer-backend/models/api/dashboard"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("workload", controller.workload)
		router.Get("workload/export", controller.exportWorkload)
		router.Get("stats", controller.stats)
		router.Route("workload/order", func(orderRoute fiber.Router) {
			orderRoute.Put("up", controller.moveUp)
			orderRoute.Put("down", controller.moveDown)
			orderRoute.Put("top", controller.moveToTop)
			orderRoute.Put("bottom", controller.moveToBottom)
		})
	})
}

// @Summary Tablero de carga de trabajo
// @Tags Tablero
// @Description Tablero de carga por empleado, con el orden de filas del usuario
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]dashboardapimodels.WorkloadRecord}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/workload [get]
func (c *dashboardApiController) workload(ctx *fiber.Ctx) error {
	list, err := dashboardhandler.Instance.GetWorkload(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error armando el tablero de carga")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Exportar tablero de carga
// @Tags Tablero
// @Description Exportar el tablero de carga en xlsx
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/workload/export [get]
func (c *dashboardApiController) exportWorkload(ctx *fiber.Ctx) error {
	buf, err := dashboardhandler.Instance.ExportWorkload(middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error exportando el tablero de carga")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, "attachment; filename=carga-de-trabajo.xlsx")
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Estadísticas generales
// @Tags Tablero
// @Description Totales por estado de OT y de facturación
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.StatsView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/stats [get]
func (c *dashboardApiController) stats(ctx *fiber.Ctx) error {
	stats, err := dashboardhandler.Instance.GetStats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error obteniendo las estadísticas")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(stats))
}

// @Summary Subir empleado en el tablero
// @Tags Tablero
// @Description Subir una posición la fila del empleado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dashboardapimodels.OrderOpRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/workload/order/up [put]
func (c *dashboardApiController) moveUp(ctx *fiber.Ctx) error {
	return c.orderOp(ctx, dashboardhandler.Instance.MoveUp)
}

// @Summary Bajar empleado en el tablero
// @Tags Tablero
// @Description Bajar una posición la fila del empleado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dashboardapimodels.OrderOpRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/workload/order/down [put]
func (c *dashboardApiController) moveDown(ctx *fiber.Ctx) error {
	return c.orderOp(ctx, dashboardhandler.Instance.MoveDown)
}

// @Summary Mover empleado al tope del tablero
// @Tags Tablero
// @Description Mover la fila del empleado al primer lugar
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dashboardapimodels.OrderOpRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/workload/order/top [put]
func (c *dashboardApiController) moveToTop(ctx *fiber.Ctx) error {
	return c.orderOp(ctx, dashboardhandler.Instance.MoveToTop)
}

// @Summary Mover empleado al final del tablero
// @Tags Tablero
// @Description Mover la fila del empleado al último lugar
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 dashboardapimodels.OrderOpRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/workload/order/bottom [put]
func (c *dashboardApiController) moveToBottom(ctx *fiber.Ctx) error {
	return c.orderOp(ctx, dashboardhandler.Instance.MoveToBottom)
}

func (c *dashboardApiController) orderOp(ctx *fiber.Ctx, op func(userID, name string) error) error {
	var payload dashboardapimodels.OrderOpRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := op(middleware.GetUserID(ctx), payload.Name)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Error reordenando el tablero")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
