package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "labo-isometeer-backend/lib/utils/auth-utils"
	"labo-isometeer-backend/models"
	apimodels "labo-isometeer-backend/models/api"
)

func AdminRequired() fiber.Handler {
	return RoleRequired(models.UserRoleAdmin)
}

// RoleRequired deja pasar a los administradores y a cualquiera de
// los roles indicados.
func RoleRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := GetUserRole(ctx)
		if role.IsAdmin() {
			return ctx.Next()
		}
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operación no disponible"))
	}
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if sub, exist := claims["sub"]; exist {
		return sub.(string)
	}
	return ""
}

func GetUserName(ctx *fiber.Ctx) string {
	claims := authutils.GetClaims(ctx)
	if name, exist := claims["name"]; exist {
		return name.(string)
	}
	return ""
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := authutils.GetClaims(ctx)
	if role, exist := claims["role"]; exist {
		if stringRole, ok := role.(string); ok && stringRole != "" {
			return models.UserRole(stringRole)
		}
	}
	return ""
}
