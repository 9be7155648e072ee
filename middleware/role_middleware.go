package middleware

import (
	"github.com/gofiber/fiber/v2"

	authutils "office-workflow-backend/lib/utils/auth-utils"
	"office-workflow-backend/models"
	apimodels "office-workflow-backend/models/api"
)

func MasterRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !GetUserRole(ctx).IsMaster() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
		}
		return ctx.Next()
	}
}

func TeamRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := GetUserRole(ctx)
		if !role.IsTeam() && !role.IsMaster() {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("operation not permitted"))
		}
		return ctx.Next()
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
		if stringName, ok := name.(string); ok {
			return stringName
		}
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

// GetViewer builds the visibility scope for list and detail queries.
// The employee id claim is optional, a requester without one matches
// no submitted requests.
func GetViewer(ctx *fiber.Ctx) models.Viewer {
	claims := authutils.GetClaims(ctx)
	viewer := models.Viewer{
		Role: GetUserRole(ctx),
		Name: GetUserName(ctx),
	}
	if employeeID, exist := claims["employee_id"]; exist {
		if stringID, ok := employeeID.(string); ok {
			viewer.EmployeeID = stringID
		}
	}
	return viewer
}
