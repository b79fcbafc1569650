package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
)

func SetupAuthRoutes(app *fiber.App, l *dataset.Loader) {
	loader = l

	api := app.Group("/api")
	api.Post("/login", LoginAPI)
	api.Post("/logout", LogoutAPI)
}

// AuthMiddleware resolves the logged-in MIS from the session cookie or
// a bearer token and stores it in locals. Requests without a valid
// session get a JSON 401.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies(sessionCookie)
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Not logged in"})
	}

	claims, err := ValidateSessionToken(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid or expired session"})
	}

	c.Locals("mis", claims.MIS)
	c.Locals("student_name", claims.Name)
	c.Locals("student_branch", claims.Branch)
	return c.Next()
}
