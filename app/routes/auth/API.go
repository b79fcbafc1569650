package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/dataset"
	"github.com/IRONDEM2921-beep/COEP-Academic-Planner-FY-SEM-II/app/schedule"
)

var loader *dataset.Loader

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		MIS string `json:"mis" validate:"required"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if req.MIS == "" {
		return c.Status(400).JSON(fiber.Map{"error": "MIS is required"})
	}

	ds, err := loader.Load()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load roster data"})
	}

	enrollments, name, branch := schedule.ResolveEnrollments(req.MIS, ds.Rosters)
	if len(enrollments) == 0 {
		return c.Status(404).JSON(fiber.Map{"error": "MIS not found"})
	}

	token, err := GenerateSessionToken(req.MIS, name, branch)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate session token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"profile": fiber.Map{
			"mis":    req.MIS,
			"name":   name,
			"branch": branch,
		},
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	return c.JSON(fiber.Map{"message": "Logged out"})
}
