package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rafael/betterlife-api/internal/engine"
	"github.com/rafael/betterlife-api/internal/middleware"
)

// GetScore computes the score snapshot for one date (default today).
// Response shape matches what the dashboard consumes: total, porArea,
// multiplicadores.
func GetScore(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	date := time.Now()
	if q := c.Query("date"); q != "" {
		day, err := parseDay(q)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date, expected YYYY-MM-DD",
			})
		}
		date = day
	}

	events, actions, err := loadHistory(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load history",
		})
	}

	snap := engine.ComputeScore(date, events, actions)
	return c.JSON(fiber.Map{
		"date":            snap.Date.Format("2006-01-02"),
		"total":           snap.Total,
		"porArea":         snap.PerArea,
		"multiplicadores": snap.Multipliers,
	})
}

// GetScoreHistory computes one snapshot per day for the trailing N days
// (default 30, capped at 365), oldest first, for the evolution charts.
func GetScoreHistory(c *fiber.Ctx) error {
	userID := middleware.GetUserID(c)

	days := c.QueryInt("days", 30)
	if days < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "days must not be negative",
		})
	}
	if days > 365 {
		days = 365
	}

	events, actions, err := loadHistory(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load history",
		})
	}

	history := engine.ScoreHistory(time.Now(), days, events, actions)
	return c.JSON(history)
}
