package controllers

import (
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/DedS3t/monopoly-engine/pkg"
	"github.com/DedS3t/monopoly-engine/platform/agents"
	"github.com/DedS3t/monopoly-engine/platform/database"
	"github.com/DedS3t/monopoly-engine/platform/sessions"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

func CreateGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	gameCreateDto := new(models.GameCreateDto)
	if err := c.BodyParser(gameCreateDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	game := &models.Game{
		Id:     pkg.RandString(8),
		Name:   gameCreateDto.Name,
		Status: "open",
	}
	if _, err := db.Model(game).Insert(); err != nil {
		log.WithError(err).Error("failed creating lobby game")
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.JSON(fiber.Map{"id": game.Id})
}

func GetAllAvailGames(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	var games []models.Game
	if err := db.Model(&games).Where("status = ?", "open").Select(); err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(games)
}

func VerifyGame(c *fiber.Ctx) error {
	db := database.PostgreSQLConnection()
	defer db.Close()

	verifyGameDto := new(models.VerifyGameDto)
	if err := c.QueryParser(verifyGameDto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	game := &models.Game{Id: verifyGameDto.Code}
	if err := db.Model(game).WherePK().Select(); err != nil {
		return c.JSON(fiber.Map{"status": false})
	}
	return c.JSON(fiber.Map{"status": true})
}

// GetSessionState serves the live snapshot of a running game.
func GetSessionState(c *fiber.Ctx) error {
	session, ok := sessions.Get(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(session.Game.Snapshot())
}

// GetSessionLog serves the capped event log, read-only.
func GetSessionLog(c *fiber.Ctx) error {
	session, ok := sessions.Get(c.Params("id"))
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(session.Game.Log.Entries())
}

// GetConfig reports whether a server-side LLM API key is present, so
// clients know if remote agents are available without one of their own.
func GetConfig(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"hasServerApiKey": agents.HasServerKey()})
}
