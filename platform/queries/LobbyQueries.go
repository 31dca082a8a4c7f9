package queries

import (
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/go-pg/pg/v10"
)

func VerifyGame(id string, db *pg.DB) bool {
	game := &models.Game{Id: id}
	err := db.Model(game).WherePK().Select()
	return err == nil
}

func CreateMember(member models.Member, db *pg.DB) error {
	_, err := db.Model(&member).Insert()
	return err
}

func DeleteMember(userId string, gameId string, db *pg.DB) error {
	member := new(models.Member)
	_, err := db.Model(member).Where("user_id = ? and game_id = ?", userId, gameId).Delete()
	CheckEmptyGame(gameId, db)
	return err
}

func GetMembers(gameId string, db *pg.DB) ([]models.Member, error) {
	var members []models.Member
	err := db.Model(&members).Where("game_id = ?", gameId).Select()
	return members, err
}

func SetGameStatus(gameId string, status string, db *pg.DB) error {
	game := &models.Game{Id: gameId}
	_, err := db.Model(game).WherePK().Set("status = ?", status).Update()
	return err
}

// CheckEmptyGame deletes lobby rows once the last member leaves.
func CheckEmptyGame(gameId string, db *pg.DB) {
	var members []models.Member
	err := db.Model(&members).Where("game_id = ?", gameId).Select()
	if err != nil || len(members) == 0 {
		game := new(models.Game)
		db.Model(game).Where("id = ?", gameId).Delete()
	}
}
