package queries

import (
	"github.com/DedS3t/monopoly-engine/app/models"
	"github.com/go-pg/pg/v10"
)

func GetUserData(userId string, db *pg.DB) (models.User, error) {
	user := &models.User{Id: userId}
	err := db.Model(user).WherePK().Select()
	return *user, err
}

func GetUserByEmail(email string, db *pg.DB) (models.User, error) {
	user := new(models.User)
	err := db.Model(user).Where("email = ?", email).Select()
	return *user, err
}
