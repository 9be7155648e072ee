package db

import (
	log "github.com/sirupsen/logrus"

	"office-workflow-backend/config"
	settingsstore "office-workflow-backend/lib/settings/store"
	usersstore "office-workflow-backend/lib/users/store"
	authutils "office-workflow-backend/lib/utils/auth-utils"
	"office-workflow-backend/models"
	dbmodels "office-workflow-backend/models/db"
)

func InitPreload() {
	addMasterAdmin()
	addTeamUsers()
	addDefaultSettings()
}

func addMasterAdmin() {
	store := usersstore.NewInstance(DB)
	existedRec, err := store.FindByUsername(config.Conf.Master.Username)
	if err != nil {
		log.WithError(err).Error("failed to add master admin")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.User{
		Username:    config.Conf.Master.Username,
		Password:    authutils.GetMD5Hash(config.Conf.Master.Password),
		Email:       config.Conf.Master.Email,
		Role:        models.MasterRole,
		Designation: "Master Admin",
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("failed to add master admin")
		return
	}
	log.
		WithField("username", config.Conf.Master.Username).
		Info("master admin added")
}

// addTeamUsers seeds one shared account per team so a fresh install is
// usable right away. Teams change the password themselves.
func addTeamUsers() {
	store := usersstore.NewInstance(DB)
	for _, role := range models.TeamRoles() {
		username := "team_" + string(role)
		existedRec, err := store.FindByUsername(username)
		if err != nil {
			log.WithError(err).Error("failed to add team user")
			return
		}
		if existedRec != nil {
			continue
		}
		rec := dbmodels.User{
			Username:    username,
			Password:    authutils.GetMD5Hash(username),
			Role:        role,
			Designation: role.ToHuman(),
		}
		if _, err = store.Create(rec); err != nil {
			log.WithError(err).Error("failed to add team user")
			return
		}
	}
}

func addDefaultSettings() {
	store := settingsstore.NewInstance(DB)
	existedRec, err := store.Get()
	if err != nil {
		log.WithError(err).Error("failed to add default settings")
		return
	}
	if existedRec != nil {
		return
	}
	err = store.Save(dbmodels.Setting{
		MasterNotificationEmail: config.Conf.Master.Email,
	})
	if err != nil {
		log.WithError(err).Error("failed to add default settings")
	}
}
