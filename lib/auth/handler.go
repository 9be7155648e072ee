package authhandler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"office-workflow-backend/db"
	usersstore "office-workflow-backend/lib/users/store"
	authutils "office-workflow-backend/lib/utils/auth-utils"
	authapimodels "office-workflow-backend/models/api/auth"
	usersapimodels "office-workflow-backend/models/api/users"
)

type Provider interface {
	Login(username, password string) (response authapimodels.JWTResponse, err error)
	Me(ctx *fiber.Ctx) (usersapimodels.UserView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: usersstore.NewInstance(db.DB),
	}
}

func NewHandlerWithTx(tx *gorm.DB) Provider {
	return impl{
		store: usersstore.NewInstance(tx),
	}
}

type impl struct {
	store usersstore.Provider
}

// Login returns a generic failure on either a missing user or a wrong
// password, without revealing which one it was.
func (i impl) Login(username, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("username", username)
	user, err := i.store.FindByUsername(username)
	if err != nil {
		logger.
			WithError(err).
			Error("failed to look up user")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil || authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("credential check failed")
		return authapimodels.JWTResponse{}, errors.New("invalid username or password")
	}
	tokenString, err := authutils.GetToken(user.ID, user.Username, user.Role, user.EmployeeID)
	if err != nil {
		logger.WithError(err).Error("failed to sign JWT")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token: tokenString,
	}, nil
}

func (i impl) Me(ctx *fiber.Ctx) (usersapimodels.UserView, error) {
	claims := authutils.GetClaims(ctx)
	sub, _ := claims["sub"].(string)
	user, err := i.store.GetByID(sub)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if user == nil {
		return usersapimodels.UserView{}, errors.New("user not found")
	}
	return usersapimodels.UserConvert(*user), nil
}
