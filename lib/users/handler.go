package usershandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"office-workflow-backend/db"
	usersstore "office-workflow-backend/lib/users/store"
	authutils "office-workflow-backend/lib/utils/auth-utils"
	"office-workflow-backend/models"
	usersapimodels "office-workflow-backend/models/api/users"
	dbmodels "office-workflow-backend/models/db"
)

type Provider interface {
	Create(data usersapimodels.UserCreateData) (id string, err error)
	List() ([]usersapimodels.UserView, error)
	GetByID(id string) (usersapimodels.UserView, error)
	Delete(id string) error
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

func (i impl) Create(data usersapimodels.UserCreateData) (id string, err error) {
	logger := log.WithField("username", data.Username)
	if err = data.Validate(); err != nil {
		return "", err
	}
	existing, err := i.store.FindByUsername(data.Username)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", errors.Errorf("username %v is already taken", data.Username)
	}
	rec := dbmodels.User{
		Username:    data.Username,
		Password:    authutils.GetMD5Hash(data.Password),
		Email:       data.Email,
		Role:        data.Role,
		Designation: data.Designation,
		EmployeeID:  data.EmployeeID,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to create user")
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("user created")
	return id, nil
}

func (i impl) List() ([]usersapimodels.UserView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]usersapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, usersapimodels.UserConvert(rec))
	}
	return result, nil
}

func (i impl) GetByID(id string) (usersapimodels.UserView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return usersapimodels.UserView{}, err
	}
	if rec == nil {
		return usersapimodels.UserView{}, errors.Wrapf(models.ErrNotFound, "user %v", id)
	}
	return usersapimodels.UserConvert(*rec), nil
}

// Delete does not check for tasks assigned by the user: assignments
// keep the assigner id as a historical reference.
func (i impl) Delete(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Wrapf(models.ErrNotFound, "user %v", id)
	}
	err = i.store.Delete(id)
	if err != nil {
		logger.WithError(err).Error("failed to delete user")
		return err
	}
	logger.Info("user deleted")
	return nil
}
