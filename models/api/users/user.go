package usersapimodels

import (
	"github.com/pkg/errors"
	"office-workflow-backend/models"
	dbmodels "office-workflow-backend/models/db"
)

type UserCreateData struct {
	Username    string          `json:"username"`
	Password    string          `json:"password"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	Designation string          `json:"designation"`
	EmployeeID  string          `json:"employee_id"`
}

func (r UserCreateData) Validate() error {
	if r.Username == "" {
		return errors.Wrap(models.ErrValidation, "username is not specified")
	}
	if r.Password == "" {
		return errors.Wrap(models.ErrValidation, "password is not specified")
	}
	if !r.Role.IsValid() {
		return errors.Wrapf(models.ErrValidation, "unknown role: %v", r.Role)
	}
	return nil
}

type UserView struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Email       string          `json:"email"`
	Role        models.UserRole `json:"role"`
	RoleName    string          `json:"role_name"`
	Designation string          `json:"designation"`
	EmployeeID  string          `json:"employee_id,omitempty"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:          rec.ID,
		Username:    rec.Username,
		Email:       rec.Email,
		Role:        rec.Role,
		RoleName:    rec.Role.ToHuman(),
		Designation: rec.Designation,
		EmployeeID:  rec.EmployeeID,
	}
}
