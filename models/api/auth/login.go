package authapimodels

import "github.com/pkg/errors"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if r.Username == "" {
		return errors.New("username is not specified")
	}
	if r.Password == "" {
		return errors.New("password is not specified")
	}
	return nil
}

type JWTResponse struct {
	Token string `json:"access_token"`
}
