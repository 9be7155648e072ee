package authhandler_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"office-workflow-backend/config"
	authhandler "office-workflow-backend/lib/auth"
	"office-workflow-backend/lib/testdb"
	usersstore "office-workflow-backend/lib/users/store"
	authutils "office-workflow-backend/lib/utils/auth-utils"
	"office-workflow-backend/models"
	dbmodels "office-workflow-backend/models/db"
)

func TestLogin(t *testing.T) {
	conn := testdb.New(t)
	handler := authhandler.NewHandlerWithTx(conn)

	userID, err := usersstore.NewInstance(conn).Create(dbmodels.User{
		Username:   "master_admin",
		Password:   authutils.GetMD5Hash("master"),
		Role:       models.MasterRole,
		EmployeeID: "EMP-1",
	})
	require.NoError(t, err)

	resp, err := handler.Login("master_admin", "master")
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	require.Equal(t, userID, claims["sub"])
	require.Equal(t, string(models.MasterRole), claims["role"])
	require.Equal(t, "master_admin", claims["name"])
	require.Equal(t, "EMP-1", claims["employee_id"])
}

func TestLoginWrongPassword(t *testing.T) {
	conn := testdb.New(t)
	handler := authhandler.NewHandlerWithTx(conn)

	_, err := usersstore.NewInstance(conn).Create(dbmodels.User{
		Username: "master_admin",
		Password: authutils.GetMD5Hash("master"),
		Role:     models.MasterRole,
	})
	require.NoError(t, err)

	_, err = handler.Login("master_admin", "wrong")
	require.EqualError(t, err, "invalid username or password")
}

func TestLoginUnknownUser(t *testing.T) {
	conn := testdb.New(t)
	handler := authhandler.NewHandlerWithTx(conn)

	// same generic message as a wrong password
	_, err := handler.Login("nobody", "whatever")
	require.EqualError(t, err, "invalid username or password")
}
