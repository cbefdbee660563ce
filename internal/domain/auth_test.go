package domain

import (
	"testing"

	"github.com/hieuduy1751/paio/internal/model"
	"github.com/hieuduy1751/paio/internal/repository"
	"github.com/hieuduy1751/paio/pkg/errorx"
	"github.com/hieuduy1751/paio/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func Test_authDomain_RegisterThenLogin(t *testing.T) {
	ctx := testutil.MockContext()
	d := NewAuthDomain(repository.NewUserRepository())

	registerResp, err := d.Register(ctx, &model.RegisterRequest{
		Username: "alice",
		Password: "super-secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, registerResp.AccessToken)
	require.Equal(t, "alice", registerResp.User.Username)
	require.Equal(t, 1, registerResp.User.Level)
	require.Equal(t, 100, registerResp.User.ExpToNextLevel)

	loginResp, err := d.Login(ctx, &model.LoginRequest{
		Username: "alice",
		Password: "super-secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, loginResp.AccessToken)
	require.Equal(t, registerResp.User.ID, loginResp.User.ID)
}

func Test_authDomain_Register_Invalid(t *testing.T) {
	ctx := testutil.MockContext()
	d := NewAuthDomain(repository.NewUserRepository())

	testCases := []struct {
		name     string
		username string
		password string
	}{
		{name: "short username", username: "ab", password: "super-secret"},
		{name: "short password", username: "alice", password: "12345"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.Register(ctx, &model.RegisterRequest{
				Username: tc.username,
				Password: tc.password,
			})

			var errx errorx.Error
			require.ErrorAs(t, err, &errx)
			require.Equal(t, errorx.BadRequest, errx.Code)
		})
	}
}

func Test_authDomain_Register_DuplicateUsername(t *testing.T) {
	ctx := testutil.MockContext()
	d := NewAuthDomain(repository.NewUserRepository())

	_, err := d.Register(ctx, &model.RegisterRequest{Username: "bob", Password: "super-secret"})
	require.NoError(t, err)

	_, err = d.Register(ctx, &model.RegisterRequest{Username: "bob", Password: "other-secret"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.AlreadyExists, errx.Code)
}

func Test_authDomain_Login_WrongCredentials(t *testing.T) {
	ctx := testutil.MockContext()
	d := NewAuthDomain(repository.NewUserRepository())

	_, err := d.Register(ctx, &model.RegisterRequest{Username: "carol", Password: "super-secret"})
	require.NoError(t, err)

	_, err = d.Login(ctx, &model.LoginRequest{Username: "carol", Password: "wrong"})
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)

	_, err = d.Login(ctx, &model.LoginRequest{Username: "nobody", Password: "super-secret"})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Unauthenticated, errx.Code)
}
