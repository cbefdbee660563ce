package authenticator

import (
	"testing"
	"time"

	"github.com/hieuduy1751/paio/config"
	"github.com/stretchr/testify/require"
)

type testObj struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func Test_jwtTokenEngine(t *testing.T) {
	engine := NewTokenEngine[testObj](config.TokenConfigs{
		Secret:     "secret",
		Expiration: config.Duration{Duration: time.Minute},
	})

	token, err := engine.Generate("user1", testObj{ID: "user1", Name: "foo"})
	require.NoError(t, err)

	obj, err := engine.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user1", obj.ID)
	require.Equal(t, "foo", obj.Name)
}

func Test_jwtTokenEngine_ExpiredToken(t *testing.T) {
	engine := NewTokenEngine[testObj](config.TokenConfigs{
		Secret:     "secret",
		Expiration: config.Duration{Duration: -time.Minute},
	})

	token, err := engine.Generate("user1", testObj{ID: "user1"})
	require.NoError(t, err)

	_, err = engine.Verify(token)
	require.Error(t, err)
}

func Test_jwtTokenEngine_WrongSecret(t *testing.T) {
	engine := NewTokenEngine[testObj](config.TokenConfigs{
		Secret:     "secret",
		Expiration: config.Duration{Duration: time.Minute},
	})

	another := NewTokenEngine[testObj](config.TokenConfigs{
		Secret:     "another-secret",
		Expiration: config.Duration{Duration: time.Minute},
	})

	token, err := engine.Generate("user1", testObj{ID: "user1"})
	require.NoError(t, err)

	_, err = another.Verify(token)
	require.Error(t, err)
}
