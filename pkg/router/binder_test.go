package router

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

type bindTarget struct {
	Name    string  `json:"name"`
	Limit   int     `json:"limit"`
	Ratio   float64 `json:"ratio"`
	Enabled bool    `json:"enabled"`
	Skipped string  `json:"-"`
}

func TestBindQuery(t *testing.T) {
	values := url.Values{}
	values.Set("name", "focus")
	values.Set("limit", "25")
	values.Set("ratio", "1.5")
	values.Set("enabled", "true")

	var target bindTarget
	require.NoError(t, bindQuery(values, &target))
	require.Equal(t, "focus", target.Name)
	require.Equal(t, 25, target.Limit)
	require.Equal(t, 1.5, target.Ratio)
	require.True(t, target.Enabled)
}

func TestBindQuery_MissingValuesKeepZero(t *testing.T) {
	var target bindTarget
	require.NoError(t, bindQuery(url.Values{}, &target))
	require.Empty(t, target.Name)
	require.Zero(t, target.Limit)
}

func TestBindQuery_InvalidNumber(t *testing.T) {
	values := url.Values{}
	values.Set("limit", "not-a-number")

	var target bindTarget
	require.Error(t, bindQuery(values, &target))
}
