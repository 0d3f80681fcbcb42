package telegramimpl

import (
	"testing"

	"github.com/orgball2608/inline-bot-layout/pkg/config"
	"github.com/orgball2608/inline-bot-layout/pkg/errors"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutToken(t *testing.T) {
	impl, err := New(Opts{Config: &config.Config{}, Logger: logger.New(logger.Opts{Env: "test"})})
	require.NoError(t, err)
	assert.Nil(t, impl.TgBot)

	_, err = impl.FileURL("AgACAgIAAxkBAAI")
	assert.True(t, errors.IsUnauthorized(err))
	assert.Equal(t, errors.CodeResolve, errors.GetCode(err))

	_, err = impl.FileURL("")
	assert.True(t, errors.IsInvalidInput(err))
}
