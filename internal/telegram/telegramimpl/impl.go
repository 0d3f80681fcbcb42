package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/inline-bot-layout/internal/telegram"
	"github.com/orgball2608/inline-bot-layout/pkg/config"
	"github.com/orgball2608/inline-bot-layout/pkg/errors"
	"github.com/orgball2608/inline-bot-layout/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

// New connects to the Bot API when a token is configured. Without one the
// client still starts, and every file id lookup fails as unauthorized.
func New(opts Opts) (*TelegramImpl, error) {
	log := opts.Logger.WithComponent("telegram")
	impl := &TelegramImpl{
		Logger: log,
		Config: opts.Config,
	}

	if opts.Config.Telegram.Token == "" {
		log.Warn("Telegram token is empty, file ids will not be resolved")
		return impl, nil
	}

	tgBot, err := tgbotapi.NewBotAPI(opts.Config.Telegram.Token)
	if err != nil {
		log.Error("Error creating bot", "Error", err)
		return nil, err
	}
	log.Info("Authorized on account", "username", tgBot.Self.UserName)

	impl.TgBot = tgBot
	return impl, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)

func (t *TelegramImpl) FileURL(fileID string) (string, error) {
	if fileID == "" {
		return "", errors.WrapWithCode(errors.ErrInvalidInput, errors.CodeResolve, "empty file id")
	}
	if t.TgBot == nil {
		return "", errors.WrapWithCode(errors.ErrUnauthorized, errors.CodeResolve, "telegram token is not configured")
	}

	url, err := t.TgBot.GetFileDirectURL(fileID)
	if err != nil {
		t.Logger.Warn("Failed to resolve file id", "file_id", fileID, "Error", err)
		return "", errors.WrapWithCode(err, errors.CodeResolve, "resolve file id")
	}
	return url, nil
}
