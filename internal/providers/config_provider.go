package providers

import (
	"dbb/internal/structures"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	filename := filepath.Base(flags.ConfigPath)
	viper.AddConfigPath(filepath.Dir(flags.ConfigPath))
	viper.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	viper.SetConfigType("yaml")

	viper.BindEnv("bot.token", "DBB_BOT_TOKEN")
	viper.BindEnv("bot.apiUrl", "DBB_BOT_API_URL")
	viper.BindEnv("logger.level", "DBB_LOG_LEVEL")
	viper.BindEnv("storage.dir", "DBB_STORAGE_DIR")
	viper.BindEnv("daily.hour", "DBB_DAILY_HOUR")
	viper.BindEnv("daily.minute", "DBB_DAILY_MINUTE")
	viper.BindEnv("cache.enabled", "DBB_CACHE_ENABLED")
	viper.BindEnv("cache.size", "DBB_CACHE_SIZE")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = viper.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	if conf.Quiz.MaxQuestions <= 0 {
		conf.Quiz.MaxQuestions = 10
	}
	if conf.Quiz.HistoryLimit <= 0 {
		conf.Quiz.HistoryLimit = 100
	}
	if conf.Quiz.TopN <= 0 {
		conf.Quiz.TopN = 10
	}

	conf.AppName = "DailyBibleBot"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
