package bootstrap

import (
	"github.com/spf13/viper"
)

type Config struct {
	ServerPort     string `mapstructure:"SERVER_PORT"`
	AnalysisIp     string `mapstructure:"ANALYSIS_SERVER_IP"`
	AnalysisPort   string `mapstructure:"ANALYSIS_SERVER_PORT"`
	GtpEnginePath  string `mapstructure:"GTP_ENGINE_PATH"`
	GtpEngineArgs  string `mapstructure:"GTP_ENGINE_ARGS"`
	RedisUrl       string `mapstructure:"REDIS_URL"`
	MongoUri       string `mapstructure:"MONGO_URI"`
	IsLocalCors    bool   `mapstructure:"LOCAL_CORS"`
	PageLimitGames int    `mapstructure:"PAGE_LIMIT_GAMES"`
}

func Setup(cfgPath string) (*Config, error) {
	viper.SetConfigFile(cfgPath)

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	var cfg Config

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
