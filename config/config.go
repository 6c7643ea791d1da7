package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Token    string `mapstructure:"TOKEN"`
	GiphyKey string `mapstructure:"GIPHY_KEY"`
	Database string `mapstructure:"DATABASE"`
}

var Cfg Config

func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("DATABASE", "./data/memsther.db")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}
