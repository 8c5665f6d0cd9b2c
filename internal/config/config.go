package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	LogLevel string `mapstructure:"log_level"`

	// 恶作剧模式下全员卧底的触发概率，取值 [0, 1]
	TrollChance float64 `mapstructure:"troll_chance"`

	// 管理端埋点上报地址，留空表示不上报
	AdminMetricsURL string `mapstructure:"admin_metrics_url"`
}

func InitConfig() *AppConfig {
	v := viper.New()

	v.SetConfigFile("app_config")
	v.SetConfigType("json")
	v.AddConfigPath(".")

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8080)
	v.SetDefault("log_level", "info")
	v.SetDefault("troll_chance", 0.1)

	if err := v.ReadInConfig(); err != nil {
		panic(fmt.Errorf("加载配置失败: %w", err))
	}

	var config AppConfig

	if err := v.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("解析配置失败: %w", err))
	}

	if config.TrollChance < 0 || config.TrollChance > 1 {
		panic(fmt.Errorf("troll_chance 必须在 [0, 1] 之间: %v", config.TrollChance))
	}

	return &config
}
