package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kevin-chtw/tw_paipu/paipu"
	"github.com/spf13/viper"
)

// Config 转换器运行配置，yaml加载，环境变量可覆盖(TW_PAIPU_前缀)
type Config struct {
	Lang         string `mapstructure:"lang"` // jp/ro/en
	ShowFu       bool   `mapstructure:"showFu"`
	Kiriage      bool   `mapstructure:"kiriage"`
	TsumoLossOff bool   `mapstructure:"tsumoLossOff"`
	Pretty       bool   `mapstructure:"pretty"`
	DelayMS      int    `mapstructure:"delayMs"`
	InputDir     string `mapstructure:"inputDir"`
	OutputDir    string `mapstructure:"outputDir"`
	LogConf      `mapstructure:"log"`
	RoomNames    map[string]string `mapstructure:"roomNames"` // mode_id到段位场显示名
}

type LogConf struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

func Default() *Config {
	return &Config{
		Lang:      "jp",
		DelayMS:   500,
		InputDir:  ".",
		OutputDir: ".",
		LogConf:   LogConf{Level: "info", Path: "./logs"},
	}
}

func Load(configFile string) (*Config, error) {
	cfg := Default()
	if configFile == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetEnvPrefix("TW_PAIPU")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RoomNameTable 把yaml里的字符串键转成mode_id索引
func (c *Config) RoomNameTable() map[int32]string {
	if len(c.RoomNames) == 0 {
		return nil
	}
	table := make(map[int32]string, len(c.RoomNames))
	for key, name := range c.RoomNames {
		id, err := strconv.ParseInt(key, 10, 32)
		if err != nil {
			continue
		}
		table[int32(id)] = name
	}
	return table
}

// Options 转成结算/显示选项
func (c *Config) Options() (*paipu.Options, error) {
	opts := paipu.DefaultOptions()
	switch c.Lang {
	case "", "jp":
		opts.Lang = paipu.LangJP
	case "ro":
		opts.Lang = paipu.LangRO
	case "en":
		opts.Lang = paipu.LangEN
	default:
		return nil, fmt.Errorf("unknown lang %q", c.Lang)
	}
	opts.ShowFu = c.ShowFu
	opts.Kiriage = c.Kiriage
	opts.TsumoLossOff = c.TsumoLossOff
	return opts, nil
}
