package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// cliConfig 控制台默认参数，可通过 --config 指定 yaml 覆盖
type cliConfig struct {
	Tolerance float64 `yaml:"tolerance"` // 搜索允许的利息偏差
	Currency  string  `yaml:"currency"`  // 金额后缀
	Rows      int     `yaml:"rows"`      // 计划表预览行数
}

func defaultCLIConfig() cliConfig {
	return cliConfig{
		Tolerance: 100,
		Currency:  "RUB",
		Rows:      6,
	}
}

func loadCLIConfig(path string) (cliConfig, error) {
	c := defaultCLIConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	if c.Rows <= 0 {
		c.Rows = defaultCLIConfig().Rows
	}
	if c.Tolerance <= 0 {
		c.Tolerance = defaultCLIConfig().Tolerance
	}
	return c, nil
}
