package creditcalc

import (
	"time"

	"go.uber.org/zap"
)

// Clock 提供可替换的时间源
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Config 运行时配置
type Config struct {
	Logger        *zap.Logger
	RoundStrategy RoundStrategy
	Clock         Clock
}

var cfg = Config{
	Logger:        zap.NewNop(),
	RoundStrategy: HalfUpRound,
	Clock:         systemClock{},
}

// Start 初始化运行时配置与默认依赖。引擎本身无状态，
// Start 只在进程启动阶段调用一次，之后并发调用各入口是安全的。
func Start(c Config) error {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.RoundStrategy == nil {
		c.RoundStrategy = HalfUpRound
	}
	if c.Clock == nil {
		c.Clock = systemClock{}
	}
	cfg = c
	return nil
}

func log() *zap.Logger { return cfg.Logger }
