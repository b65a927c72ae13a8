package logger

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

var current atomic.Pointer[logrus.Logger]

func init() {
	current.Store(newLogger("info", "text"))
}

// L 返回全局日志实例。
func L() *logrus.Logger {
	return current.Load()
}

// Configure 按配置重建全局日志实例，未知级别回退为 info。
func Configure(level, format string) {
	current.Store(newLogger(level, format))
}

// With 返回带固定字段的日志条目，用于按模块区分日志来源。
func With(module string) *logrus.Entry {
	return L().WithField("module", module)
}

func newLogger(level, format string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	if strings.EqualFold(strings.TrimSpace(format), "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}
