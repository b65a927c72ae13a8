package logger

import (
	"testing"

	"github.com/sirupsen/logrus"
)

// 测试内容：验证日志级别与格式按配置生效，未知级别回退为 info。
func TestConfigure(t *testing.T) {
	Configure("debug", "json")
	if L().GetLevel() != logrus.DebugLevel {
		t.Fatalf("期望 debug 级别，实际为 %v", L().GetLevel())
	}
	if _, ok := L().Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("期望 JSON 格式")
	}

	Configure("not-a-level", "text")
	if L().GetLevel() != logrus.InfoLevel {
		t.Fatalf("期望回退 info 级别，实际为 %v", L().GetLevel())
	}
	if _, ok := L().Formatter.(*logrus.TextFormatter); !ok {
		t.Fatalf("期望文本格式")
	}
}

// 测试内容：验证 With 会附加模块字段。
func TestWith(t *testing.T) {
	entry := With("auth")
	if entry.Data["module"] != "auth" {
		t.Fatalf("期望 module=auth，实际为 %v", entry.Data["module"])
	}
}
