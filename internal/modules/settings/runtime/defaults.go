package runtime

import (
	"community-server/internal/consts"
	"community-server/internal/model"
)

const (
	CategoryAccount  = "account"
	CategoryContent  = "content"
	CategorySecurity = "security"
)

// DefaultSettings 定义全部运行时配置项及其默认值，顺序即管理端展示顺序。
var DefaultSettings = []model.Setting{
	{Key: consts.ConfigAllowRegister, Value: "true", Desc: "是否开放注册 (true/false)", Category: CategoryAccount},
	{Key: consts.ConfigDefaultAvatar, Value: "https://image.kr/default.jpg", Desc: "未上传头像时使用的默认头像地址", Category: CategoryAccount},
	{Key: consts.ConfigAllowFileExtensions, Value: ".jpg,.jpeg,.png,.gif,.webp", Desc: "允许上传的图片扩展名", Category: CategoryContent},
	{Key: consts.ConfigStaticCacheControl, Value: "public, max-age=31536000", Desc: "静态资源缓存设置 (Cache-Control)", Category: CategoryContent},
	{Key: consts.ConfigRateLimitEnabled, Value: "true", Desc: "是否开启接口限流", Category: CategorySecurity},
	{Key: consts.ConfigRateLimitAuthRPS, Value: "0.5", Desc: "认证接口每秒请求限制 (RPS)", Category: CategorySecurity},
	{Key: consts.ConfigRateLimitAuthBurst, Value: "5", Desc: "认证接口突发请求限制", Category: CategorySecurity},
	{Key: consts.ConfigRateLimitWriteRPS, Value: "2", Desc: "写接口每秒请求限制 (RPS)", Category: CategorySecurity},
	{Key: consts.ConfigRateLimitWriteBurst, Value: "10", Desc: "写接口突发请求限制", Category: CategorySecurity},
	{Key: consts.ConfigMaxRequestBodySize, Value: "2", Desc: "非文件上传接口最大请求体限制 (MB)", Category: CategorySecurity},
	{Key: consts.ConfigTrustedProxies, Value: "", Desc: "可信反向代理 (IP/CIDR 列表，修改后重启生效)", Category: CategorySecurity},
}

// Default 返回指定 key 的默认配置副本。
func Default(key string) (model.Setting, bool) {
	for _, def := range DefaultSettings {
		if def.Key == key {
			return def, true
		}
	}
	return model.Setting{}, false
}

func Keys() []string {
	keys := make([]string, 0, len(DefaultSettings))
	for _, def := range DefaultSettings {
		keys = append(keys, def.Key)
	}
	return keys
}
