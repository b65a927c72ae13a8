package consts

const (

	// ConfigAllowRegister 是否开放注册 (true/false)
	ConfigAllowRegister = "allow_register"

	// ConfigDefaultAvatar 未上传头像时使用的默认头像地址
	ConfigDefaultAvatar = "default_avatar"

	// ConfigAllowFileExtensions 允许上传的图片扩展名 (逗号分隔)
	ConfigAllowFileExtensions = "allow_file_extensions"

	// ConfigRateLimitEnabled 是否开启限流
	ConfigRateLimitEnabled = "rate_limit_enabled"

	// ConfigRateLimitAuthRPS 认证接口限流 RPS
	ConfigRateLimitAuthRPS = "rate_limit_auth_rps"

	// ConfigRateLimitAuthBurst 认证接口限流 Burst
	ConfigRateLimitAuthBurst = "rate_limit_auth_burst"

	// ConfigRateLimitWriteRPS 写接口（发帖、评论、点赞、上传）限流 RPS
	ConfigRateLimitWriteRPS = "rate_limit_write_rps"

	// ConfigRateLimitWriteBurst 写接口限流 Burst
	ConfigRateLimitWriteBurst = "rate_limit_write_burst"

	// ConfigMaxRequestBodySize 最大请求体限制 (MB)
	ConfigMaxRequestBodySize = "max_request_body_size"

	// ConfigStaticCacheControl 静态资源缓存设置 (Cache-Control header value)
	ConfigStaticCacheControl = "static_cache_control"

	// ConfigTrustedProxies 可信反向代理列表 (IP 或 CIDR，逗号、分号或空白分隔)，为空表示不信任任何代理
	ConfigTrustedProxies = "trusted_proxies"
)
