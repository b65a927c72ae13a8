package consts

const (
	ApplicationName    = "Community Server"
	ApplicationVersion = "v1.0.0"
)
