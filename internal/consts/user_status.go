package consts

// 账号状态
const (
	UserStatusActive             = 1
	UserStatusSuspendedTemporary = 2
	UserStatusSuspendedPermanent = 3
)

// ValidUserStatus 判断状态值是否合法。
func ValidUserStatus(status int) bool {
	switch status {
	case UserStatusActive, UserStatusSuspendedTemporary, UserStatusSuspendedPermanent:
		return true
	}
	return false
}
