package service

import "community-server/internal/consts"

// Identity 是通过会话鉴权后的当前用户。
type Identity struct {
	ID       uint   `json:"userId"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"profileImage"`
	Status   int    `json:"status"`
}

// EnsureOwner 校验资源归属。只比较稳定的账号 ID，昵称可变，不参与鉴权。
func EnsureOwner(ownerID uint, identity *Identity) error {
	if identity == nil || identity.ID == 0 || identity.ID != ownerID {
		return NewForbiddenError(consts.MsgPermissionDenied)
	}
	return nil
}
