package consts

type UserField string

const (
	UserFieldNickname UserField = "nickname"
	UserFieldEmail    UserField = "email"
)
