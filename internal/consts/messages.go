package consts

// 错误详情码，作为响应信封中的 message 返回给客户端。
const (
	MsgInvalidRequest      = "INVALID_REQUEST"
	MsgTooManyRequests     = "TOO_MANY_REQUESTS"
	MsgInternalServerError = "INTERNAL_SERVER_ERROR"
	MsgDataIntegrityError  = "DATA_INTEGRITY_ERROR"

	MsgEmailAlreadyExists    = "EMAIL_ALREADY_EXISTS"
	MsgNicknameAlreadyExists = "NICKNAME_ALREADY_EXISTS"
	MsgRegisterDisabled      = "REGISTER_DISABLED"
	MsgUserNotFound          = "USER_NOT_FOUND"
	MsgPasswordMismatch      = "PASSWORD_MISMATCH"

	MsgLoginRequired               = "LOGIN_REQUIRED"
	MsgInvalidSession              = "INVALID_SESSION"
	MsgLoginFailed                 = "LOGIN_FAILED"
	MsgAlreadyLogin                = "ALREADY_LOGIN"
	MsgAccountSuspended            = "ACCOUNT_SUSPENDED"
	MsgAccountTemporarilySuspended = "ACCOUNT_TEMPORARILY_SUSPENDED"
	MsgPermissionDenied            = "PERMISSION_DENIED"
	MsgAdminTokenInvalid           = "ADMIN_TOKEN_INVALID"

	MsgPostNotFound          = "POST_NOT_FOUND"
	MsgCommentNotFound       = "COMMENT_NOT_FOUND"
	MsgRouteNotFound         = "NOT_FOUND"
	MsgPostAlreadyLike       = "POST_ALREADY_LIKE"
	MsgPostAlreadyDeleteLike = "POST_ALREADY_DELETE_LIKE"

	MsgFileRequired = "FILE_REQUIRED"
	MsgInvalidFile  = "INVALID_FILE"
	MsgFileTooLarge = "FILE_TOO_LARGE"
)

// 成功响应的 message。
const (
	MsgSignupSuccess         = "SIGNUP_SUCCESS"
	MsgLoginSuccess          = "LOGIN_SUCCESS"
	MsgLogoutSuccess         = "LOGOUT_SUCCESS"
	MsgAuthCheckSuccess      = "AUTH_CHECK_SUCCESS"
	MsgUserInfoSuccess       = "USER_INFO_SUCCESS"
	MsgUserUpdateSuccess     = "USER_UPDATE_SUCCESS"
	MsgPasswordChangeSuccess = "PASSWORD_CHANGE_SUCCESS"
	MsgAvatarUpdateSuccess   = "AVATAR_UPDATE_SUCCESS"
	MsgUserDeleteSuccess     = "USER_DELETE_SUCCESS"
	MsgUserStatusSuccess     = "USER_STATUS_UPDATE_SUCCESS"

	MsgPostRetrievalSuccess = "POST_RETRIEVAL_SUCCESS"
	MsgPostDetailSuccess    = "POST_DETAIL_GET_SUCCESS"
	MsgPostCreateSuccess    = "POST_CREATE_SUCCESS"
	MsgPostUpdateSuccess    = "POST_UPDATE_SUCCESS"
	MsgPostDeleteSuccess    = "POST_DELETE_SUCCESS"
	MsgImageUploadSuccess   = "IMAGE_UPLOAD_SUCCESS"

	MsgCommentListSuccess   = "COMMENT_LIST_SUCCESS"
	MsgCommentCreateSuccess = "COMMENT_CREATE_SUCCESS"
	MsgCommentUpdateSuccess = "COMMENT_UPDATE_SUCCESS"
	MsgCommentDeleteSuccess = "COMMENT_DELETE_SUCCESS"

	MsgLikeRegisterSuccess = "REGISTER_SUCCESS"
	MsgLikeDeleteSuccess   = "POST_LIKE_DELETE"
	MsgLikeAdded           = "LIKE_ADDED"
	MsgLikeRemoved         = "LIKE_REMOVED"

	MsgSettingsListSuccess   = "SETTINGS_RETRIEVAL_SUCCESS"
	MsgSettingsUpdateSuccess = "SETTINGS_UPDATE_SUCCESS"
	MsgStatsSuccess          = "STATS_SUCCESS"
)
