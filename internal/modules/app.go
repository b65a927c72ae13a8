package modules

import (
	"community-server/internal/modules/auth"
	authrepo "community-server/internal/modules/auth/repo"
	"community-server/internal/modules/comment"
	commentrepo "community-server/internal/modules/comment/repo"
	"community-server/internal/modules/post"
	postrepo "community-server/internal/modules/post/repo"
	"community-server/internal/modules/settings"
	settingsrepo "community-server/internal/modules/settings/repo"
	"community-server/internal/modules/system"
	systemrepo "community-server/internal/modules/system/repo"
	"community-server/internal/modules/user"
	userrepo "community-server/internal/modules/user/repo"
	platformservice "community-server/internal/platform/service"
	"community-server/internal/storage"
)

type AppModules struct {
	Auth     *auth.Module
	User     *user.Module
	Post     *post.Module
	Comment  *comment.Module
	Settings *settings.Module
	System   *system.Module
}

func New(
	appService *platformservice.AppService,
	userStore userrepo.UserStore,
	sessionStore authrepo.SessionStore,
	postStore postrepo.PostStore,
	commentStore commentrepo.CommentStore,
	settingStore settingsrepo.SettingStore,
	systemStore systemrepo.SystemStore,
	stores *storage.Stores,
) *AppModules {
	userModule := user.New(appService, userStore, stores)

	return &AppModules{
		Auth:     auth.New(appService, sessionStore, userModule.Service),
		User:     userModule,
		Post:     post.New(appService, postStore, stores),
		Comment:  comment.New(appService, commentStore),
		Settings: settings.New(appService, settingStore),
		System:   system.New(appService, systemStore),
	}
}
