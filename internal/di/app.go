package di

import (
	"community-server/internal/jobs"
	"community-server/internal/modules"
	"community-server/internal/platform/service"
	"community-server/internal/router"
)

type Application struct {
	Router       *router.Router
	Service      *service.AppService
	Modules      *modules.AppModules
	SessionSweep *jobs.SessionSweeper
}

func NewApplication(r *router.Router, s *service.AppService, m *modules.AppModules, sweeper *jobs.SessionSweeper) *Application {
	return &Application{
		Router:       r,
		Service:      s,
		Modules:      m,
		SessionSweep: sweeper,
	}
}

// provideSessionSweeper 清理任务直接复用认证模块的会话管理器
func provideSessionSweeper(m *modules.AppModules) *jobs.SessionSweeper {
	return jobs.NewSessionSweeper(m.Auth.Service.Sessions())
}
