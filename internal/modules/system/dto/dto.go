package dto

type SystemInfoResponse struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"goVersion"`
	NumCPU       int    `json:"numCpu"`
	NumGoroutine int    `json:"numGoroutine"`
}

type ServerStatsResponse struct {
	UserCount    int64              `json:"userCount"`
	PostCount    int64              `json:"postCount"`
	CommentCount int64              `json:"commentCount"`
	LikeCount    int64              `json:"likeCount"`
	LiveSessions int64              `json:"liveSessions"`
	SystemInfo   SystemInfoResponse `json:"systemInfo"`
}
