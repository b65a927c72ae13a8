package handler

import authservice "community-server/internal/modules/auth/service"

type Handler struct {
	authService *authservice.Service
}

func New(authService *authservice.Service) *Handler {
	return &Handler{authService: authService}
}
