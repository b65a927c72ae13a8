package handler

import commentservice "community-server/internal/modules/comment/service"

type Handler struct {
	commentService *commentservice.Service
}

func New(commentService *commentservice.Service) *Handler {
	return &Handler{commentService: commentService}
}
