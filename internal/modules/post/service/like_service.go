package service

import (
	"context"

	"community-server/internal/consts"
	"community-server/internal/metrics"
	moduledto "community-server/internal/modules/post/dto"
	platformservice "community-server/internal/platform/service"
)

// AddLike 显式点赞，重复点赞返回 POST_ALREADY_LIKE 冲突。
func (s *Service) AddLike(ctx context.Context, identity *platformservice.Identity, postID uint) (*moduledto.LikeResponse, error) {
	if identity == nil {
		return nil, platformservice.NewUnauthorizedError(consts.MsgLoginRequired)
	}
	count, err := s.postStore.AddLike(ctx, identity.ID, postID)
	if err != nil {
		return nil, s.translateStoreError(err, "点赞失败")
	}
	metrics.RecordContentMutation("like", "create")
	return &moduledto.LikeResponse{IsLiked: true, LikeCount: count}, nil
}

// RemoveLike 显式取消点赞，未点赞返回 POST_ALREADY_DELETE_LIKE 冲突。
func (s *Service) RemoveLike(ctx context.Context, identity *platformservice.Identity, postID uint) (*moduledto.LikeResponse, error) {
	if identity == nil {
		return nil, platformservice.NewUnauthorizedError(consts.MsgLoginRequired)
	}
	count, err := s.postStore.RemoveLike(ctx, identity.ID, postID)
	if err != nil {
		return nil, s.translateStoreError(err, "取消点赞失败")
	}
	metrics.RecordContentMutation("like", "delete")
	return &moduledto.LikeResponse{IsLiked: false, LikeCount: count}, nil
}

// ToggleLike 切换点赞状态，从不返回冲突。
func (s *Service) ToggleLike(ctx context.Context, identity *platformservice.Identity, postID uint) (*moduledto.LikeResponse, error) {
	if identity == nil {
		return nil, platformservice.NewUnauthorizedError(consts.MsgLoginRequired)
	}
	liked, count, err := s.postStore.ToggleLike(ctx, identity.ID, postID)
	if err != nil {
		return nil, s.translateStoreError(err, "切换点赞失败")
	}
	action := "delete"
	if liked {
		action = "create"
	}
	metrics.RecordContentMutation("like", action)
	return &moduledto.LikeResponse{IsLiked: liked, LikeCount: count}, nil
}
