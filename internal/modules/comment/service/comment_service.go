package service

import (
	"context"
	"errors"
	"strings"

	"community-server/internal/consts"
	"community-server/internal/logger"
	"community-server/internal/metrics"
	"community-server/internal/model"
	moduledto "community-server/internal/modules/comment/dto"
	postdto "community-server/internal/modules/post/dto"
	postrepo "community-server/internal/modules/post/repo"
	platformservice "community-server/internal/platform/service"

	"gorm.io/gorm"
)

// List 帖子下的评论按创建顺序返回，帖子不存在时返回 POST_NOT_FOUND。
func (s *Service) List(ctx context.Context, postID uint) (*moduledto.CommentListResponse, error) {
	exists, err := s.commentStore.PostExists(ctx, postID)
	if err != nil {
		return nil, s.internalError(err, "查询帖子失败")
	}
	if !exists {
		return nil, platformservice.NewNotFoundError(consts.MsgPostNotFound)
	}

	comments, err := s.commentStore.ListByPost(ctx, postID)
	if err != nil {
		return nil, s.internalError(err, "查询评论列表失败")
	}
	resp := &moduledto.CommentListResponse{Comments: make([]moduledto.CommentResponse, 0, len(comments))}
	for i := range comments {
		resp.Comments = append(resp.Comments, s.toResponse(&comments[i]))
	}
	return resp, nil
}

func (s *Service) Create(ctx context.Context, identity *platformservice.Identity, postID uint, req moduledto.CommentRequest) (uint, error) {
	if identity == nil {
		return 0, platformservice.NewUnauthorizedError(consts.MsgLoginRequired)
	}
	content, err := normalizeContent(req.Content)
	if err != nil {
		return 0, err
	}

	comment := &model.Comment{PostID: postID, UserID: identity.ID, Content: content}
	if err := s.commentStore.CreateAndIncrement(ctx, comment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, platformservice.NewNotFoundError(consts.MsgPostNotFound)
		}
		return 0, s.internalError(err, "创建评论失败")
	}
	metrics.RecordContentMutation("comment", "create")
	return comment.ID, nil
}

func (s *Service) Update(ctx context.Context, identity *platformservice.Identity, id uint, req moduledto.CommentRequest) (uint, error) {
	content, err := normalizeContent(req.Content)
	if err != nil {
		return 0, err
	}
	if _, err := s.ownedComment(ctx, identity, id); err != nil {
		return 0, err
	}

	if err := s.commentStore.UpdateContent(ctx, id, content); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, platformservice.NewNotFoundError(consts.MsgCommentNotFound)
		}
		return 0, s.internalError(err, "更新评论失败")
	}
	metrics.RecordContentMutation("comment", "update")
	return id, nil
}

// Delete 删除评论，父帖子仍存在时评论数减一。
func (s *Service) Delete(ctx context.Context, identity *platformservice.Identity, id uint) error {
	comment, err := s.ownedComment(ctx, identity, id)
	if err != nil {
		return err
	}

	if err := s.commentStore.DeleteAndDecrement(ctx, comment); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return platformservice.NewNotFoundError(consts.MsgCommentNotFound)
		case errors.Is(err, postrepo.ErrCounterUnderflow):
			metrics.RecordIntegrityFailure()
			logger.With("comment").WithField("post_id", comment.PostID).Error("❌ 评论数与评论明细不一致")
			return platformservice.NewIntegrityError("comment_count would become negative")
		}
		return s.internalError(err, "删除评论失败")
	}
	metrics.RecordContentMutation("comment", "delete")
	return nil
}

func (s *Service) ownedComment(ctx context.Context, identity *platformservice.Identity, id uint) (*model.Comment, error) {
	comment, err := s.commentStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, platformservice.NewNotFoundError(consts.MsgCommentNotFound)
		}
		return nil, s.internalError(err, "查询评论失败")
	}
	if err := platformservice.EnsureOwner(comment.UserID, identity); err != nil {
		return nil, err
	}
	return comment, nil
}

func normalizeContent(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" || len([]rune(content)) > 1000 {
		return "", platformservice.NewValidationError(consts.MsgInvalidRequest)
	}
	return content, nil
}

func (s *Service) toResponse(comment *model.Comment) moduledto.CommentResponse {
	avatar := comment.User.Avatar
	if avatar == "" {
		avatar = s.GetString(consts.ConfigDefaultAvatar)
	}
	return moduledto.CommentResponse{
		CommentID: comment.ID,
		PostID:    comment.PostID,
		Author: postdto.AuthorResponse{
			UserID:       comment.UserID,
			Nickname:     comment.User.Nickname,
			ProfileImage: avatar,
		},
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
		UpdatedAt: comment.UpdatedAt,
	}
}

func (s *Service) internalError(err error, message string) error {
	logger.With("comment").Errorf("❌ %s: %v", message, err)
	return platformservice.NewInternalError(message)
}
