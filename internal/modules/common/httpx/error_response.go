package httpx

import (
	"net/http"

	"community-server/internal/consts"
	"community-server/internal/logger"
	"community-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// WriteServiceError writes a standardized HTTP error response for service-layer errors.
func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	if serviceErr, ok := service.AsServiceError(err); ok {
		status := serviceErrorStatus(serviceErr.Code)
		if serviceErr.Code == service.ErrorCodeIntegrity {
			logger.With("httpx").WithField("path", c.FullPath()).Errorf("❌ 数据一致性被破坏: %s", serviceErr.Message)
			AbortWithMessage(c, status, consts.MsgDataIntegrityError, nil)
			return
		}
		if serviceErr.Code == service.ErrorCodeInternal {
			logger.With("httpx").WithField("path", c.FullPath()).Errorf("❌ 内部错误: %s", serviceErr.Message)
			AbortWithMessage(c, status, consts.MsgInternalServerError, nil)
			return
		}
		AbortWithMessage(c, status, serviceErr.Message, serviceErr.Data)
		return
	}
	logger.With("httpx").WithField("path", c.FullPath()).Errorf("❌ 未预期的错误: %v", err)
	if fallbackMessage == "" {
		fallbackMessage = consts.MsgInternalServerError
	}
	AbortWithMessage(c, http.StatusInternalServerError, fallbackMessage, nil)
}

func serviceErrorStatus(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation:
		return http.StatusBadRequest
	case service.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case service.ErrorCodeForbidden:
		return http.StatusForbidden
	case service.ErrorCodeConflict:
		return http.StatusConflict
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
