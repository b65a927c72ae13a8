package service

import "errors"

type ErrorCode string

const (
	ErrorCodeValidation   ErrorCode = "validation"
	ErrorCodeUnauthorized ErrorCode = "unauthorized"
	ErrorCodeForbidden    ErrorCode = "forbidden"
	ErrorCodeConflict     ErrorCode = "conflict"
	ErrorCodeNotFound     ErrorCode = "not_found"
	ErrorCodeIntegrity    ErrorCode = "integrity"
	ErrorCodeInternal     ErrorCode = "internal"
)

// ServiceError 是业务层统一错误，Message 为机器可读的详情码。
type ServiceError struct {
	Code    ErrorCode
	Message string
	Data    any
}

func (e *ServiceError) Error() string {
	return e.Message
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message}
}

// NewServiceErrorWithData 构造携带附加数据的错误，例如临时封禁的开始时间。
func NewServiceErrorWithData(code ErrorCode, message string, data any) error {
	return &ServiceError{Code: code, Message: message, Data: data}
}

func NewValidationError(message string) error {
	return NewServiceError(ErrorCodeValidation, message)
}

func NewUnauthorizedError(message string) error {
	return NewServiceError(ErrorCodeUnauthorized, message)
}

func NewForbiddenError(message string) error {
	return NewServiceError(ErrorCodeForbidden, message)
}

func NewConflictError(message string) error {
	return NewServiceError(ErrorCodeConflict, message)
}

func NewNotFoundError(message string) error {
	return NewServiceError(ErrorCodeNotFound, message)
}

// NewIntegrityError 表示派生数据不变量被破坏，属于需要告警的致命错误。
func NewIntegrityError(message string) error {
	return NewServiceError(ErrorCodeIntegrity, message)
}

func NewInternalError(message string) error {
	return NewServiceError(ErrorCodeInternal, message)
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

// IsCode 判断 err 是否为指定错误码的 ServiceError。
func IsCode(err error, code ErrorCode) bool {
	serviceErr, ok := AsServiceError(err)
	return ok && serviceErr.Code == code
}
