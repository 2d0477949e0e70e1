package util

import "errors"

var (
	ErrUserNotFound       = errors.New("用户不存在")
	ErrEmailRegistered    = errors.New("该邮箱已被注册")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidRole        = errors.New("invalid role")
	ErrPathNotFound       = errors.New("learning path not found")
	ErrItemNotFound       = errors.New("learning path item not found")
	ErrWorksheetSubmitted = errors.New("worksheet already submitted")
	ErrBoldActionNotFound = errors.New("bold action not found")
	ErrMemberNotFound     = errors.New("member not found")
)
