package util

import (
	"fmt"
	"strconv"
)

// ParseUint 解析路径/查询参数里的数字ID，非法输入返回错误由调用方转为 400
func ParseUint(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("无效的数字参数: %q", s)
	}
	return uint(id), nil
}
