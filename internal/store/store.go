package store

import "errors"

// ErrNotConfigured 数据库未配置时各 store 的统一错误。
// 对应的端点据此关死（500），不做静默降级。
var ErrNotConfigured = errors.New("数据库未配置")
