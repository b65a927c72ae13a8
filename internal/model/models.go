package model

// All 返回需要自动迁移的全部表模型。
func All() []interface{} {
	return []interface{}{
		&User{},
		&Session{},
		&Post{},
		&Comment{},
		&Like{},
		&Setting{},
	}
}
