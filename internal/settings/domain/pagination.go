package domain

// Paginated 分页查询结果
type Paginated[T any] struct {
	Contents  []T   `json:"contents"`
	Start     int   `json:"start"`
	Size      int   `json:"size"`
	TotalSize int64 `json:"totalSize"`
}
