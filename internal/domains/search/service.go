package search

import "context"

type Service interface {
	// Search tìm substring không phân biệt hoa thường. Term rỗng → kết quả rỗng.
	Search(ctx context.Context, term string) (*Results, error)
}
