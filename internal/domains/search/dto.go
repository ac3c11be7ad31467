package search

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Request là form search. Form của trang chủ post field "search",
// "q" được giữ cho link/query dạng ngắn.
type Request struct {
	Search string `form:"search" json:"search"`
	Q      string `form:"q" json:"q"`
}

// Term trả về từ khoá, ưu tiên "search"
func (r Request) Term() string {
	if term := strings.TrimSpace(r.Search); term != "" {
		return term
	}
	return strings.TrimSpace(r.Q)
}

func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Search, validation.Length(0, 200)),
		validation.Field(&r.Q, validation.Length(0, 200)),
	)
}
