package utils

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	invalidChars  = regexp.MustCompile(`[^A-Za-z0-9-]+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// GeneratePublicID tạo public identifier (slug) từ display title.
// Output chỉ chứa [a-z0-9-], không có hyphen ở đầu/cuối và không có "--".
// Title không còn ký tự alphanumeric nào sẽ cho ra chuỗi rỗng; caller
// phải tự reject trường hợp đó.
func GeneratePublicID(title string) string {
	// Step 1: Whitespace runs → single hyphen
	// "Breaking   Bad" → "Breaking-Bad"
	hyphenated := whitespaceRun.ReplaceAllString(title, "-")

	// Step 2: Remove special characters
	// Keep only: A-Z, a-z, 0-9, hyphens
	// "Doctor-Who?!" → "Doctor-Who"
	cleaned := invalidChars.ReplaceAllString(hyphenated, "")

	// Step 3: Collapse consecutive hyphens
	// "a---b" → "a-b"
	collapsed := hyphenRun.ReplaceAllString(cleaned, "-")

	// Step 4: Trim leading/trailing hyphens
	// "-a-b-" → "a-b"
	trimmed := strings.Trim(collapsed, "-")

	return strings.ToLower(trimmed)
}
