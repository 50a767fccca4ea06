package utils

import "net/url"

// Default avatar DiceBear, style fixed: gradientLinear, size 256 PNG
func DefaultAvatar(fullName string) string {
	seed := url.QueryEscape(fullName)
	return "https://api.dicebear.com/7.x/initials/png?seed=" + seed +
		"&size=256&backgroundType=gradientLinear"
}
