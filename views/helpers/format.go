package helpers

import (
	"fmt"

	"github.com/loganlanou/popx/internal/identity"
)

// FormatInt formats an integer as a string
func FormatInt(n int64) string {
	return fmt.Sprintf("%d", n)
}

// AvatarURL returns the user's own avatar or the generated initials image
func AvatarURL(user *identity.User) string {
	if user == nil {
		return ""
	}
	if user.Avatar != "" {
		return user.Avatar
	}
	return "/account/avatar.png"
}
