package presenters

import (
	"strconv"
	"strings"

	"admin-backoffice/models"
)

// Tag is a colored label.
type Tag struct {
	Color string
	Label string
}

func UserRoleTag(role models.UserRole) *Tag {
	switch role {
	case models.RoleStudent:
		return &Tag{Label: "Student"}
	case models.RoleCoach:
		return &Tag{Color: "blue-inverse", Label: "Coach"}
	case models.RoleAdmin:
		return &Tag{Color: "red-inverse", Label: "Admin"}
	default:
		return nil
	}
}

func UserStatusTag(status models.UserStatus) *Tag {
	switch status {
	case models.UserStatusTrain:
		return &Tag{Color: "green", Label: "Training"}
	case models.UserStatusRetire:
		return &Tag{Color: "gray", Label: "Retired"}
	default:
		return nil
	}
}

// GenderLabel treats any non-zero value as male, like the column filter.
func GenderLabel(gender int) string {
	if gender != models.GenderFemale {
		return "Male"
	}
	return "Female"
}

// AvatarURL resolves a relative thumbnail path against the CDN root.
// Absolute URLs are returned unchanged.
func AvatarURL(cdnRoot, thumb string) string {
	if thumb == "" {
		return ""
	}
	if strings.HasPrefix(thumb, "http://") || strings.HasPrefix(thumb, "https://") || strings.HasPrefix(thumb, "//") {
		return thumb
	}
	if cdnRoot == "" {
		return thumb
	}
	return strings.TrimRight(cdnRoot, "/") + "/" + strings.TrimLeft(thumb, "/")
}

// StudentInfo is the "school college major grade" cell.
func StudentInfo(info models.UserInfo) string {
	parts := make([]string, 0, 4)
	for _, p := range []string{info.School, info.College, info.Major, info.Grade} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func UserRoleFilters() []FilterOption {
	opts := make([]FilterOption, 0, len(models.UserRoles))
	for _, r := range models.UserRoles {
		opts = append(opts, FilterOption{Text: UserRoleTag(r).Label, Value: string(r)})
	}
	return opts
}

func UserStatusFilters() []FilterOption {
	opts := make([]FilterOption, 0, len(models.UserStatuses))
	for _, s := range models.UserStatuses {
		opts = append(opts, FilterOption{Text: UserStatusTag(s).Label, Value: string(s)})
	}
	return opts
}

func GenderFilters() []FilterOption {
	return []FilterOption{
		{Text: GenderLabel(models.GenderMale), Value: strconv.Itoa(models.GenderMale)},
		{Text: GenderLabel(models.GenderFemale), Value: strconv.Itoa(models.GenderFemale)},
	}
}
