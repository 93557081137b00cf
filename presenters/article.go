// Package presenters maps records onto display cells. Unknown enum values
// render nothing.
package presenters

import (
	"admin-backoffice/models"
)

// Badge is a colored status point.
type Badge struct {
	Color string
	Label string
}

// ArticleStatusBadge returns nil for statuses it does not know.
func ArticleStatusBadge(status models.ArticleStatus) *Badge {
	switch status {
	case models.ArticleStatusRecycle:
		return &Badge{Color: "gray", Label: "Recycle bin"}
	case models.ArticleStatusDraft:
		return &Badge{Color: "light-blue", Label: "Draft"}
	case models.ArticleStatusPublish:
		return &Badge{Color: "green", Label: "Published"}
	case models.ArticleStatusPinned:
		return &Badge{Color: "red", Label: "Pinned"}
	default:
		return nil
	}
}

// Action is one status transition offered on an article row.
type Action struct {
	Label  string
	Target models.ArticleStatus
}

func ArticleActions(a models.Article) []Action {
	switch a.Status {
	case models.ArticleStatusRecycle:
		return []Action{
			{Label: "Restore to drafts", Target: models.ArticleStatusDraft},
		}
	case models.ArticleStatusDraft:
		return []Action{
			{Label: "Publish", Target: models.ArticleStatusPublish},
			{Label: "Pin", Target: models.ArticleStatusPinned},
		}
	case models.ArticleStatusPublish:
		return []Action{
			{Label: "Pin", Target: models.ArticleStatusPinned},
			{Label: "Move to drafts", Target: models.ArticleStatusDraft},
		}
	case models.ArticleStatusPinned:
		return []Action{
			{Label: "Unpin", Target: models.ArticleStatusPublish},
			{Label: "Move to drafts", Target: models.ArticleStatusDraft},
		}
	default:
		return nil
	}
}

// ArticleStatusFilters are the options of the status column filter.
func ArticleStatusFilters() []FilterOption {
	opts := make([]FilterOption, 0, len(models.ArticleStatuses))
	for _, s := range models.ArticleStatuses {
		opts = append(opts, FilterOption{Text: ArticleStatusBadge(s).Label, Value: string(s)})
	}
	return opts
}
