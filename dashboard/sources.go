package dashboard

import (
	"context"

	"admin-backoffice/models"
	"admin-backoffice/querysync"
	"admin-backoffice/services"
	"admin-backoffice/store"
)

// Sources are where the list pages read their records from.
type Sources struct {
	Articles func(articleType string) store.Source[models.Article]
	Users    store.Source[models.User]
}

// ServiceSources reads through the services in the same process.
func ServiceSources(articles services.ArticleService, users services.UserService) Sources {
	return Sources{
		Articles: func(articleType string) store.Source[models.Article] {
			return store.SourceFunc[models.Article](func(ctx context.Context, q querysync.Params) (store.Payload[models.Article], error) {
				if err := ctx.Err(); err != nil {
					return store.Payload[models.Article]{}, err
				}
				records, total, err := articles.GetArticles(q.ListQuery(articleType))
				if err != nil {
					return store.Payload[models.Article]{}, err
				}
				return store.Payload[models.Article]{Meta: pagination(q, total), Records: records}, nil
			})
		},
		Users: store.SourceFunc[models.User](func(ctx context.Context, q querysync.Params) (store.Payload[models.User], error) {
			if err := ctx.Err(); err != nil {
				return store.Payload[models.User]{}, err
			}
			records, total, err := users.GetUsers(q.ListQuery(""))
			if err != nil {
				return store.Payload[models.User]{}, err
			}
			return store.Payload[models.User]{Meta: pagination(q, total), Records: records}, nil
		}),
	}
}

func pagination(q querysync.Params, total int64) models.Pagination {
	pages := 0
	if q.PerPage > 0 {
		pages = int((total + int64(q.PerPage) - 1) / int64(q.PerPage))
	}
	return models.Pagination{
		CurrentPage: q.Page,
		PerPage:     q.PerPage,
		Total:       total,
		TotalPages:  pages,
	}
}
