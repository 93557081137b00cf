package intents

import (
	"context"
	"fmt"

	"admin-backoffice/models"
	"admin-backoffice/services"
)

type ArticleEffects struct {
	articles services.ArticleService
}

func NewArticleEffects(articles services.ArticleService) *ArticleEffects {
	return &ArticleEffects{articles: articles}
}

func (e *ArticleEffects) Handle(ctx context.Context, in Intent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch in.Kind {
	case Delete:
		return e.articles.DeleteArticle(in.ID)
	case ChangeStatus:
		return e.articles.UpdateStatus(in.ID, models.ArticleStatus(in.Status))
	default:
		return fmt.Errorf("article %s: %w", in, ErrUnknownIntent)
	}
}

type UserEffects struct {
	users services.UserService
}

func NewUserEffects(users services.UserService) *UserEffects {
	return &UserEffects{users: users}
}

func (e *UserEffects) Handle(ctx context.Context, in Intent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	switch in.Kind {
	case Delete:
		return e.users.DeleteUser(in.ID, in.ActorID)
	case ChangeStatus:
		return e.users.UpdateStatus(in.ID, models.UserStatus(in.Status))
	default:
		return fmt.Errorf("user %s: %w", in, ErrUnknownIntent)
	}
}
