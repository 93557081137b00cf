package handlers

import (
	"net/http"

	"admin-backoffice/helper"
	"admin-backoffice/models"
	"admin-backoffice/querysync"
	"admin-backoffice/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: h}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	article, err := h.articleService.CreateArticle(req, currentUserID(c))
	if err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article created", article)
}

// GetArticles answers with {meta, articles} or {message}.
func (h *ArticleHandler) GetArticles(c *gin.Context) {
	params, err := querysync.ParseParams(c.Request.URL.Query())
	if err != nil {
		listFailure(c, http.StatusBadRequest, err)
		return
	}

	articles, total, err := h.articleService.GetArticles(params.ListQuery(c.Query("type")))
	if err != nil {
		listFailure(c, h.Helper.GetStatusCode(err), err)
		return
	}

	c.JSON(http.StatusOK, models.ArticleListResponse{
		Meta:     h.Helper.GeneratePaging(c, params.PerPage, params.Page, total),
		Articles: articles,
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	article, err := h.articleService.GetArticle(id)
	if err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.articleService.DeleteArticle(id); err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *ArticleHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid article ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateArticleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	if err := h.articleService.UpdateStatus(id, req.Status); err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Article status updated successfully", h.Helper.EmptyJsonMap())
}
