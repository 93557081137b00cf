package handlers

import (
	"net/http"

	"admin-backoffice/helper"
	"admin-backoffice/models"
	"admin-backoffice/querysync"
	"admin-backoffice/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
	Helper      *helper.HTTPHelper
}

func NewUserHandler(userService services.UserService, h *helper.HTTPHelper) *UserHandler {
	return &UserHandler{userService: userService, Helper: h}
}

// GetUsers answers with {meta, users} or {message}.
func (h *UserHandler) GetUsers(c *gin.Context) {
	params, err := querysync.ParseParams(c.Request.URL.Query())
	if err != nil {
		listFailure(c, http.StatusBadRequest, err)
		return
	}

	users, total, err := h.userService.GetUsers(params.ListQuery(""))
	if err != nil {
		listFailure(c, h.Helper.GetStatusCode(err), err)
		return
	}

	c.JSON(http.StatusOK, models.UserListResponse{
		Meta:  h.Helper.GeneratePaging(c, params.PerPage, params.Page, total),
		Users: users,
	})
}

func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.userService.GetUser(id)
	if err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Success", user)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	if err := h.userService.DeleteUser(id, currentUserID(c)); err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User deleted successfully", h.Helper.EmptyJsonMap())
}

func (h *UserHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		h.Helper.SendBadRequest(c, "Invalid user ID", h.Helper.EmptyJsonMap())
		return
	}

	var req models.UpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Error ", err.Error())
		return
	}
	if !h.Helper.ValidateStruct(c, req) {
		return
	}

	if err := h.userService.UpdateStatus(id, req.Status); err != nil {
		h.Helper.SendTypedError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "User status updated successfully", h.Helper.EmptyJsonMap())
}
