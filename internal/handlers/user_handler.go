package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/booking-api/internal/domain/user"
	"github.com/BruksfildServices01/booking-api/internal/httperr"
	"github.com/BruksfildServices01/booking-api/internal/httpresp"
	"github.com/BruksfildServices01/booking-api/internal/models"
)

// EmailCheck reports whether the domain of an address can receive mail.
type EmailCheck func(email string) bool

type UserHandler struct {
	repo       user.Repository
	audit      Auditor
	checkEmail EmailCheck
}

// NewUserHandler builds the handler. A nil check skips the domain lookup.
func NewUserHandler(repo user.Repository, audit Auditor, check EmailCheck) *UserHandler {
	return &UserHandler{repo: repo, audit: audit, checkEmail: check}
}

type CreateUserRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email,max=100"`
	Phonenumber string `json:"phonenumber" binding:"max=20"`
}

type UpdateUserRequest struct {
	ID          uint    `json:"id" binding:"required"`
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email       *string `json:"email" binding:"omitempty,email,max=100"`
	Phonenumber *string `json:"phonenumber" binding:"omitempty,max=20"`
}

func (h *UserHandler) emailAccepted(c *gin.Context, email string) bool {
	if h.checkEmail == nil || h.checkEmail(email) {
		return true
	}
	httperr.NotAcceptable(c, "invalid_email_domain", fmt.Sprintf("Email domain of %s does not accept mail", email))
	return false
}

// ======================================================
// LIST
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	if rejectBody(c) {
		return
	}

	id, err := queryID(c, "id")
	if err != nil {
		httperr.NotAcceptable(c, "invalid_input", err.Error())
		return
	}

	out, err := h.repo.List(c.Request.Context(), user.Filter{
		ID:   id,
		Name: c.Query("name"),
	})
	if err != nil {
		httperr.Internal(c, "failed_to_list_users", err.Error())
		return
	}
	if out == nil {
		out = []models.User{}
	}

	httpresp.OK(c, out)
}

// ======================================================
// CREATE
// ======================================================

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.NotAcceptable(c, "invalid_input", err.Error())
		return
	}
	if !h.emailAccepted(c, req.Email) {
		return
	}

	u := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Phonenumber: req.Phonenumber,
	}
	if err := h.repo.Create(c.Request.Context(), &u); err != nil {
		httperr.Internal(c, "failed_to_create_user", err.Error())
		return
	}

	h.audit.Dispatch(event("user_created", "user", u.ID, nil))
	httpresp.Done(c, fmt.Sprintf("User %s added", u.Name))
}

// ======================================================
// UPDATE
// ======================================================

func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.NotAcceptable(c, "invalid_input", err.Error())
		return
	}
	if req.Email != nil && !h.emailAccepted(c, *req.Email) {
		return
	}

	ctx := c.Request.Context()

	u, err := h.repo.Get(ctx, req.ID)
	if err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "user_not_found", fmt.Sprintf("User with given ID: %d was not found", req.ID))
			return
		}
		httperr.Internal(c, "failed_to_get_user", err.Error())
		return
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Phonenumber != nil {
		u.Phonenumber = *req.Phonenumber
	}

	if err := h.repo.Update(ctx, u); err != nil {
		httperr.Internal(c, "failed_to_update_user", err.Error())
		return
	}

	h.audit.Dispatch(event("user_updated", "user", u.ID, nil))
	httpresp.Done(c, fmt.Sprintf("User with ID %d updated", u.ID))
}

// ======================================================
// DELETE
// ======================================================

func (h *UserHandler) Delete(c *gin.Context) {
	if rejectBody(c) {
		return
	}
	id, ok := requiredQueryID(c)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, "user_not_found", fmt.Sprintf("User with given ID: %d was not found", id))
			return
		}
		httperr.Internal(c, "failed_to_delete_user", err.Error())
		return
	}

	h.audit.Dispatch(event("user_deleted", "user", id, nil))
	httpresp.Done(c, fmt.Sprintf("User with ID %d removed", id))
}
