package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nremp/dashboard/pkg/httperrors"
	"github.com/nremp/dashboard/pkg/httputil"
	"github.com/nremp/dashboard/pkg/messages"
	"github.com/nremp/dashboard/pkg/models"
	"github.com/nremp/dashboard/pkg/store"
	"github.com/nremp/dashboard/pkg/users"
)

// UserCreate contains the fields to create a user with.
type UserCreate struct {
	Email    string      `json:"email" example:"joao@example.com"`
	Password string      `json:"password" example:"s3cret!"`
	Role     models.Role `json:"role" example:"editor"`
}

// RoleChange contains the new role of a user.
type RoleChange struct {
	Role models.Role `json:"role" example:"viewer"`
}

type UserListResponse struct {
	Data    []models.UserAccount `json:"data"`                    // List of users
	Loading bool                 `json:"loading" example:"false"` // True until the first snapshot arrived
}

type UserCreateResponse struct {
	Data    models.UserAccount `json:"data"`                           // The created user
	Message string             `json:"message" example:"Usuário criado."` // Friendly success message
}

type UserQueryFilter struct {
	Search string `form:"search"` // Case insensitive text in the email. * matches any text.
}

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsUserList)
		r.GET("", co.GetUsers)
		r.POST("", co.CreateUser)
	}

	// User with ID
	{
		r.OPTIONS("/:uid", co.OptionsUserDetail)
		r.PATCH("/:uid", co.ChangeUserRole)
		r.DELETE("/:uid", co.RemoveUser)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func (co Controller) OptionsUserList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Param			uid	path	string	true	"UID of the user"
// @Router			/v1/users/{uid} [options]
func (co Controller) OptionsUserDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// @Summary		Get users
// @Description	Returns all user accounts
// @Tags			Users
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	UserListResponse
// @Failure		401		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Param			search	query		string	false	"Filter by email"
// @Router			/v1/users [get]
func (co Controller) GetUsers(c *gin.Context) {
	var filter UserQueryFilter
	if err := c.BindQuery(&filter); err != nil {
		httperrors.New(c, http.StatusBadRequest, "The query string contains unparseable data. Please check the values")
		return
	}

	list, err := co.Workspace.Users()
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, UserListResponse{
		Data:    users.Filter(list, filter.Search),
		Loading: !co.Workspace.Loaded(store.CollectionUsers),
	})
}

// @Summary		Create user
// @Description	Creates an authentication account and its user record. The session of the caller is not changed.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		201		{object}	UserCreateResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Failure		409		{object}	httperrors.HTTPError
// @Param			user	body		UserCreate	true	"User"
// @Router			/v1/users [post]
func (co Controller) CreateUser(c *gin.Context) {
	var create UserCreate
	if err := httputil.BindData(c, &create); err != nil {
		httperrors.Handler(c, err)
		return
	}

	account, err := co.Users.Create(c.Request.Context(), create.Email, create.Password, create.Role)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusCreated, UserCreateResponse{
		Data:    account,
		Message: messages.Success(httputil.Language(c), messages.UserCreated),
	})
}

// @Summary		Change role
// @Description	Changes the role of a user. Changing the own role is refused.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Security		BearerAuth
// @Success		200		{object}	MessageResponse
// @Failure		400		{object}	httperrors.HTTPError
// @Failure		403		{object}	httperrors.HTTPError
// @Failure		404		{object}	httperrors.HTTPError
// @Param			uid		path		string		true	"UID of the user"
// @Param			role	body		RoleChange	true	"New role"
// @Router			/v1/users/{uid} [patch]
func (co Controller) ChangeUserRole(c *gin.Context) {
	var change RoleChange
	if err := httputil.BindData(c, &change); err != nil {
		httperrors.Handler(c, err)
		return
	}

	if err := co.Users.ChangeRole(c.Request.Context(), c.Param("uid"), change.Role); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: messages.Success(httputil.Language(c), messages.UserRoleChanged)})
}

// @Summary		Remove user
// @Description	Removes the user record. Removing the own account is refused.
// @Tags			Users
// @Security		BearerAuth
// @Success		204
// @Failure		403	{object}	httperrors.HTTPError
// @Failure		404	{object}	httperrors.HTTPError
// @Param			uid	path		string	true	"UID of the user"
// @Router			/v1/users/{uid} [delete]
func (co Controller) RemoveUser(c *gin.Context) {
	if err := co.Users.Remove(c.Request.Context(), c.Param("uid")); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
