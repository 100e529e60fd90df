package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nremp/dashboard/pkg/httperrors"
	"github.com/nremp/dashboard/pkg/httputil"
	"github.com/nremp/dashboard/pkg/permissions"
	"github.com/nremp/dashboard/pkg/workspace"
)

// SignInRequest contains the credentials to sign in with.
type SignInRequest struct {
	Email    string `json:"email" example:"ana@example.com"`
	Password string `json:"password" example:"correct horse"`
}

// Session is the signed in principal.
type Session struct {
	Token   string               `json:"token,omitempty" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."` // ID token to send as bearer token
	Profile *permissions.Profile `json:"profile"`                                                          // Profile and permissions of the principal
}

type SessionResponse struct {
	Data Session `json:"data"` // Data for the session
}

// RegisterSessionRoutes registers the public session routes.
func (co Controller) RegisterSessionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", co.OptionsSession)
	r.POST("", co.SignIn)
}

// RegisterAuthenticatedSessionRoutes registers the session routes that
// need a signed in principal.
func (co Controller) RegisterAuthenticatedSessionRoutes(r *gin.RouterGroup) {
	r.GET("", co.GetSession)
	r.DELETE("", co.SignOut)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Session
// @Success		204
// @Router			/v1/session [options]
func (co Controller) OptionsSession(c *gin.Context) {
	httputil.OptionsGetPostDelete(c)
}

// @Summary		Sign in
// @Description	Signs in with email and password and returns an ID token together with the resolved profile
// @Tags			Session
// @Accept			json
// @Produce		json
// @Success		200			{object}	SessionResponse
// @Failure		400			{object}	httperrors.HTTPError
// @Failure		401			{object}	httperrors.HTTPError
// @Failure		500			{object}	httperrors.HTTPError
// @Param			credentials	body		SignInRequest	true	"Credentials"
// @Router			/v1/session [post]
func (co Controller) SignIn(c *gin.Context) {
	var request SignInRequest
	if err := httputil.BindData(c, &request); err != nil {
		httperrors.Handler(c, err)
		return
	}

	principal, err := co.Auth.SignIn(c.Request.Context(), request.Email, request.Password)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	// Resolution failures sign the session out locally
	profile := co.Session.Profile()
	if profile == nil || profile.UID != principal.UID {
		httperrors.Handler(c, workspace.ErrUnauthenticated)
		return
	}

	token, err := co.Auth.IDToken(principal)
	if err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: Session{Token: token, Profile: profile}})
}

// @Summary		Get session
// @Description	Returns the profile of the signed in principal
// @Tags			Session
// @Produce		json
// @Security		BearerAuth
// @Success		200	{object}	SessionResponse
// @Failure		401	{object}	httperrors.HTTPError
// @Router			/v1/session [get]
func (co Controller) GetSession(c *gin.Context) {
	profile := co.Session.Profile()
	if profile == nil {
		httperrors.Handler(c, workspace.ErrUnauthenticated)
		return
	}

	c.JSON(http.StatusOK, SessionResponse{Data: Session{Profile: profile}})
}

// @Summary		Sign out
// @Description	Signs the principal out. All views are torn down.
// @Tags			Session
// @Security		BearerAuth
// @Success		204
// @Failure		401	{object}	httperrors.HTTPError
// @Failure		500	{object}	httperrors.HTTPError
// @Router			/v1/session [delete]
func (co Controller) SignOut(c *gin.Context) {
	if err := co.Auth.SignOut(c.Request.Context()); err != nil {
		httperrors.Handler(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
