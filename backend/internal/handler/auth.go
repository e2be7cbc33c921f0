package handler

import (
	"net/http"

	"github.com/itchan-dev/itchan-auth/shared/domain"
	"github.com/itchan-dev/itchan-auth/shared/errors"
	mw "github.com/itchan-dev/itchan-auth/shared/middleware"
	"github.com/itchan-dev/itchan-auth/shared/utils"
)

type credentials struct {
	Email    string `validate:"required" json:"email"`
	Password string `validate:"required" json:"password"`
}

type loginResponse struct {
	User  string `json:"user"`
	Token string `json:"token"`
}

// Login answers 200 with the user and token, or 401 with an empty body.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := utils.DecodeValidate(r.Body, &creds); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	session, err := h.auth.Authenticate(r.Context(), domain.Credentials{Email: creds.Email, Password: creds.Password})
	if err != nil {
		if errors.IsUnauthorized(err) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, loginResponse{User: session.User, Token: session.Token})
}

type meResponse struct {
	UserId    int64 `json:"user_id"`
	ExpiresAt int64 `json:"expires_at"`
}

// Me echoes the identity carried by a token that NeedAuth accepted.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims := mw.GetClaimsFromContext(r)
	if claims == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	resp := meResponse{UserId: claims.Uid}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Unix()
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}
