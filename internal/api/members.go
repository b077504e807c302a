package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"summit-insurance/portal/internal/auth"
	"summit-insurance/portal/internal/common"
	"summit-insurance/portal/internal/constants"
	"summit-insurance/portal/internal/models/dtos"
	"summit-insurance/portal/internal/services"
	"summit-insurance/portal/internal/validation"
)

// MemberDirectory is the slice of the member service the handlers need.
type MemberDirectory interface {
	GetProfile(ctx context.Context, userID string) (*dtos.ProfileResp, error)
	UpdateProfile(ctx context.Context, userID string, req dtos.UpdateProfileReq) (*dtos.ProfileResp, error)
	ListMembers(ctx context.Context) ([]dtos.MemberResp, error)
}

// GetOwnProfileHandler handles GET /api/v1/members/me
func GetOwnProfileHandler(members MemberDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.MsgAccessDenied, http.StatusUnauthorized)
			return
		}

		profile, err := members.GetProfile(r.Context(), claims.UserID())
		if err != nil {
			if errors.Is(err, services.ErrMemberNotFound) {
				common.RespondError(w, initTime, err, "Profile not found.", http.StatusNotFound)
				return
			}
			common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Profile retrieved", profile)
	}
}

// UpdateOwnProfileHandler handles PUT /api/v1/members/me
func UpdateOwnProfileHandler(members MemberDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.MsgAccessDenied, http.StatusUnauthorized)
			return
		}

		var req dtos.UpdateProfileReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		profile, err := members.UpdateProfile(r.Context(), claims.UserID(), req)
		if err != nil {
			var vErr *validation.Error
			switch {
			case errors.As(err, &vErr):
				common.RespondError(w, initTime, err, vErr.Message, http.StatusBadRequest)
			case errors.Is(err, services.ErrMemberNotFound):
				common.RespondError(w, initTime, err, "Profile not found.", http.StatusNotFound)
			default:
				common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			}
			return
		}

		common.RespondSuccess(w, initTime, "Profile updated", profile)
	}
}

// ListMembersHandler handles GET /api/v1/admin/members
func ListMembersHandler(members MemberDirectory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		list, err := members.ListMembers(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, constants.MsgGenericFailure, http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Members retrieved", list)
	}
}
