package controllers

import (
	"net/http"

	"github.com/storelinkhq/storelink-backend/api/responses"
	"github.com/storelinkhq/storelink-backend/api/validators"
	"github.com/storelinkhq/storelink-backend/internal/sociallinks"
	"github.com/storelinkhq/storelink-backend/pkg/logger"
	"github.com/storelinkhq/storelink-backend/pkg/types"
)

type socialLinksRequest struct {
	SocialLinks *[]types.SocialLink `json:"socialLinks"`
}

// GetSocialLinks returns the owner's ordered link tree.
func GetSocialLinks(svc sociallinks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		links, err := svc.Get(r.Context(), ownerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessageData(w, http.StatusOK, "Social links fetched successfully", links)
	}
}

// UpdateSocialLinks replaces the whole link tree in one save.
func UpdateSocialLinks(svc sociallinks.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload socialLinksRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Replace(r.Context(), ownerID, payload.SocialLinks); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessage(w, http.StatusOK, "Social links updated successfully")
	}
}
