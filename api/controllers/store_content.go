package controllers

import (
	"net/http"

	"github.com/storelinkhq/storelink-backend/api/responses"
	"github.com/storelinkhq/storelink-backend/api/validators"
	"github.com/storelinkhq/storelink-backend/internal/stores"
	"github.com/storelinkhq/storelink-backend/internal/users"
	pkgerrors "github.com/storelinkhq/storelink-backend/pkg/errors"
	"github.com/storelinkhq/storelink-backend/pkg/logger"
)

// CreateWebContent provisions the owner's store content block.
func CreateWebContent(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload stores.CreateContentInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		content, err := svc.CreateContent(r.Context(), ownerID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessageData(w, http.StatusOK, "Store web content created successfully", content)
	}
}

// UpdateWebContent merges the provided fields into the stored content block.
func UpdateWebContent(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload stores.UpdateContentInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		content, err := svc.UpdateContent(r.Context(), ownerID, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessageData(w, http.StatusOK, "Store web content updated successfully", content)
	}
}

// FetchWebContent returns the owner's full store content block.
func FetchWebContent(svc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		content, err := svc.GetContent(r.Context(), ownerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, content)
	}
}

// AdminDataBasic returns the owner profile together with store basics for
// the admin panel header.
func AdminDataBasic(usersSvc users.Service, storesSvc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		basics, err := storesSvc.GetBasics(r.Context(), ownerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := usersSvc.GetProfile(r.Context(), ownerID)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
				err = pkgerrors.New(pkgerrors.CodeNotFound, "Owner not found")
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessageData(w, http.StatusOK, "Store admin basic info fetched successfully", map[string]any{
			"owner": profile,
			"store": basics,
		})
	}
}

// AdminDataAll returns the owner profile together with the complete store
// document for the admin detail view.
func AdminDataAll(usersSvc users.Service, storesSvc stores.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, err := ownerIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store, err := storesSvc.GetFull(r.Context(), ownerID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		profile, err := usersSvc.GetProfile(r.Context(), ownerID)
		if err != nil {
			if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
				err = pkgerrors.New(pkgerrors.CodeNotFound, "Owner not found")
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteMessageData(w, http.StatusOK, "Store admin complete data fetched successfully", map[string]any{
			"owner": profile,
			"store": store,
		})
	}
}
