package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lukustore/lukustore-backend/api/responses"
	"github.com/lukustore/lukustore-backend/api/validators"
	"github.com/lukustore/lukustore-backend/internal/mixes"
	pkgerrors "github.com/lukustore/lukustore-backend/pkg/errors"
	"github.com/lukustore/lukustore-backend/pkg/logger"
)

var counterActions = map[string]mixes.Counter{
	"play":     mixes.CounterPlay,
	"favorite": mixes.CounterFavorite,
	"download": mixes.CounterDownload,
}

func MixList(svc mixes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := validators.ParsePagination(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		list, err := svc.ListMixes(r.Context(), page)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, list)
	}
}

func MixGet(svc mixes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUintParam(r, "mixId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		mix, err := svc.GetMix(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, mix)
	}
}

func MixCreate(svc mixes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload mixes.MixInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		mix, err := svc.CreateMix(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, mix)
	}
}

func MixUpdate(svc mixes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUintParam(r, "mixId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload mixes.MixInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		mix, err := svc.UpdateMix(r.Context(), id, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, mix)
	}
}

func MixDelete(svc mixes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUintParam(r, "mixId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteMix(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]uint{"deleted": id})
	}
}

// MixBump increments one of the mix engagement counters. The action path
// segment is one of play, favorite, download.
func MixBump(svc mixes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUintParam(r, "mixId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		action := chi.URLParam(r, "action")
		counter, ok := counterActions[action]
		if !ok {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "unknown counter action").
					WithDetails(map[string]any{"action": action}))
			return
		}

		if err := svc.BumpCounter(r.Context(), id, counter); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"bumped": action})
	}
}

func VideoList(svc mixes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := svc.ListVideos(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, videos)
	}
}

func VideoCreate(svc mixes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload mixes.VideoInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		video, err := svc.CreateVideo(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, video)
	}
}

func VideoDelete(svc mixes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseUintParam(r, "videoId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.DeleteVideo(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]uint{"deleted": id})
	}
}
