// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-eas-sync/internal/logger"
	"github.com/MKhiriev/go-eas-sync/internal/service"
	"github.com/MKhiriev/go-eas-sync/internal/store"
	"github.com/MKhiriev/go-eas-sync/internal/utils"
)

// Request errors reported by the control API.
var (
	// ErrInvalidAttachmentID is returned when the attachment id in the path
	// is not a positive integer.
	ErrInvalidAttachmentID = errors.New("invalid attachment id")

	// ErrInvalidCollectionID is returned when the collection_id query
	// parameter is missing or not a positive integer.
	ErrInvalidCollectionID = errors.New("invalid collection id")

	errRouteNotFound    = errors.New("route not found")
	errMethodNotAllowed = errors.New("method not allowed")
)

var errorStatusMap = map[error]int{
	ErrInvalidAttachmentID: http.StatusBadRequest,
	ErrInvalidCollectionID: http.StatusBadRequest,
	errRouteNotFound:       http.StatusNotFound,
	errMethodNotAllowed:    http.StatusMethodNotAllowed,

	store.ErrAccountNotFound:    http.StatusNotFound,
	store.ErrCollectionNotFound: http.StatusNotFound,
	store.ErrAttachmentNotFound: http.StatusNotFound,

	service.ErrAuthenticationFailure: http.StatusBadGateway,
	service.ErrProtocolViolation:     http.StatusBadGateway,
	service.ErrTransportFailure:      http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError answers with the status mapped from err and a JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		logger.FromRequest(r).Err(err).Str("uri", r.RequestURI).Msg("request failed")
	}
	_, _ = utils.WriteJSON(w, errorResponse{Error: err.Error()}, status)
}
