package errors

import "net/http"

const (
	CodeInvalidInput            = "INVALID_INPUT"
	CodeMissingCredential       = "MISSING_CREDENTIAL"
	CodeUnexpectedResponseShape = "UNEXPECTED_RESPONSE_SHAPE"
	CodeInvalidCoordinate       = "INVALID_COORDINATE"
	CodeRemoteService           = "REMOTE_SERVICE_ERROR"
	CodeEmptyInput              = "EMPTY_INPUT"
	CodeNotFound                = "NOT_FOUND"
	CodeInvalidRequest          = "INVALID_REQUEST"
	CodeInternalServer          = "INTERNAL_SERVER_ERROR"
)

var (
	// ErrInvalidInput - wrong number of places or an empty name
	ErrInvalidInput = New(
		CodeInvalidInput,
		"Two or three non-empty place names are required",
		http.StatusBadRequest,
	)

	// ErrMissingCredential - the geocoding token is not configured
	ErrMissingCredential = New(
		CodeMissingCredential,
		"Geocoding API token is not configured (GEOCODING_API_TOKEN)",
		http.StatusInternalServerError,
	)

	// ErrUnexpectedResponseShape - the geocoding service answered, but not with a usable element
	ErrUnexpectedResponseShape = New(
		CodeUnexpectedResponseShape,
		"Unexpected response from geocoding service",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinate = New(
		CodeInvalidCoordinate,
		"Geocoded element has no valid latitude/longitude",
		http.StatusBadRequest,
	)

	// ErrRemoteService - transport failure, timeout or non-2xx status
	ErrRemoteService = New(
		CodeRemoteService,
		"Geocoding service request failed",
		http.StatusBadGateway,
	)

	ErrEmptyInput = New(
		CodeEmptyInput,
		"Spherical mean requires at least one point",
		http.StatusInternalServerError,
	)

	ErrNotFound = New(
		CodeNotFound,
		"Result not found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		CodeInvalidRequest,
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		CodeInternalServer,
		"Internal server error",
		http.StatusInternalServerError,
	)
)
