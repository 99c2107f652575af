package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	TimeoutExceeded     failure.ErrorCode = "TimeoutExceeded"
	Forbidden           failure.ErrorCode = "Forbidden"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"

	BusinessNotFound   failure.ErrorCode = "BusinessNotFound"
	CardNotFound       failure.ErrorCode = "CardNotFound"
	CatalogConfig      failure.ErrorCode = "CatalogConfig"
	InvalidCoordinates failure.ErrorCode = "InvalidCoordinates"
	InvalidCategory    failure.ErrorCode = "InvalidCategory"
	InvalidRadius      failure.ErrorCode = "InvalidRadius"
	MissingTarget      failure.ErrorCode = "MissingTarget"
	PlacesUnavailable  failure.ErrorCode = "PlacesUnavailable"
)
