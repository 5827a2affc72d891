package dto

// Every API response carries success. Failures add a human-readable error
// that clients show verbatim.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func Fail(message string) ErrorResponse {
	return ErrorResponse{Success: false, Error: message}
}

type DataResponse[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func OK[T any](data T) DataResponse[T] {
	return DataResponse[T]{Success: true, Data: data}
}
