package commons

type Response[T any] struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Data     *T       `json:"data,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

// WarningResponse is a success whose side channel partially failed,
// e.g. credentials were issued but the notification did not go out.
func WarningResponse[T any](message string, data T, warnings ...string) Response[T] {
	return Response[T]{
		Success:  true,
		Message:  message,
		Data:     &data,
		Warnings: warnings,
	}
}

func ErrorResponse[T any](message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Message: message,
		Errors:  errors,
	}
}
