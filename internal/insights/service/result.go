package service

// Status is the state of a Result.
type Status string

const (
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Result is the uniform outcome of one aggregation call.
type Result[T any] struct {
	Status  Status `json:"status"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Err     error  `json:"-"`
}

// Loading returns a Result that is still in flight.
func Loading[T any]() Result[T] {
	return Result[T]{Status: StatusLoading}
}

// Success wraps data.
func Success[T any](data T) Result[T] {
	return Result[T]{Status: StatusSuccess, Data: data}
}

// Error returns a failed Result carrying a user-facing message and its cause.
func Error[T any](message string, cause error) Result[T] {
	return Result[T]{Status: StatusError, Message: message, Err: cause}
}

// FromError returns a failed Result whose message is UserMessage(err).
func FromError[T any](err error) Result[T] {
	return Error[T](UserMessage(err), err)
}

// From converts a value/error pair.
func From[T any](data T, err error) Result[T] {
	if err != nil {
		return FromError[T](err)
	}
	return Success(data)
}

func (r Result[T]) IsLoading() bool { return r.Status == StatusLoading }
func (r Result[T]) IsSuccess() bool { return r.Status == StatusSuccess }
func (r Result[T]) IsError() bool { return r.Status == StatusError }

// Get returns the data and whether the Result is a success.
func (r Result[T]) Get() (T, bool) {
	return r.Data, r.IsSuccess()
}

// Unwrap returns the data, or the cause of a failure. A Loading result yields
// the zero value and no error.
func (r Result[T]) Unwrap() (T, error) {
	if r.IsError() {
		var zero T
		if r.Err != nil {
			return zero, r.Err
		}
		return zero, &resultError{message: r.Message}
	}
	return r.Data, nil
}

type resultError struct {
	message string
}

func (e *resultError) Error() string { return e.message }
