package errors

type Code string

const (
	CodeUnknown            Code = "UNKNOWN"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeIntegrityViolation Code = "INTEGRITY_VIOLATION"
	CodeAborted            Code = "ABORTED"
	CodeInternal           Code = "INTERNAL"
)
