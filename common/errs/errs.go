package errs

// ErrorKind identifies a kind of internal error.
// fully support for errors.Is and errors.As.
type ErrorKind string

const (
	// NotFound is returned when a requested item is not found.
	NotFound        = ErrorKind("Not Found")
	InvalidArgument = ErrorKind("Invalid Argument")
	Unsupported     = ErrorKind("Unsupported")
	Timeout         = ErrorKind("Timeout")

	// Rejected marks a validation rejection. The operation aborted without any state change.
	Rejected = ErrorKind("Rejected")

	// Unauthorized marks a caller lacking the role required by the operation.
	Unauthorized = ErrorKind("Unauthorized")

	// TransferFailed marks a failed inbound or outbound value transfer. The operation was unwound.
	TransferFailed = ErrorKind("Transfer Failed")

	// IntegrityViolation marks bookkeeping that disagrees with custody. It is fatal, never retryable.
	IntegrityViolation = ErrorKind("Integrity Violation")

	// Reentrancy marks an entry point invoked while another entry point is still running on the same call path.
	Reentrancy = ErrorKind("Reentrancy")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}
