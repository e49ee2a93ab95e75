package domain

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// ConfigurationErr represents a fatal startup problem, such as missing
// credentials or an empty knowledge base. It is never produced per request.
type ConfigurationErr struct {
	domainErr
}

// NewConfigurationErr creates a new ConfigurationErr with the given message.
func NewConfigurationErr(message string) *ConfigurationErr {
	return &ConfigurationErr{
		domainErr: domainErr{message: message},
	}
}

// TransportErr represents a failed call to an external model service,
// timeouts included. The cause is kept for errors.Is/As.
type TransportErr struct {
	domainErr
	cause error
}

// NewTransportErr creates a new TransportErr wrapping the given cause.
func NewTransportErr(message string, cause error) *TransportErr {
	if cause != nil {
		message = message + ": " + cause.Error()
	}
	return &TransportErr{
		domainErr: domainErr{message: message},
		cause:     cause,
	}
}

// Unwrap returns the underlying cause.
func (e *TransportErr) Unwrap() error {
	return e.cause
}
