package sim

import "fmt"

// The pipeline's failure taxonomy. Every error is fatal: the computation is a
// deterministic batch, so a failure means a configuration or logic defect,
// never a transient condition worth retrying. Errors propagate to the top
// level and abort the run.

// ConfigurationError reports an invalid cohort size, split ratio, or
// calibration parameter. Raised before any simulation runs.
type ConfigurationError struct {
	msg string
}

func (e *ConfigurationError) Error() string { return e.msg }

func configErrorf(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{msg: fmt.Sprintf(format, args...)}
}

// DataIntegrityError reports a simulated value escaping its valid range,
// e.g. a PDC draw or admission probability outside [0,1]. This indicates a
// distribution-parameter bug and is never silently clamped.
type DataIntegrityError struct {
	msg string
}

func (e *DataIntegrityError) Error() string { return e.msg }

func dataIntegrityErrorf(format string, args ...any) *DataIntegrityError {
	return &DataIntegrityError{msg: fmt.Sprintf(format, args...)}
}

// AggregationError reports a degenerate record set at the reduction stage,
// e.g. a group with zero members or a member missing a record.
type AggregationError struct {
	msg string
}

func (e *AggregationError) Error() string { return e.msg }

func aggregationErrorf(format string, args ...any) *AggregationError {
	return &AggregationError{msg: fmt.Sprintf(format, args...)}
}

// SerializationError reports a malformed internal aggregate at export time.
// Valid aggregates never trigger it.
type SerializationError struct {
	msg string
}

func (e *SerializationError) Error() string { return e.msg }

func serializationErrorf(format string, args ...any) *SerializationError {
	return &SerializationError{msg: fmt.Sprintf(format, args...)}
}
