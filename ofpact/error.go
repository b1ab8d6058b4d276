package ofpact

import (
	"fmt"

	"github.com/aagrwal5/openvswitch/ofp4"
	"github.com/op/go-logging"
)

// Violation names the invariant a rejected action broke.
type Violation int

const (
	LengthMismatch Violation = iota + 1
	NonZeroPadding
	MaskedField
	UnknownField
	DisallowedField
	InvalidValue
	BadSubField
	WrongKind
	WrongType
	Truncated
)

var violationNames = map[Violation]string{
	LengthMismatch:  "length mismatch",
	NonZeroPadding:  "non-zero padding",
	MaskedField:     "masked field",
	UnknownField:    "unknown field",
	DisallowedField: "field not allowed",
	InvalidValue:    "invalid value",
	BadSubField:     "bad sub-field",
	WrongKind:       "wrong action kind",
	WrongType:       "wrong action type",
	Truncated:       "truncated action",
}

func (v Violation) String() string {
	if s, ok := violationNames[v]; ok {
		return s
	}
	return fmt.Sprintf("violation(%d)", int(v))
}

// BadArgument is returned by the wire decoder and by the checks. It is meant
// to be turned into an OFPT_ERROR reply with Ofp.
type BadArgument struct {
	Reason Violation
	Detail string
}

func badArgument(reason Violation, format string, args ...interface{}) *BadArgument {
	err := &BadArgument{
		Reason: reason,
		Detail: fmt.Sprintf(format, args...),
	}
	logger.Debugf("rejecting action: %v", err)
	return err
}

func (self *BadArgument) Error() string {
	if self.Detail == "" {
		return self.Reason.String()
	}
	return fmt.Sprintf("%v: %s", self.Reason, self.Detail)
}

func (self *BadArgument) Ofp() ofp4.Error {
	code := uint16(ofp4.OFPBAC_BAD_ARGUMENT)
	if self.Reason == WrongType {
		code = ofp4.OFPBAC_BAD_TYPE
	}
	return ofp4.Error{
		Type: ofp4.OFPET_BAD_ACTION,
		Code: code,
	}
}

// ConfigError is a mistake in operator supplied action text. The operation
// that met it must not go on; see Fatal.
type ConfigError struct {
	Input string
	Msg   string
}

func configError(input, format string, args ...interface{}) *ConfigError {
	return &ConfigError{
		Input: input,
		Msg:   fmt.Sprintf(format, args...),
	}
}

func (self *ConfigError) Error() string {
	return self.Msg
}

// Fatal reports err to the operator and terminates the process. It does
// nothing when err is nil.
func Fatal(log *logging.Logger, err *ConfigError) {
	if err == nil {
		return
	}
	log.Fatal(err.Msg)
}
