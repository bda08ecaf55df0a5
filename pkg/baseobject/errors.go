package baseobject

import (
	"github.com/pkg/errors"
	"github.com/ryanmorr/base-object/pkg/contracts"
	"github.com/ryanmorr/base-object/pkg/utils"
)

var (
	// ErrUnknownMember is returned by Object.Call if no such member is defined.
	ErrUnknownMember   = errors.New("unknown member")
	// ErrNotCallable is returned by Object.Call if the member is not a Method.
	ErrNotCallable     = errors.New("member is not callable")
	// ErrCyclicReference is returned by Object.ToJSON if the Object contains itself.
	ErrCyclicReference = errors.New("cyclic reference")
)

// Error is a failure raised by an Object, see Object.Fail.
// Its message is prefixed with the class name and identity of that Object.
type Error struct {
	className string
	id        string
	msg       string
}

// ClassName returns the class name of the failing Object.
func (e *Error) ClassName() string {
	return e.className
}

// ID returns the identity of the failing Object.
func (e *Error) ID() string {
	return e.id
}

// Message returns the message without prefix.
func (e *Error) Message() string {
	return e.msg
}

// Error implements the error interface.
func (e *Error) Error() string {
	return utils.FormatMessage(e, e.msg)
}

// Assert interface compliance.
var (
	_ error                = (*Error)(nil)
	_ contracts.IDer       = (*Error)(nil)
	_ contracts.ClassNamer = (*Error)(nil)
)
