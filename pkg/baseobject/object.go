// Package baseobject provides Object, a property container with an immutable identity,
// per-property flags, structural hash codes and logging, along with single inheritance
// and mixins through Class.
package baseobject

import (
	"github.com/pkg/errors"
	"github.com/ryanmorr/base-object/pkg/contracts"
	"github.com/ryanmorr/base-object/pkg/logging"
	"github.com/ryanmorr/base-object/pkg/types"
	"github.com/ryanmorr/base-object/pkg/utils"
	"reflect"
)

// state is the lifecycle state of an Object.
type state uint8

const (
	live state = iota
	destroyed
)

// Object is an instance of a Class.
//
// Its identity is kept apart from its properties, so it never shows up in
// GetProperties, ToJSON or HashCode. Unless stated otherwise, methods return
// the Object itself for chaining.
//
// Objects are not safe for concurrent use.
type Object struct {
	id         string
	class      *Class
	properties map[string]*property
	state      state

	// serializing is set while ToJSON is running.
	serializing bool
}

// New constructs an Object of Base, see Class.New.
func New(properties map[string]any) *Object {
	return Base.New(properties)
}

// Initialize runs the initialize hook of the Object's class again.
func (o *Object) Initialize() *Object {
	o.class.Initialize(o)

	return o
}

// Destroy removes all own properties regardless of their flags.
// The identity and class are retained. Subsequent calls only log a warning.
func (o *Object) Destroy() *Object {
	if o.state == destroyed {
		return o.Warn("Instance already destroyed")
	}

	clear(o.properties)
	o.state = destroyed

	return o
}

// IsDestroyed returns whether Destroy has been called.
func (o *Object) IsDestroyed() bool {
	return o.state == destroyed
}

// ID returns the identity assigned at construction.
func (o *Object) ID() string {
	return o.id
}

// Class returns the Class the Object was constructed from.
func (o *Object) Class() *Class {
	return o.class
}

// InstanceOf returns whether the Object's class is c or extends it.
func (o *Object) InstanceOf(c *Class) bool {
	return o.class.IsA(c)
}

// DefineProperties defines each of the given properties with DefaultDescriptor.
func (o *Object) DefineProperties(properties map[string]any) *Object {
	for name, value := range properties {
		o.DefineProperty(name, value)
	}

	return o
}

// DefineProperty defines or redefines an own property.
// The flags of DefaultDescriptor are overridden by opts.
// Non-configurable properties can't be redefined, which is logged as a warning.
func (o *Object) DefineProperty(name string, value any, opts ...DescriptorOption) *Object {
	if p, ok := o.properties[name]; ok && !p.Configurable {
		return o.Warn(`"` + name + `" property is not configurable`)
	}

	o.properties[name] = &property{Descriptor: newDescriptor(opts...), value: asMethod(value)}

	return o
}

// HasProperty returns whether name is an own property.
//
// Members inherited from the class chain don't count.
// Use LookupProperty to check for those as well.
func (o *Object) HasProperty(name string) bool {
	_, ok := o.properties[name]

	return ok
}

// LookupProperty returns the value of the own property name or,
// if there is none, of the nearest class member name.
// The boolean reports whether any was found.
func (o *Object) LookupProperty(name string) (any, bool) {
	if p, ok := o.properties[name]; ok {
		return p.value, true
	}

	return o.class.lookup(name)
}

// GetProperty is like LookupProperty but returns nil if name is not found.
func (o *Object) GetProperty(name string) any {
	value, _ := o.LookupProperty(name)

	return value
}

// Descriptor returns the flags of the own property name.
func (o *Object) Descriptor(name string) (Descriptor, bool) {
	if p, ok := o.properties[name]; ok {
		return p.Descriptor, true
	}

	return Descriptor{}, false
}

// SetProperty assigns value to the own property name, defining it with DefaultDescriptor if necessary.
// Assignments to non-writable properties are silently ignored.
func (o *Object) SetProperty(name string, value any) *Object {
	value = asMethod(value)

	if p, ok := o.properties[name]; ok {
		if p.Writable {
			p.value = value
		}

		return o
	}

	o.properties[name] = &property{Descriptor: DefaultDescriptor, value: value}

	return o
}

// RemoveProperty removes the own property name.
// Removing an absent or non-configurable property is logged as a warning.
func (o *Object) RemoveProperty(name string) *Object {
	p, ok := o.properties[name]
	switch {
	case !ok:
		return o.Warn(`"` + name + `" property does not exist`)
	case !p.Configurable:
		return o.Warn(`"` + name + `" property is not configurable`)
	}

	delete(o.properties, name)

	return o
}

// GetProperties returns all own properties, including non-enumerable ones,
// along with the non-Method members of the class chain.
// Own properties take precedence over class members, nearer classes over farther ones.
func (o *Object) GetProperties() map[string]any {
	properties := make(map[string]any, len(o.properties))
	for name, p := range o.properties {
		properties[name] = p.value
	}

	for _, c := range o.class.Ancestors() {
		for name, member := range c.table {
			if _, ok := properties[name]; ok || isFunc(member) {
				continue
			}

			properties[name] = member
		}
	}

	return properties
}

// HashCode returns the structural hash code of GetProperties.
func (o *Object) HashCode() int32 {
	return utils.HashCode(o.GetProperties())
}

// ValueOf returns HashCode, i.e. the numeric representation of the Object.
func (o *Object) ValueOf() int32 {
	return o.HashCode()
}

// Equal returns whether other is an Object of the same class with structurally equal GetProperties.
// Nested Objects are compared the same way, functions by identity.
func (o *Object) Equal(other contracts.Equaler) bool {
	oo, ok := other.(*Object)
	if !ok || o == nil || oo == nil {
		return ok && o == oo
	}

	if o.class != oo.class || o.HashCode() != oo.HashCode() {
		return false
	}

	return (&comparison{visited: map[[2]*Object]struct{}{}}).objects(o, oo)
}

// Call invokes the Method name, resolved like LookupProperty, with the given arguments.
func (o *Object) Call(name string, args ...any) (any, error) {
	member, ok := o.LookupProperty(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMember, "can't call %q on %s", name, o)
	}

	method, ok := member.(Method)
	if !ok {
		return nil, errors.Wrapf(ErrNotCallable, "can't call %q of type %T on %s", name, member, o)
	}

	return method(o, args...)
}

// Log writes msg, prefixed by FormatMessage, to the informational channel of the sink.
func (o *Object) Log(msg string) *Object {
	logging.Print(o.class.sink(), logging.LevelLog, utils.FormatMessage(o, msg))

	return o
}

// Warn writes msg, prefixed by FormatMessage, to the warning channel of the sink.
func (o *Object) Warn(msg string) *Object {
	logging.Print(o.class.sink(), logging.LevelWarn, utils.FormatMessage(o, msg))

	return o
}

// Fail returns an *Error whose message is msg prefixed with the class name and identity of the Object.
// The error carries a stack trace.
func (o *Object) Fail(msg string) error {
	return errors.WithStack(&Error{className: o.ClassName(), id: o.id, msg: msg})
}

// ClassName returns the name of the Object's class.
func (o *Object) ClassName() string {
	return o.class.name
}

// String returns "[object <ClassName>]".
func (o *Object) String() string {
	return "[object " + o.ClassName() + "]"
}

// ToJSON serializes all own enumerable properties except functions as JSON object.
// An Object which contains itself, directly or through other values, can't be serialized.
func (o *Object) ToJSON() ([]byte, error) {
	if o.serializing {
		return nil, errors.Wrapf(ErrCyclicReference, "can't serialize %s", o)
	}

	o.serializing = true
	defer func() { o.serializing = false }()

	properties := make(map[string]any, len(o.properties))
	for name, p := range o.properties {
		if p.Enumerable && !isFunc(p.value) {
			properties[name] = p.value
		}
	}

	return types.MarshalJSON(properties)
}

// MarshalJSON implements the json.Marshaler interface.
func (o *Object) MarshalJSON() ([]byte, error) {
	return o.ToJSON()
}

// asMethod returns v as Method if it has the signature of one, v otherwise.
func asMethod(v any) any {
	if f, ok := v.(func(*Object, ...any) (any, error)); ok {
		return Method(f)
	}

	return v
}

// isFunc returns whether v is a Method or any other function.
func isFunc(v any) bool {
	if _, ok := v.(Method); ok {
		return true
	}

	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// Assert interface compliance.
var (
	_ contracts.Entity     = (*Object)(nil)
	_ contracts.Equaler    = (*Object)(nil)
	_ utils.PropertyGetter = (*Object)(nil)
)
