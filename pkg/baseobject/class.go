package baseobject

import (
	"fmt"
	"github.com/ryanmorr/base-object/pkg/strcase"
	"github.com/ryanmorr/base-object/pkg/types"
	"github.com/ryanmorr/base-object/pkg/utils"
	"go.uber.org/zap"
)

// Method is a behavior stored in a Class table. It is invoked with Object.Call.
type Method func(o *Object, args ...any) (any, error)

// Class is the type of an Object.
//
// Every Class owns a mutable table of shared members, i.e. Methods and default property values,
// and refers to its parent Class. Objects resolve members through this chain at call time,
// so that Mixin affects existing and future instances of the Class and its subclasses alike.
//
// Classes are not safe for concurrent modification.
type Class struct {
	name       string
	parent     *Class
	table      map[string]any
	initialize func(*Object)
	logger     *zap.SugaredLogger
}

// Base is the root of every class hierarchy.
var Base = &Class{name: "BaseObject", table: map[string]any{}}

// NewClass returns a new Class with the given name which extends Base.
func NewClass(name string) *Class {
	return Base.Extend(&Class{name: name, table: map[string]any{}})
}

// ClassOf returns a new Class which extends Base and is named after the declared type of v.
func ClassOf(v any) *Class {
	return NewClass(types.Name(v))
}

// Name returns the class name.
func (c *Class) Name() string {
	return c.name
}

// Parent returns the Class c extends, nil for Base.
func (c *Class) Parent() *Class {
	return c.parent
}

// Ancestors returns c and its parents, nearest first.
func (c *Class) Ancestors() []*Class {
	var chain []*Class
	for k := c; k != nil; k = k.parent {
		chain = append(chain, k)
	}

	return chain
}

// IsA returns whether c is other or extends it.
func (c *Class) IsA(other *Class) bool {
	for k := c; k != nil; k = k.parent {
		if k == other {
			return true
		}
	}

	return false
}

// Extend makes sub inherit the table chain of c and returns sub.
// Extend panics if c already is a sub, which would make the chain cyclic.
func (c *Class) Extend(sub *Class) *Class {
	if c.IsA(sub) {
		panic(fmt.Sprintf("class %s can't extend its descendant %s", sub.name, c.name))
	}

	if sub.table == nil {
		sub.table = map[string]any{}
	}

	sub.parent = c

	return sub
}

// Subclass returns a new Class with the given name which extends c.
func (c *Class) Subclass(name string) *Class {
	return c.Extend(&Class{name: name, table: map[string]any{}})
}

// Mixin copies all members of the given sources into the table of c, later sources winning.
// Functions with the signature of Method are stored as Methods.
func (c *Class) Mixin(sources ...map[string]any) *Class {
	utils.Merge(c.table, sources...)

	for name, member := range c.table {
		c.table[name] = asMethod(member)
	}

	return c
}

// OnInitialize sets the hook which Objects of c and its subclasses run after construction.
// The hook of the nearest Class in the chain wins.
// A hook may run the overridden one by calling Initialize on the parent of its own Class.
func (c *Class) OnInitialize(hook func(o *Object)) *Class {
	c.initialize = hook

	return c
}

// Initialize runs the nearest initialize hook of c for o. Without any hook, Initialize is a no-op.
func (c *Class) Initialize(o *Object) {
	for k := c; k != nil; k = k.parent {
		if k.initialize != nil {
			k.initialize(o)

			return
		}
	}
}

// SetLogger sets the sink for Objects of c and its subclasses which don't have a nearer one.
func (c *Class) SetLogger(logger *zap.SugaredLogger) *Class {
	c.logger = logger

	return c
}

// New constructs an Object of c: it assigns a new identity, defines the given properties (if any)
// with DefaultDescriptor and runs the initialize hook.
func (c *Class) New(properties map[string]any) *Object {
	o := &Object{
		id:         nextID(),
		class:      c,
		properties: map[string]*property{},
	}

	if properties != nil {
		o.DefineProperties(properties)
	}

	o.Initialize()

	return o
}

// lookup resolves name through the table chain, nearest first.
func (c *Class) lookup(name string) (any, bool) {
	for k := c; k != nil; k = k.parent {
		if member, ok := k.table[name]; ok {
			return member, true
		}
	}

	return nil, false
}

// sink returns the logger of the nearest Class in the chain which has one.
// Otherwise, it returns the child logger named after c of the Logging installed with UseLogging, if any,
// or the global zap logger, which discards everything until replaced with zap.ReplaceGlobals.
func (c *Class) sink() *zap.SugaredLogger {
	for k := c; k != nil; k = k.parent {
		if k.logger != nil {
			return k.logger
		}
	}

	if l := currentLogging(); l != nil {
		return l.GetChildLogger(strcase.Snake(c.name))
	}

	return zap.S()
}

// String returns the class name.
func (c *Class) String() string {
	return c.name
}
