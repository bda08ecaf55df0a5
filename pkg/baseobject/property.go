package baseobject

// Descriptor holds the flags of a property.
type Descriptor struct {
	// Enumerable properties are serialized by Object.ToJSON.
	Enumerable bool
	// Configurable properties may be redefined and removed.
	Configurable bool
	// Writable properties may be reassigned by Object.SetProperty.
	Writable bool
}

// DefaultDescriptor is applied to every property unless overridden by DescriptorOptions.
var DefaultDescriptor = Descriptor{
	Enumerable:   true,
	Configurable: true,
	Writable:     true,
}

// DescriptorOption overrides a single flag of a Descriptor.
type DescriptorOption func(d *Descriptor)

// Enumerable sets the enumerable flag.
func Enumerable(enumerable bool) DescriptorOption {
	return func(d *Descriptor) { d.Enumerable = enumerable }
}

// Configurable sets the configurable flag.
func Configurable(configurable bool) DescriptorOption {
	return func(d *Descriptor) { d.Configurable = configurable }
}

// Writable sets the writable flag.
func Writable(writable bool) DescriptorOption {
	return func(d *Descriptor) { d.Writable = writable }
}

// ReadOnly makes a property neither writable nor configurable.
func ReadOnly() DescriptorOption {
	return func(d *Descriptor) {
		d.Writable = false
		d.Configurable = false
	}
}

// Hidden makes a property non-enumerable.
func Hidden() DescriptorOption {
	return Enumerable(false)
}

// newDescriptor merges opts over DefaultDescriptor.
func newDescriptor(opts ...DescriptorOption) Descriptor {
	d := DefaultDescriptor
	for _, opt := range opts {
		opt(&d)
	}

	return d
}

// property is a value along with its Descriptor.
type property struct {
	Descriptor
	value any
}
