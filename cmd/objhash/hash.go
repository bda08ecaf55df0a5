package main

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
	"github.com/ryanmorr/base-object/pkg/baseobject"
	"github.com/ryanmorr/base-object/pkg/types"
	"io"
)

// classNamed returns baseobject.Base for its own name and a new subclass of it otherwise.
func classNamed(name string) *baseobject.Class {
	if name == "" || name == baseobject.Base.Name() {
		return baseobject.Base
	}

	return baseobject.NewClass(name)
}

// hashDocuments decodes a list of property maps from r, which may be YAML or JSON,
// constructs an Object of class from each and writes "<id>\t<hash code>\t<JSON>" lines to w.
// It returns the number of Objects written.
func hashDocuments(r io.Reader, w io.Writer, class *baseobject.Class) (int, error) {
	var documents []map[string]any
	if err := yaml.NewDecoder(r).Decode(&documents); err != nil && !errors.Is(err, io.EOF) {
		return 0, types.CantUnmarshalYAML(err, documents)
	}

	for i, properties := range documents {
		o := class.New(properties)

		b, err := o.ToJSON()
		if err != nil {
			return i, errors.Wrapf(err, "can't serialize document #%d", i)
		}

		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", o.ID(), o.HashCode(), b); err != nil {
			return i, errors.Wrap(err, "can't write output")
		}

		o.Destroy()
	}

	return len(documents), nil
}
