package utils

import (
	"fmt"
	"github.com/ryanmorr/base-object/pkg/contracts"
	"maps"
	"os"
	"path/filepath"
	"reflect"
)

// HasOwnProperty returns whether name is a property defined directly on obj.
//
// Types implementing HasProperty(string) bool are asked directly, string-keyed maps are checked for the key.
// Inherited properties never count, which is why entities are expected to report own properties only.
func HasOwnProperty(obj any, name string) bool {
	switch obj := obj.(type) {
	case nil:
		return false
	case interface{ HasProperty(string) bool }:
		return obj.HasProperty(name)
	case map[string]any:
		_, ok := obj[name]
		return ok
	}

	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String || v.IsNil() {
		return false
	}

	return v.MapIndex(reflect.ValueOf(name).Convert(v.Type().Key())).IsValid()
}

// Merge copies all entries of each source onto target, left to right,
// so that later sources overwrite earlier ones and target's own values.
// Nested values are shared, not copied. A nil target is allocated.
func Merge[M ~map[string]V, V any](target M, sources ...M) M {
	if target == nil {
		target = make(M)
	}

	for _, src := range sources {
		maps.Copy(target, src)
	}

	return target
}

// FormatMessage prefixes msg with the class name and identity of the originating entity,
// i.e. "<ClassName>(#<id>): <msg>".
func FormatMessage(e interface {
	contracts.ClassNamer
	contracts.IDer
}, msg string) string {
	return e.ClassName() + "(#" + e.ID() + "): " + msg
}

// AppName returns the name of the executable that started this program (process).
func AppName() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}

	return filepath.Base(exe)
}

// PrintErrorThenExit prints the given error to [os.Stderr] and exits with the specified error code.
func PrintErrorThenExit(err error, exitCode int) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(exitCode)
}
