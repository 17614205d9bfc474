// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types provides a runtime type registry with single-inheritance
// derivation queries. It is used to tag scene graph nodes, state elements
// and actions with stable type identities that can be compared and tested
// for derivation independent of their Go representation.
package types

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/kazssym/coin/strcase"
)

// Type represents a registered runtime type.
// A nil *Type is the "bad" type: it is unset, equal only to itself,
// and derived from nothing.
type Type struct {
	// Name is the unique, package-qualified name of the type (eg: scene.Group)
	Name string

	// IDName is the short, package-unqualified, kebab-case name of the type that is suitable
	// for use in an ID (eg: group)
	IDName string

	// ID is the unique type ID number
	ID uint64

	// Base is the type this type derives from, or nil for a root type.
	Base *Type

	// Abstract types may be searched for and dispatched on,
	// but are never the type of an instance.
	Abstract bool
}

var (
	// Types records all types (i.e., a type registry)
	// key is the type name, e.g., scene.Group
	Types = map[string]*Type{}

	// typeIDCounter is an atomically incremented uint64 used
	// for assigning new [Type.ID] numbers
	typeIDCounter uint64
)

func (tp *Type) String() string {
	if tp == nil {
		return "<bad type>"
	}
	return tp.Name
}

// ShortName returns the name of the type without its package qualifier.
func (tp *Type) ShortName() string {
	li := strings.LastIndex(tp.Name, ".")
	return tp.Name[li+1:]
}

// IsBad returns true for the nil "bad" type.
func (tp *Type) IsBad() bool {
	return tp == nil
}

// IsDerivedFrom returns true if this type is the given type or has it
// anywhere on its base chain. The bad type is never derived from anything,
// and nothing is derived from the bad type.
func (tp *Type) IsDerivedFrom(other *Type) bool {
	if tp == nil || other == nil {
		return false
	}
	for t := tp; t != nil; t = t.Base {
		if t == other {
			return true
		}
	}
	return false
}

// HasEmbed is an alias for [Type.IsDerivedFrom], matching the
// embedding-based derivation used for Go struct types.
func (tp *Type) HasEmbed(typ *Type) bool {
	return tp.IsDerivedFrom(typ)
}

// Depth returns the number of base types above this type.
func (tp *Type) Depth() int {
	d := 0
	for t := tp; t != nil && t.Base != nil; t = t.Base {
		d++
	}
	return d
}

// AddType adds a new type with the given name and base type
// to the registry and returns it. This sets the ID. If a type with the
// same name already exists, it is returned unchanged.
func AddType(name string, base *Type) *Type {
	if tp, has := Types[name]; has {
		slog.Debug("types.AddType: Type already exists", "Type.Name", name)
		return tp
	}
	li := strings.LastIndex(name, ".")
	tp := &Type{
		Name:   name,
		IDName: strcase.ToKebab(name[li+1:]),
		ID:     atomic.AddUint64(&typeIDCounter, 1),
		Base:   base,
	}
	Types[name] = tp
	return tp
}

// AddAbstractType is [AddType] for a type that is never instantiated.
func AddAbstractType(name string, base *Type) *Type {
	tp := AddType(name, base)
	tp.Abstract = true
	return tp
}

// TypeByName returns a Type by name (eg: scene.Group), or nil if not found.
func TypeByName(name string) *Type {
	return Types[name]
}

// TypeByNameTry returns a Type by name (eg: scene.Group),
// or an error if not found.
func TypeByNameTry(name string) (*Type, error) {
	tp, ok := Types[name]
	if !ok {
		return nil, fmt.Errorf("type %q not found", name)
	}
	return tp, nil
}
