// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package action

import (
	"github.com/kazssym/coin/elements"
	"github.com/kazssym/coin/enabled"
	"github.com/kazssym/coin/scene"
	"github.com/kazssym/coin/types"
)

// Method is the behavior of an action class for one node type.
type Method func(act Actioner, n scene.Node)

// Class is an action class: a table of [Method]s keyed by node type,
// and the registry of element types its traversal state maintains.
// A class inherits the methods and enabled elements of its parent.
type Class struct {
	// Type is the runtime type of the class.
	Type *types.Type

	// Parent is the more general class, or nil for [BaseClass].
	Parent *Class

	// Registry is the enabled element registry of the class.
	Registry enabled.ID

	// methods are the methods added to this class, by node type ID.
	methods map[uint64]Method

	// cache holds resolved methods by node type ID,
	// valid while cacheVersion equals methodsVersion.
	cache        map[uint64]Method
	cacheVersion int
}

// methodsVersion is incremented whenever a method is added to any class,
// since that can change the resolution of every derived class.
var methodsVersion int

// NewClass returns a new action class with the given type name
// and parent class.
func NewClass(name string, parent *Class) *Class {
	c := &Class{Parent: parent, methods: map[uint64]Method{}}
	preg := enabled.NoParent
	var ptyp *types.Type
	if parent != nil {
		preg = parent.Registry
		ptyp = parent.Type
	}
	c.Type = types.AddType(name, ptyp)
	c.Registry = enabled.Default.New(preg)
	return c
}

// AddMethod sets the method of the class for the given node type
// and all types derived from it that do not have their own method.
func (c *Class) AddMethod(nodeType *types.Type, m Method) {
	c.methods[nodeType.ID] = m
	methodsVersion++
}

// Method returns the method for the given node type: the method added for
// the most derived type on the base chain of nodeType, searching this class
// and then its ancestors for each type. It returns nil if there is none.
func (c *Class) Method(nodeType *types.Type) Method {
	if c.cacheVersion != methodsVersion || c.cache == nil {
		c.cache = map[uint64]Method{}
		c.cacheVersion = methodsVersion
	}
	if m, ok := c.cache[nodeType.ID]; ok {
		return m
	}
	var m Method
resolve:
	for t := nodeType; t != nil; t = t.Base {
		for cl := c; cl != nil; cl = cl.Parent {
			if cm, ok := cl.methods[t.ID]; ok {
				m = cm
				break resolve
			}
		}
	}
	c.cache[nodeType.ID] = m
	return m
}

// EnableElement records that traversals of this class, and of all derived
// classes, maintain the given element class.
func (c *Class) EnableElement(ec *elements.Class) {
	enabled.Default.Enable(c.Registry, ec.Type, ec.Slot)
}

// EnabledElements returns the element types maintained by traversals of
// this class, indexed by slot.
func (c *Class) EnabledElements() []*types.Type {
	return enabled.Default.Slots(c.Registry)
}

// IsDerivedFrom returns whether this class is the given class or derived from it.
func (c *Class) IsDerivedFrom(other *Class) bool {
	return c.Type.IsDerivedFrom(other.Type)
}
