/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package core defines the primitive PDF object types consumed by the
// content-stream interpreter and the font decoder. It is a deliberately
// small subset of a full PDF object model: no tokenizer, no indirect-object
// table, no filter decoding. Those concerns belong to the Object Provider
// the caller supplies (see the model package).
package core

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// PdfObject is the interface every primitive PDF object implements.
type PdfObject interface {
	String() string
}

// PdfObjectBool represents the primitive PDF boolean object.
type PdfObjectBool bool

// PdfObjectInteger represents the primitive PDF integer numerical object.
type PdfObjectInteger int64

// PdfObjectFloat represents the primitive PDF floating point numerical object.
type PdfObjectFloat float64

// PdfObjectString represents the primitive PDF string object, literal or hex.
type PdfObjectString struct {
	val   string
	isHex bool
}

// PdfObjectName represents the primitive PDF name object (without the leading '/').
type PdfObjectName string

// PdfObjectArray represents the primitive PDF array object.
type PdfObjectArray struct {
	elements []PdfObject
}

// PdfObjectDictionary represents the primitive PDF dictionary object.
type PdfObjectDictionary struct {
	dict map[PdfObjectName]PdfObject
	keys []PdfObjectName
}

// PdfObjectNull represents the primitive PDF null object.
type PdfObjectNull struct{}

// PdfObjectReference represents an indirect reference to another PDF object.
// The Object Provider is responsible for resolving it via Resolve().
type PdfObjectReference struct {
	ObjectNumber     int64
	GenerationNumber int64
}

// PdfObjectStream represents a decoded PDF stream: its dictionary plus the
// already filter-decoded bytes. Filter decoding is the Object Provider's
// job (§6.1); by the time the core sees a stream its Bytes are plain.
type PdfObjectStream struct {
	*PdfObjectDictionary
	Bytes []byte
}

func (obj *PdfObjectBool) String() string       { return fmt.Sprintf("%t", bool(*obj)) }
func (obj *PdfObjectInteger) String() string     { return fmt.Sprintf("%d", int64(*obj)) }
func (obj *PdfObjectFloat) String() string       { return fmt.Sprintf("%f", float64(*obj)) }
func (obj *PdfObjectName) String() string        { return string(*obj) }
func (obj *PdfObjectNull) String() string        { return "null" }
func (obj *PdfObjectReference) String() string {
	return fmt.Sprintf("Ref(%d %d)", obj.ObjectNumber, obj.GenerationNumber)
}
func (obj *PdfObjectStream) String() string {
	return fmt.Sprintf("Stream(%d bytes)", len(obj.Bytes))
}

// String returns the decoded string value.
func (obj *PdfObjectString) String() string { return obj.val }

// Bytes returns the raw bytes of the string.
func (obj *PdfObjectString) Bytes() []byte { return []byte(obj.val) }

// IsHex returns true if the string was written in the PDF as a hex string (<...>).
func (obj *PdfObjectString) IsHex() bool { return obj.isHex }

// WriteString outputs the string in PDF literal or hex notation.
func (obj *PdfObjectString) WriteString() string {
	if obj.isHex {
		return "<" + hex.EncodeToString([]byte(obj.val)) + ">"
	}
	return "(" + obj.val + ")"
}

// String returns a description of the array.
func (obj *PdfObjectArray) String() string {
	parts := make([]string, len(obj.elements))
	for i, e := range obj.elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Elements returns the array's elements.
func (obj *PdfObjectArray) Elements() []PdfObject { return obj.elements }

// Len returns the number of elements in the array.
func (obj *PdfObjectArray) Len() int { return len(obj.elements) }

// Get returns the i'th element of the array, or nil if out of range.
func (obj *PdfObjectArray) Get(i int) PdfObject {
	if i < 0 || i >= len(obj.elements) {
		return nil
	}
	return obj.elements[i]
}

// Append appends an object to the array.
func (obj *PdfObjectArray) Append(o PdfObject) { obj.elements = append(obj.elements, o) }

// String returns a description of the dictionary.
func (d *PdfObjectDictionary) String() string {
	parts := make([]string, 0, len(d.keys))
	for _, k := range d.keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, d.dict[k].String()))
	}
	return "Dict(" + strings.Join(parts, ", ") + ")"
}

// Set sets the value for key in the dictionary, preserving insertion order.
func (d *PdfObjectDictionary) Set(key PdfObjectName, val PdfObject) {
	if _, ok := d.dict[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.dict[key] = val
}

// Get returns the value for key, or nil if absent.
func (d *PdfObjectDictionary) Get(key PdfObjectName) PdfObject {
	return d.dict[key]
}

// Keys returns the dictionary's keys in insertion order.
func (d *PdfObjectDictionary) Keys() []PdfObjectName { return d.keys }

// MakeDict creates and returns an empty PdfObjectDictionary.
func MakeDict() *PdfObjectDictionary {
	return &PdfObjectDictionary{dict: map[PdfObjectName]PdfObject{}}
}

// MakeName creates a PdfObjectName from a string.
func MakeName(s string) *PdfObjectName {
	n := PdfObjectName(s)
	return &n
}

// MakeInteger creates a PdfObjectInteger from an int64.
func MakeInteger(val int64) *PdfObjectInteger {
	n := PdfObjectInteger(val)
	return &n
}

// MakeFloat creates a PdfObjectFloat from a float64.
func MakeFloat(val float64) *PdfObjectFloat {
	n := PdfObjectFloat(val)
	return &n
}

// MakeBool creates a PdfObjectBool.
func MakeBool(val bool) *PdfObjectBool {
	b := PdfObjectBool(val)
	return &b
}

// MakeString creates a literal PdfObjectString.
func MakeString(s string) *PdfObjectString {
	return &PdfObjectString{val: s}
}

// MakeHexString creates a hex PdfObjectString.
func MakeHexString(s string) *PdfObjectString {
	return &PdfObjectString{val: s, isHex: true}
}

// MakeArray creates a PdfObjectArray from a list of objects.
func MakeArray(objects ...PdfObject) *PdfObjectArray {
	return &PdfObjectArray{elements: objects}
}

// MakeNull creates a PdfObjectNull.
func MakeNull() *PdfObjectNull {
	return &PdfObjectNull{}
}
