/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import (
	"bufio"
	"bytes"
	"io"
	"strconv"
)

// This file collects the small type-coercion helpers used throughout the
// font decoder and content-stream interpreter to pull Go values out of
// PdfObjects without a chain of type switches at every call site.

// ParseNumber reads a PDF numeric object (integer or float, including the
// occasional non-conforming exponential form some writers emit) from buf.
func ParseNumber(buf *bufio.Reader) (PdfObject, error) {
	isFloat := false
	allowSigns := true
	var r bytes.Buffer
	for {
		bb, err := buf.Peek(1)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch {
		case allowSigns && (bb[0] == '-' || bb[0] == '+'):
			b, _ := buf.ReadByte()
			r.WriteByte(b)
			allowSigns = false
		case IsDecimalDigit(bb[0]):
			b, _ := buf.ReadByte()
			r.WriteByte(b)
		case bb[0] == '.':
			b, _ := buf.ReadByte()
			r.WriteByte(b)
			isFloat = true
		case bb[0] == 'e' || bb[0] == 'E':
			b, _ := buf.ReadByte()
			r.WriteByte(b)
			isFloat = true
			allowSigns = true
		default:
			goto done
		}
	}
done:
	if isFloat {
		fVal, err := strconv.ParseFloat(r.String(), 64)
		if err != nil {
			fVal = 0.0
		}
		return MakeFloat(fVal), nil
	}
	intVal, err := strconv.ParseInt(r.String(), 10, 64)
	if err != nil {
		intVal = 0
	}
	return MakeInteger(intVal), nil
}

// GetNumberAsFloat returns the float64 value of a number object, whether it
// is stored as a PdfObjectFloat or a PdfObjectInteger.
func GetNumberAsFloat(obj PdfObject) (float64, bool) {
	switch t := obj.(type) {
	case *PdfObjectFloat:
		return float64(*t), true
	case *PdfObjectInteger:
		return float64(*t), true
	}
	return 0, false
}

// GetNumbersAsFloat converts every element of arr to a float64, failing if
// any element is not a number.
func GetNumbersAsFloat(arr *PdfObjectArray) ([]float64, error) {
	if arr == nil {
		return nil, ErrTypeError
	}
	out := make([]float64, arr.Len())
	for i, e := range arr.Elements() {
		v, ok := GetNumberAsFloat(e)
		if !ok {
			return nil, ErrTypeError
		}
		out[i] = v
	}
	return out, nil
}

// GetIntVal returns the int value of an integer object.
func GetIntVal(obj PdfObject) (int, bool) {
	iobj, ok := obj.(*PdfObjectInteger)
	if !ok {
		return 0, false
	}
	return int(*iobj), true
}

// GetName returns obj typed as a *PdfObjectName.
func GetName(obj PdfObject) (*PdfObjectName, bool) {
	n, ok := obj.(*PdfObjectName)
	return n, ok
}

// GetNameVal returns the string value of a name object.
func GetNameVal(obj PdfObject) (string, bool) {
	n, ok := obj.(*PdfObjectName)
	if !ok {
		return "", false
	}
	return string(*n), true
}

// GetStringVal returns the decoded string value of a string object.
func GetStringVal(obj PdfObject) (string, bool) {
	s, ok := obj.(*PdfObjectString)
	if !ok {
		return "", false
	}
	return s.String(), true
}

// GetStringBytes returns the raw bytes of a string object.
func GetStringBytes(obj PdfObject) ([]byte, bool) {
	s, ok := obj.(*PdfObjectString)
	if !ok {
		return nil, false
	}
	return s.Bytes(), true
}

// GetArray returns obj typed as a *PdfObjectArray.
func GetArray(obj PdfObject) (*PdfObjectArray, bool) {
	arr, ok := obj.(*PdfObjectArray)
	return arr, ok
}

// GetDict returns obj typed as a *PdfObjectDictionary, unwrapping a stream's
// dictionary when obj is a *PdfObjectStream.
func GetDict(obj PdfObject) (*PdfObjectDictionary, bool) {
	switch t := obj.(type) {
	case *PdfObjectDictionary:
		return t, true
	case *PdfObjectStream:
		return t.PdfObjectDictionary, true
	}
	return nil, false
}

// GetStream returns obj typed as a *PdfObjectStream.
func GetStream(obj PdfObject) (*PdfObjectStream, bool) {
	s, ok := obj.(*PdfObjectStream)
	return s, ok
}
