/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package core

import "errors"

// ErrTypeError is returned when a PdfObject does not have the type a caller
// expected (e.g. a dictionary where an array was required).
var ErrTypeError = errors.New("type check error")
