/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package model

import "errors"

// ErrObjectNotFound is returned by an ObjectProvider implementation when an
// indirect reference does not resolve to anything.
var ErrObjectNotFound = errors.New("model: object not found")
