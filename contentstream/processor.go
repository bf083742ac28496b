/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package contentstream

import (
	"errors"

	"github.com/unidoc/pdftextplace/common"
	"github.com/unidoc/pdftextplace/core"
)

// ErrRecursionLimit is returned when Form XObject nesting exceeds the
// configured depth limit. The caller (the page-level driver) treats this as
// fatal to the current page only.
var ErrRecursionLimit = errors.New("contentstream: form xobject recursion limit exceeded")

// DefaultMaxFormDepth is the recommended Form XObject nesting limit, chosen
// to defeat adversarial self-referential documents while comfortably
// exceeding anything a real layout engine emits.
const DefaultMaxFormDepth = 32

// Resources lets the Interpreter resolve the Do operator's operand without
// knowing anything about the PDF object model; the model package supplies
// the concrete implementation backed by an ObjectProvider.
type Resources interface {
	// GetXObject returns the already filter-decoded content bytes of the
	// named XObject, its Subtype ("Form", "Image", ...), and the XObject's
	// own Resources (nil if it carries none, in which case the enclosing
	// scope's Resources are inherited). found is false if name does not
	// resolve to an XObject in this scope.
	GetXObject(name string) (content []byte, subtype string, objResources Resources, found bool, err error)
}

// Handler is the Interpreter's callback interface, implemented by the text
// placement Collector. The graphics-state and resource-scope stacks are
// owned by the Handler, not the Processor: the Processor only tokenizes,
// dispatches and recurses.
type Handler interface {
	// OnOperation routes a single operator with its accumulated operands.
	// Returning cont=false aborts interpretation of the current stream
	// without propagating an error to sibling streams.
	OnOperation(operand string, params []core.PdfObject) (cont bool, err error)

	// OnResourcesRead is called once per stream, including once per Form
	// XObject invocation, before any of that stream's operators are
	// delivered.
	OnResourcesRead(resources Resources)

	// OnXObjectDoStart is called immediately before recursing into a Form
	// XObject's content stream.
	OnXObjectDoStart(name string)

	// OnXObjectDoEnd is called after a Form XObject's content has been
	// interpreted, whether it ran to completion or stopped on an error
	// (including a recursion-limit error from a deeper level). It pairs
	// with OnXObjectDoStart: neither is called for an unresolved name, a
	// non-Form XObject, or a Do refused because the depth limit was
	// already reached.
	OnXObjectDoEnd(name string)
}

// Processor drives a content stream's tokenized operations to a Handler,
// recursing into Form XObjects up to MaxFormDepth levels deep.
type Processor struct {
	MaxFormDepth int
	depth        int
}

// NewProcessor returns a Processor configured with the recommended Form
// XObject depth limit.
func NewProcessor() *Processor {
	return &Processor{MaxFormDepth: DefaultMaxFormDepth}
}

// Process tokenizes content and drives every operation to handler, resolving
// Do operators against resources and recursing into referenced Form
// XObjects. A tokenizer error partway through the stream still delivers the
// operations collected up to that point before returning the error.
func (proc *Processor) Process(content []byte, resources Resources, handler Handler) error {
	handler.OnResourcesRead(resources)

	ops, perr := NewParser(content).Parse()

	for _, op := range ops {
		if op.Operand == "Do" {
			if err := proc.handleDo(op, resources, handler); err != nil {
				return err
			}
			continue
		}

		cont, err := handler.OnOperation(op.Operand, op.Params)
		if err != nil {
			return err
		}
		if !cont {
			return nil
		}
	}
	return perr
}

// handleDo resolves and, if it names a Form XObject, recurses into the Do
// operand. Unresolved names and Image XObjects are logged and skipped, not
// treated as errors: a single broken XObject reference must not abort
// extraction of the rest of the page.
func (proc *Processor) handleDo(op *Operation, resources Resources, handler Handler) error {
	if len(op.Params) < 1 {
		return nil
	}
	name, ok := core.GetName(op.Params[0])
	if !ok {
		return nil
	}
	xobjName := string(*name)

	content, subtype, objResources, found, err := resources.GetXObject(xobjName)
	if err != nil || !found {
		common.Log.Debug("Do: unresolved XObject %q, skipping", xobjName)
		return nil
	}
	if subtype != "Form" {
		return nil
	}
	if proc.depth >= proc.MaxFormDepth {
		return ErrRecursionLimit
	}

	handler.OnXObjectDoStart(xobjName)
	childResources := objResources
	if childResources == nil {
		childResources = resources
	}
	proc.depth++
	err = proc.Process(content, childResources, handler)
	proc.depth--
	handler.OnXObjectDoEnd(xobjName)

	if err != nil && !errors.Is(err, ErrRecursionLimit) {
		// A broken or truncated Form XObject stream must not abort the
		// enclosing stream: log and keep delivering the rest of the page.
		// ErrRecursionLimit is the one failure that does propagate, since
		// it means the page itself is to be abandoned.
		common.Log.Debug("Do: form xobject %q failed, skipping: %v", xobjName, err)
		return nil
	}
	return err
}
