package sema

import "github.com/gaarutyunov/play/pkg/ast"

// Context replaces the source analyzer's ambient mutable flags (in_output,
// in_loop, current_function_ret_type) with an immutable value threaded
// through the walk (spec §9 REDESIGN FLAGS): every visitor that needs to
// change one of these facts for its children derives a new Context and
// passes that down, rather than mutating shared state and restoring it
// afterward.
type Context struct {
	loopDepth  int
	inOutput   bool
	inFunc     bool
	funcRet    ast.TypeTag
	funcIsVoid bool
}

func (c Context) enterLoop() Context {
	c.loopDepth++
	return c
}

func (c Context) inLoop() bool {
	return c.loopDepth > 0
}

func (c Context) enterOutput() Context {
	c.inOutput = true
	return c
}

func (c Context) enterFunc(ret ast.TypeTag, isVoid bool) Context {
	c.inFunc = true
	c.funcRet = ret
	c.funcIsVoid = isVoid
	return c
}
