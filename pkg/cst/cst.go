// Package cst defines the concrete syntax tree produced directly by the
// participle-driven Play grammar (spec §4.1). Most productions in the
// informal EBNF grammar correspond to one Go type here, annotated with
// participle struct tags so the grammar and the tree that results from it
// stay in lock-step; productions sharing a prefix or shape are merged (see
// AssignStmt and CallExpr), and list productions become slice fields.
// pkg/transform lowers this tree into pkg/ast.
package cst

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes Play source. Multi-character operators are listed before
// their single-character prefixes so the regex alternation (which is
// leftmost-first, not longest-match) picks the longer lexeme; Keyword is
// listed before Ident for the same reason, so no reserved word is ever
// lexed as a plain identifier.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Keyword", Pattern: `\b(rank|rate|flag|label|void|action|play|gameover|choice|retry|fail|stay|loop|grab|drop|reward|quit|true|false)\b`},
	{Name: "Real", Pattern: `[0-9]+\.[0-9]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "String", Pattern: `"[^"]*"`},
	{Name: "Op", Pattern: `<--|-->|->|==|<>|<=|>=|&&|\|\||[+\-*/%<>=!]`},
	{Name: "Punct", Pattern: `[:;,(){}]`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
})

// Program is the root production: decl_list function_defs main_block "gameover".
type Program struct {
	Pos         lexer.Position
	GlobalDecls []*VarDecl `@@*`
	Functions   []*FuncDef `@@*`
	MainBlock   *Block     `"play" @@ "gameover"`
}

// VarDecl is `type ":" var_list`.
type VarDecl struct {
	Pos   lexer.Position
	Type  string     `@("rank" | "rate" | "flag" | "label") ":"`
	Items []*VarItem `@@ ("," @@)*`
}

// VarItem is `ID | ID "<--" expr | ID "=" var_item`. Chain and Init are
// mutually exclusive; both nil means a bare uninitialized declaration.
type VarItem struct {
	Pos   lexer.Position
	Name  string   `@Ident`
	Init  *Expr    `( "<--" @@`
	Chain *VarItem `| "=" @@ )?`
}

// FuncDef is `"action" ID "(" param_list? ")" "->" return_type block`.
type FuncDef struct {
	Pos     lexer.Position
	Name    string   `"action" @Ident "("`
	Params  []*Param `( @@ ("," @@)* )? ")" "->"`
	RetType string   `@("rank" | "rate" | "flag" | "label" | "void")`
	Body    *Block   `@@`
}

// Param is `type ID`.
type Param struct {
	Pos  lexer.Position
	Type string `@("rank" | "rate" | "flag" | "label")`
	Name string `@Ident`
}

// Block is `"{" stmt* "}"`.
type Block struct {
	Pos   lexer.Position
	Stmts []*Stmt `"{" @@* "}"`
}

// Stmt is the `stmt` ordered choice. FuncCall and Assign both start with an
// identifier, so they are tried last; everything else is keyword-led and
// unambiguous from its first token.
type Stmt struct {
	Pos      lexer.Position
	VarDecl  *VarDecl    `  @@`
	If       *IfStmt     `| @@`
	While    *WhileStmt  `| @@`
	For      *ForStmt    `| @@`
	Output   *OutputStmt `| @@`
	Return   *ReturnStmt `| @@`
	Break    *BreakStmt  `| @@`
	FuncCall *CallExpr   `| @@`
	Assign   *AssignStmt `| @@`
}

// LvalueGroup is `lvalue := ID | ID "=" lvalue` flattened to a name list.
type LvalueGroup struct {
	Pos   lexer.Position
	Names []string `@Ident ("=" @Ident)*`
}

// AssignStmt is the merged `assign_stmt | input_stat` production: both
// start with `lvalue_list "<--"`; the optional `grab` suffix distinguishes
// an input statement from a plain assignment.
type AssignStmt struct {
	Pos     lexer.Position
	Targets []*LvalueGroup `@@ ("," @@)*`
	Grab    *GrabSuffix    `"<--" ( @@`
	Expr    *Expr          `| @@ )`
}

// GrabSuffix is the `"grab" expr?` tail of an input statement.
type GrabSuffix struct {
	Pos    lexer.Position
	Prompt *Expr `"grab" @@?`
}

// PlainAssignStmt is `lvalue_list "<--" expr` without the `grab` option; it
// is the only assignment shape `for_stat` accepts in its init/update slots.
type PlainAssignStmt struct {
	Pos     lexer.Position
	Targets []*LvalueGroup `@@ ("," @@)*`
	Expr    *Expr          `"<--" @@`
}

// OutputStmt is `"drop" expr`.
type OutputStmt struct {
	Pos  lexer.Position
	Expr *Expr `"drop" @@`
}

// ReturnStmt is `"reward" (expr | "void")`.
type ReturnStmt struct {
	Pos  lexer.Position
	Void bool  `"reward" ( @"void"`
	Expr *Expr `| @@ )`
}

// BreakStmt is `"quit"`.
type BreakStmt struct {
	Pos  lexer.Position
	Quit string `@"quit"`
}

// IfStmt is `"choice" "(" expr ")" "->" block ("retry" ...)* ("fail" ...)?`.
type IfStmt struct {
	Pos   lexer.Position
	Cond  *Expr       `"choice" "(" @@ ")" "->"`
	Then  *Block      `@@`
	Elifs []*ElifStmt `@@*`
	Else  *Block      `("fail" "->" @@)?`
}

// ElifStmt is one `"retry" "(" expr ")" "->" block` clause.
type ElifStmt struct {
	Pos   lexer.Position
	Cond  *Expr  `"retry" "(" @@ ")" "->"`
	Block *Block `@@`
}

// WhileStmt is `"stay" "(" expr ")" "->" block`.
type WhileStmt struct {
	Pos   lexer.Position
	Cond  *Expr  `"stay" "(" @@ ")" "->"`
	Block *Block `@@`
}

// ForStmt is `"loop" "(" assign_stmt ";" expr ";" (assign_stmt|expr) ")" "->" block`.
type ForStmt struct {
	Pos    lexer.Position
	Init   *PlainAssignStmt `"loop" "(" @@ ";"`
	Cond   *Expr            `@@ ";"`
	Update *ForUpdate       `@@ ")" "->"`
	Block  *Block           `@@`
}

// ForUpdate is `assign_stmt | expr` in the for-loop update slot.
type ForUpdate struct {
	Pos    lexer.Position
	Assign *PlainAssignStmt `  @@`
	Expr   *Expr            `| @@`
}

// Expr is `logic_expr := comp_expr (("&&"|"||") comp_expr)*`.
type Expr struct {
	Pos  lexer.Position
	Left *CompExpr  `@@`
	Ops  []*LogicOp `@@*`
}

// LogicOp is one `("&&"|"||") comp_expr` suffix.
type LogicOp struct {
	Pos   lexer.Position
	Op    string    `@("&&" | "||")`
	Right *CompExpr `@@`
}

// CompExpr is `sum_expr (("=="|"<>"|"<"|"<="|">"|">=") sum_expr)*`.
type CompExpr struct {
	Pos  lexer.Position
	Left *SumExpr  `@@`
	Ops  []*CompOp `@@*`
}

// CompOp is one comparison-operator suffix. `<=`/`>=` are listed before
// `<`/`>` for the same leftmost-first reason the lexer rules are ordered.
type CompOp struct {
	Pos   lexer.Position
	Op    string   `@("==" | "<>" | "<=" | ">=" | "<" | ">")`
	Right *SumExpr `@@`
}

// SumExpr is `prod_expr (("+"|"-") prod_expr)*`.
type SumExpr struct {
	Pos  lexer.Position
	Left *ProdExpr `@@`
	Ops  []*SumOp  `@@*`
}

// SumOp is one additive-operator suffix.
type SumOp struct {
	Pos   lexer.Position
	Op    string    `@("+" | "-")`
	Right *ProdExpr `@@`
}

// ProdExpr is `unary_expr (("*"|"/"|"%") unary_expr)*`.
type ProdExpr struct {
	Pos  lexer.Position
	Left *UnaryExpr `@@`
	Ops  []*ProdOp  `@@*`
}

// ProdOp is one multiplicative-operator suffix.
type ProdOp struct {
	Pos   lexer.Position
	Op    string     `@("*" | "/" | "%")`
	Right *UnaryExpr `@@`
}

// UnaryExpr is `("!"|"-"|"+"|"-->")* base_expr`, the prefix chain flattened
// into a slice rather than the grammar's right-recursion; pkg/transform
// rebuilds the nested UnaryOp chain from Ops right-to-left around Base.
type UnaryExpr struct {
	Pos  lexer.Position
	Ops  []string  `@("!" | "-->" | "-" | "+")*`
	Base *BaseExpr `@@`
}

// BaseExpr is `"(" expr ")" | INT | REAL | STRING | "true" | "false" | func_call_expr | ID`.
// Call is tried before Ident since both start with an identifier; Call only
// matches if a "(" follows.
type BaseExpr struct {
	Pos   lexer.Position
	Paren *Expr     `"(" @@ ")"`
	Real  *string   `| @Real`
	Int   *string   `| @Int`
	Str   *string   `| @String`
	True  bool      `| @"true"`
	False bool      `| @"false"`
	Call  *CallExpr `| @@`
	Ident string    `| @Ident`
}

// CallExpr is `ID "(" arg_list? ")"`, shared by func_call_expr and
// func_call_stmt (identical shape, different surrounding context).
type CallExpr struct {
	Pos  lexer.Position
	Name string  `@Ident "("`
	Args []*Expr `( @@ ("," @@)* )? ")"`
}
