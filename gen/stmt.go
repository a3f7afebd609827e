package gen

import "fmt"

// Statement chaining: each construct below emits a statement prefix, a
// single-pass for-loop that syntactically requires and absorbs one following
// statement. The following statement is supplied as a callback and invoked
// exactly once while the construct is assembled, so chains of any length
// preserve ordinary exactly-once statement semantics, and any introduced
// binding reaches the callback as a parameter instead of relying on lexical
// capture.

// IntroduceVars declares variables scoped to the following statement only.
// decls is written as the first clause of a C for-loop, e.g.
// "double x = 5.0, y = 7.0". The guard variable is minted from the session,
// and the loop body runs exactly once.
func IntroduceVars(sess *Session, decls string, next func() string) string {
	guard := sess.Sym("tg_", "brk")
	stmt := next()
	return fmt.Sprintf(
		"for (%s, *%s = (void *)0; %s != (void *)1; %s = (void *)1) %s",
		decls, guard, guard, guard, stmt,
	)
}

// IntroduceNonNullPtr declares a single pointer to ty named name,
// initialized to init exactly once. The pointer is referenced in the loop
// condition, so the emitted code never trips an unused-variable diagnostic.
// The callback receives the pointer's name.
func IntroduceNonNullPtr(ty, name, init string, next func(name string) string) string {
	stmt := next(name)
	return fmt.Sprintf(
		"for (%s *%s = (%s); %s != (void *)0; %s = (void *)0) %s",
		ty, name, init, name, name, stmt,
	)
}

// ChainExpr evaluates expr exactly once, strictly before the following
// statement, without requiring the statement to reference it. The pair forms
// a single C statement, so chains compose without block delimiters.
func ChainExpr(sess *Session, expr string, next func() string) string {
	guard := sess.Sym("tg_", "expr_stmt_brk")
	stmt := next()
	return fmt.Sprintf(
		"for (int %s = ((%s), 0); %s != 1; %s = 1) %s",
		guard, expr, guard, guard, stmt,
	)
}

// SuppressUnused silences an "unused X" diagnostic ahead of the following
// statement by chaining a void-cast of expr.
func SuppressUnused(sess *Session, expr string, next func() string) string {
	return ChainExpr(sess, "(void)"+expr, next)
}
