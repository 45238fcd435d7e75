// Package compiler is the front end of a MicroJava compiler: a scanner, a
// recursive-descent parser with error-distance suppression, and a scoped
// symbol table with the type rules of the language.
//
// Pipeline: source → Scanner → tokens → Parser (+ Table) → CodeGenerator
//
// The parser does not build a tree. It checks every declaration, statement
// and expression while it recognizes it and reports the resulting operations
// to a CodeGenerator in source order.
package compiler
