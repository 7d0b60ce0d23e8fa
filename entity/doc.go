// Package entity defines the narrow capability interfaces the mapping
// core consumes: a read-only view of an entity property (name, declared
// type, annotations, ordinal, column name, optional dynamic expression)
// and the expression evaluator injected by the caller.
//
// The core never inspects a metadata framework directly; anything able to
// answer the Property queries can drive resolution and value extraction.
package entity
