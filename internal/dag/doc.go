// Package dag is a small directed acyclic graph keyed by string IDs. The
// plugin registry uses it to order activated plugins so that every plugin
// comes after the plugins it depends on, and to reject dependency cycles.
package dag
