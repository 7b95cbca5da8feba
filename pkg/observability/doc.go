/*
Package observability provides tools for monitoring automaton engines.

It binds Prometheus collectors and structured logging to the engine lifecycle
hooks (domain.Hooks). Hooks from several sinks can be combined with
domain.Hooks.Merge.
*/
package observability
