/*
Package session keeps one engine in sync with a graph that is still being edited.

Engines snapshot their graph when they are built. A Session owns the current
graph, compares every update against it with domain.DiffGraphs and rebuilds
the engine only when the topology (or the start list) actually changed. Input,
acceptance mode and hooks survive a rebuild.

A Session is single-owner, like the engines it wraps.
*/
package session
