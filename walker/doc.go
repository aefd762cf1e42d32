// Package walker implements the greedy local-neighborhood path walker: it
// extends a path forward from a seed anchor one step at a time, tolerating
// short gaps and detecting one-to-many "smear" matches caused by differing
// segmentation between the two tracks.
//
// The walker is organized as a runner struct carrying all mutable search
// state (cursor position, consecutive-gap count, accepted path), the same
// separation dijkstra.Dijkstra uses between its stateless entry function
// and its stateful runner — here the frontier is a local 2x2 neighborhood
// instead of a priority queue, since the walk never revisits or reorders
// already-accepted positions.
package walker
