// Package anchor locates the initial match pair that seeds the path
// walker: the highest-confidence phonetic match between the first few
// chunks of track1 and a time-windowed neighborhood of track2.
//
// The search indexes track2 by start time (tracks are guaranteed
// non-decreasing by chunk.Track.Validate) and uses a binary-search lower
// bound plus a forward scan to collect window candidates in
// O(log N2 + window size), the same index-then-scan shape dijkstra uses
// when it pulls the next frontier vertex from its priority queue rather
// than rescanning every vertex.
package anchor
