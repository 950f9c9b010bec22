// Package heuristic holds the deterministic, model-free text routines used by
// the simple strategy and as the fallback for every model-backed stage:
// sentence segmentation, keyword-scored extractive summaries and
// phrase-matched action items.
//
// Every function here is total: it never fails and never panics on any
// string input.
package heuristic
