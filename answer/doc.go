// Package answer assembles retrieval results into model context and owns
// the answer-synthesis boundary. Rendering is pure; the only side effect
// is the model call, which is skipped entirely when retrieval came back
// empty.
package answer
