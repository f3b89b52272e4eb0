// Package nlp holds the text normalizer, the part-of-speech taggers and the
// English stop-word list used by keyword extraction.
//
// Taggers are injected into the matcher rather than created per call: the
// prose tagger loads a model, and tests use the model-free case tagger.
package nlp
