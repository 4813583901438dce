// Package buffer provides the line-oriented document model for review
// sessions. Unlike a general editing engine it never splits or joins
// lines: review operations only mutate the leading bytes of individual
// lines, so the line structure of the document is fixed at load time.
package buffer
