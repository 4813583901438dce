// Package review implements the line marking core: classifying lines
// by their leading status mark, toggling marks, navigating marked
// runs, and extracting the item token a line is about.
package review
