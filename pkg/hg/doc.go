// Package hg finds Mercurial repositories and reads the current bookmark or
// branch name straight from the .hg directory, without running hg.
package hg
