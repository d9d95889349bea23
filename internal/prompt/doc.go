// Package prompt collects a registry item interactively. The forms are built
// with huh; when stdin is not a terminal they fall back to huh's accessible
// mode, which reads plain lines and so can be driven from a pipe.
package prompt
