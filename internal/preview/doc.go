// Package preview renders what a pass would upload, for dry runs.
package preview
