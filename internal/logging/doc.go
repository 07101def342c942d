// Package logging owns the process-wide logrus logger. Components obtain a
// child entry tagged with their name through New.
package logging
