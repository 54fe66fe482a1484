// Package flowtest provides instrumentation for testing code built on flow:
// Probe counts collections and produced values of a wrapped stream, and
// Recorder collects side channel values and lets a test wait for them.
package flowtest
