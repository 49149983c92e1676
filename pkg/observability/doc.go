/*
Package observability provides Prometheus instrumentation for status lines.

A Metrics value counts rendered frames and failed renders, records how long
each render takes and exposes the row count of the frame currently on screen.
Pass it to statusline.WithMetrics; a nil *Metrics is valid and records nothing.
*/
package observability
