// Package services implements the driving port interfaces.
// Services contain the core orchestration logic: normalise input,
// call driven ports (clients, readers, renderers) and shape the
// outcome into caller-facing report text.
//
// Remote failures are logged and folded into the report text rather
// than returned as errors; see the driving port documentation.
package services
