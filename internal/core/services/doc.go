// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - NormaliserService: Applies field extractors to one record
//   - PipelineService: Streams records from a source to a sink
//
// Services are pure Go with no CGO.
package services
