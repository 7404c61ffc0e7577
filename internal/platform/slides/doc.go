// Package slides implements the generation.Generator interface against the
// external slide-deck generation service.
//
// The adapter owns the full lifecycle of one generation attempt: input
// validation, slide-count policy enforcement, language-safety instruction
// construction, request submission, response-shape resolution (direct URL,
// raw file bytes, or a job that is polled and then exported), and the
// hand-off of downloaded bytes to durable storage. It is stateless between
// calls; the only persistent state is the enablement flag derived from the
// credential at construction time.
package slides
