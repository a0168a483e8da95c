// Package figskema provides the shared plumbing for decoding Figma design
// documents:
//
// - Token Sources over pluggable JSON drivers (encoding/json, go-json) with
// duplicate-key, depth and size enforcement
// - A stable error model via Issues (JSON Pointer, code, message, params)
// - Decode Options loadable from YAML
//
// Design policy:
// - Keep only public plumbing in the root package; put the document model and
// decoder under figma/, the path mini-language under vectorpath/, and the CLI
// under cmd/figskema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	f, err := figma.DecodeFile(ctx, figskema.JSONBytes(data))
//	if iss, ok := figskema.AsIssues(err); ok {
//		// iss[0].Path points at the offending member
//	}
package figskema
