// Package export writes the generator's two artifacts: the binary glTF model and the JSON
// region index. Generator ties building, encoding and writing together.
package export
