// Package ai proxies chat completions, code analysis, and embeddings
// to an OpenAI-compatible provider.
package ai
