// Package glean adapts Glean's enterprise-search REST API to the data
// model of LLM pipelines: chat models, retrievers and tools that accept
// and return framework-native messages and documents.
//
// The package is a pure translation layer. It builds vendor request
// payloads from framework calls, maps vendor responses back into Documents
// and Generations, bootstraps the authenticated HTTP client, and normalizes
// vendor failures into one typed error with a small Kind taxonomy. There is
// no retry, no caching and no persistence; the remote service is treated as
// opaque.
//
// Construct a Client once and share it between components:
//
//	c, err := glean.New(glean.Credentials{}) // resolved from GLEAN_* env vars
//	if err != nil {
//		return err
//	}
//	docs, err := glean.NewSearchRetriever(c, glean.WithK(5)).Retrieve(ctx, "quarterly sales report")
package glean
