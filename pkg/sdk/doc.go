// Package faqdex provides an embedded client for TF-IDF question matching.
//
// The client loads a QA corpus from a JSON file or Redis, builds the
// index once and answers questions in-process:
//
//	client, err := faqdex.New(ctx, faqdex.WithFile("qa_data.json"))
//	if err != nil { ... }
//	defer client.Close()
//
//	ans := client.Ask(ctx, "what are your hours")
//	fmt.Println(ans.Text)
//
// The corpus is immutable after New; create a new client to pick up
// source changes.
package faqdex
