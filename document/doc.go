// Package document provides a reference implementation of the per-document
// collaborator expected by the history package.
//
// A Document holds a JSON value addressed with gjson paths and edited with
// sjson. Its Recorder implements history.Handle: StartTransaction snapshots
// the content, EndTransaction detects whether the content actually changed,
// and Undo/Redo restore snapshots per scope.
//
//	doc := document.New(document.WithID("doc1"))
//	m := history.NewManager()
//	m.AddDocument(doc)
//
//	m.StartTransaction()
//	doc.Set("user.name", "Ada")
//	m.EndTransaction(history.TransactionOptions{Description: "set name"})
//
// Snapshots are whole-content strings. That trades memory for simplicity;
// an engine with its own delta representation can replace this package
// entirely by implementing history.Handle.
package document
