// Package main is an interactive demo for the rewind history manager.
//
// It maintains a set of JSON documents and lets you group edits into
// transactions, then walk the undo/redo history per scope:
//
//	> new doc1
//	> begin
//	> set doc1 user.name "Ada"
//	> end set name
//	> undo
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/rewind/document"
	"github.com/dshills/rewind/history"
	"github.com/dshills/rewind/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	fs := flag.NewFlagSet("rewind", flag.ContinueOnError)
	configPath := fs.String("config", defaultConfigPath(), "path to config file")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Printf("rewind %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	r := &repl{
		manager: history.NewManager(history.WithMaxEntries(cfg.MaxEntries)),
		docs:    make(map[string]*document.Document),
		scope:   history.Default,
		out:     os.Stdout,
	}
	return r.loop(os.Stdin)
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "rewind.toml"
	}
	return filepath.Join(home, ".config", "rewind", "config.toml")
}

// repl holds the interactive session state.
type repl struct {
	manager *history.Manager
	docs    map[string]*document.Document
	scope   history.Scope
	out     *os.File
}

func (r *repl) loop(in *os.File) int {
	scanner := bufio.NewScanner(in)
	r.printf("rewind %s (type 'help' for commands)\n", version)
	r.prompt()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			r.prompt()
			continue
		}
		fields := strings.Fields(line)
		if fields[0] == "quit" || fields[0] == "exit" {
			return 0
		}
		if err := r.dispatch(fields[0], fields[1:]); err != nil {
			r.printf("error: %v\n", err)
		}
		r.prompt()
	}
	return 0
}

func (r *repl) dispatch(cmd string, args []string) error {
	switch cmd {
	case "help":
		r.help()
	case "new":
		return r.cmdNew(args)
	case "docs":
		r.cmdDocs()
	case "get":
		return r.cmdGet(args)
	case "set":
		return r.cmdSet(args)
	case "del":
		return r.cmdDel(args)
	case "begin":
		return r.cmdBegin(args)
	case "end":
		return r.cmdEnd(args)
	case "undo":
		return r.cmdUndo()
	case "redo":
		return r.cmdRedo()
	case "scope":
		r.cmdScope(args)
	case "history":
		r.cmdHistory()
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
	return nil
}

func (r *repl) cmdNew(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: new <name> [json]")
	}
	name := args[0]
	if _, exists := r.docs[name]; exists {
		return fmt.Errorf("document %q already exists", name)
	}

	opts := []document.Option{document.WithID(history.DocumentID(name))}
	if len(args) > 1 {
		opts = append(opts, document.WithContent(strings.Join(args[1:], " ")))
	}
	doc := document.New(opts...)
	r.docs[name] = doc
	r.manager.AddDocument(doc)
	r.printf("%s = %s\n", name, doc.Text())
	return nil
}

func (r *repl) cmdDocs() {
	for name, doc := range r.docs {
		r.printf("%s = %s\n", name, doc.Text())
	}
}

func (r *repl) cmdGet(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: get <doc> [path]")
	}
	doc, err := r.lookup(args[0])
	if err != nil {
		return err
	}
	if len(args) == 1 {
		r.printf("%s\n", doc.Text())
		return nil
	}
	r.printf("%s\n", doc.Get(args[1]).Raw)
	return nil
}

func (r *repl) cmdSet(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: set <doc> <path> <value>")
	}
	doc, err := r.lookup(args[0])
	if err != nil {
		return err
	}
	value := strings.Join(args[2:], " ")
	if gjson.Valid(value) {
		return doc.SetRaw(args[1], value)
	}
	return doc.Set(args[1], value)
}

func (r *repl) cmdDel(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: del <doc> <path>")
	}
	doc, err := r.lookup(args[0])
	if err != nil {
		return err
	}
	return doc.Delete(args[1])
}

func (r *repl) cmdBegin(args []string) error {
	deps := make([]history.DocumentID, len(args))
	for i, name := range args {
		deps[i] = history.DocumentID(name)
	}
	return r.manager.StartTransaction(deps...)
}

func (r *repl) cmdEnd(args []string) error {
	change, err := r.manager.EndTransaction(history.TransactionOptions{
		Description: strings.Join(args, " "),
		Scope:       r.scope,
	})
	if err != nil {
		return err
	}
	if change == nil {
		r.printf("no change recorded\n")
		return nil
	}
	r.printChange("recorded", change)
	return nil
}

func (r *repl) cmdUndo() error {
	change, err := r.manager.Undo(r.scope)
	if err != nil {
		return err
	}
	r.printChange("undid", change)
	return nil
}

func (r *repl) cmdRedo() error {
	change, err := r.manager.Redo(r.scope)
	if err != nil {
		return err
	}
	r.printChange("redid", change)
	return nil
}

func (r *repl) cmdScope(args []string) {
	if len(args) == 0 || args[0] == "default" {
		r.scope = history.Default
	} else {
		r.scope = history.Named(args[0])
	}
	r.printf("scope is %s\n", r.scope)
}

func (r *repl) cmdHistory() {
	r.printf("undo: %v\n", r.manager.Undos(r.scope))
	r.printf("redo: %v\n", r.manager.Redos(r.scope))
}

func (r *repl) lookup(name string) (*document.Document, error) {
	doc, ok := r.docs[name]
	if !ok {
		return nil, fmt.Errorf("no document %q", name)
	}
	return doc, nil
}

func (r *repl) printChange(verb string, c *history.Change) {
	label := c.Description
	if label == "" {
		label = "(no description)"
	}
	ids := make([]string, len(c.IDs))
	for i, id := range c.IDs {
		ids[i] = string(id)
	}
	r.printf("%s %q [%s] scope=%s\n", verb, label, strings.Join(ids, ", "), c.Scope)
}

func (r *repl) prompt() {
	r.printf("> ")
}

func (r *repl) printf(format string, args ...any) {
	fmt.Fprintf(r.out, format, args...)
}

func (r *repl) help() {
	r.printf(`commands:
  new <name> [json]        create and register a document
  docs                     list documents
  get <doc> [path]         print a document or a path within it
  set <doc> <path> <value> set a value (raw JSON or string)
  del <doc> <path>         delete a path
  begin [doc...]           start a transaction (default: all documents)
  end [description]        end the transaction in the current scope
  undo / redo              walk the current scope's history
  history                  show the current scope's stacks
  scope [name]             switch scope ('default' or no arg resets)
  quit
`)
}
