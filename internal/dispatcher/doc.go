// Package dispatcher turns command names into operations and runs them
// against an execution context.
//
// The dispatcher is the single entry point for editing commands. A command
// is a name plus an optional string parameter; the registry maps the name
// to a factory, and the factory either builds an operation or rejects the
// parameter.
//
// # Registry
//
// Each handler package exposes its factories through a Factories function.
// NewDefaultRegistry registers all of them and then the single-key aliases
// in DefaultAliases. An alias is a second name for a canonical entry, so
// "h" and "move_left" build the same operation value.
//
// # Dispatch
//
// When a command is dispatched:
//
//  1. The context is validated
//  2. Pre-dispatch hooks run (they may rewrite or cancel the invocation)
//  3. The registry builds the operation
//  4. The operation executes (with optional panic recovery)
//  5. Mode switches reported by the result are applied
//  6. Post-dispatch hooks run
//  7. The dispatch is logged and recorded in metrics
//
// Every mutating operation commits exactly one transaction, so one undo
// reverts one dispatched command.
//
// # Usage
//
// Basic setup:
//
//	d := dispatcher.NewWithDefaults()
//	d.SetLogger(logger)
//
//	ctx := execctx.New(engine.New(engine.WithContent(text)))
//	result, err := d.Dispatch(ctx, "insert_string", "hello")
//
// With async dispatch:
//
//	d := dispatcher.New(dispatcher.DefaultConfig().WithAsyncDispatch(100))
//	d.Start()
//	defer d.Stop()
//
//	d.Submit(dispatcher.Request{Ctx: ctx, Name: "dd"})
//	outcome := <-d.Results()
//
// Async requests run one at a time in submission order. A context must
// not be shared between the async loop and direct Dispatch calls.
//
// # Hooks
//
// Pre-dispatch hooks can rewrite or cancel invocations:
//
//	d.RegisterPreHook(dispatcher.NewDenyHook("delete_line", "dd"))
//
// Post-dispatch hooks observe results. Journal keeps recent dispatches:
//
//	journal := dispatcher.NewJournal(100)
//	d.RegisterPostHook(journal)
package dispatcher
