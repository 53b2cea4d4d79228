// Package grocerylist turns a plain-text grocery list into a printable
// LaTeX document.
//
// # Quick Start
//
// Create a generator and run it on a list file:
//
//	gen, err := grocerylist.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := gen.GenerateFile(ctx, grocerylist.Job{
//	    InputPath: "groceries.txt",
//	    Mode:      grocerylist.ModeSplitTwo,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Created", result.OutputPath) // groceries.tex
//
// # Pipeline
//
// Generation follows three stages:
//
//  1. ReadItems: one item per input line, terminators stripped
//  2. Partition: items into the "All" bucket and, in split-two mode, two
//     per-person buckets taking alternate items
//  3. Emitter: one section per bucket rendered through a LaTeX template
//
// Each stage is exported and can be used on its own:
//
//	items, _ := grocerylist.ParseItems([]byte("apples\nbread\nmilk\neggs\n"))
//	buckets, _ := grocerylist.Partition(items, grocerylist.ModeSplitTwo, grocerylist.Names{})
//	// A: apples, milk   B: bread, eggs
//
//	em, _ := grocerylist.NewEmitter()
//	_ = em.Emit(os.Stdout, buckets, grocerylist.RenderOptions{})
//
// # Rendering
//
// RenderOptions controls the title, the date stamp ("auto", "auto:FORMAT"
// with tokens such as YYYY-MM-DD, or a literal), the font, the font size,
// the number of list columns and the output format (LaTeX or Markdown). LaTeX special
// characters in items are escaped unless Raw is set.
//
// Templates are selected by name with WithTemplateSet; WithAssetPath adds a
// directory of custom sets laid out as {dir}/templates/{name}/document.tex.
//
// # Errors
//
// Failures wrap one of the sentinel errors (ErrInputNotFound,
// ErrOutputNotWritable, ...) together with the underlying OS error, so both
// can be matched with errors.Is.
package grocerylist
