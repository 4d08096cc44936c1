// Package md2adoc converts Markdown lab guides to AsciiDoc.
//
// # Quick Start
//
//	conv := md2adoc.NewConverter()
//
//	result, err := conv.Convert(ctx, md2adoc.Input{
//	    Markdown: "# Lab 1\n\nRun **make**.",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("lab-1.adoc", []byte(result.AsciiDoc), 0644)
//
// # Conversion
//
// The converter is a single pass over the document lines. Headers, bold,
// italic, images, links, list markers, blockquotes and horizontal rules are
// rewritten line by line. Fenced code blocks (``` and ````) become [source]
// listing blocks with their content kept verbatim. Runs of lines containing
// '|' become |=== tables. An attribute header (table of contents, numbered
// sections, highlight.js, font icons) is prepended to the result.
//
// The conversion is a textual rewrite, not a Markdown parser. Use Lint to
// find constructs it does not translate faithfully.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := md2adoc.NewConverter(
//	    md2adoc.WithAutoColumns(true),
//	    md2adoc.WithAttributes(md2adoc.Attribute{Name: "toc", Value: "left"}),
//	)
//
// A Converter holds no mutable state and is safe for concurrent use.
//
// # README
//
// RenderReadme renders the index written next to a converted directory,
// from an embedded template that can be overridden by a custom asset path:
//
//	loader, err := md2adoc.NewAssetLoader("/path/to/assets")
//	readme, err := md2adoc.RenderReadme(loader, md2adoc.ReadmeData{
//	    SourceDir: "labs",
//	    Documents: []md2adoc.ReadmeEntry{{Title: "Lab 1", File: "lab-1.adoc"}},
//	})
package md2adoc
