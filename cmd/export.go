package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"chartdata"
	"chartdata/renderer"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type exportCmd struct {
	client    string
	dataset   string
	outputDir string
	format    string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export dataset summaries to files" }
func (*exportCmd) Usage() string {
	return `cdt export -c <client> [-n <dataset>] [-o <dir>] [-format md|html]

  Renders a client's datasets to markdown or standalone HTML files, one file
  per dataset, suitable for sharing or publishing.

Usage Examples:
# Export every dataset of client acme as HTML.
$ cdt export -c acme -format html -o reports

`
}

func (p *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.client, "c", "", "Client id to export.")
	f.StringVar(&p.dataset, "n", "", "Export a single dataset. Exports all by default.")
	f.StringVar(&p.outputDir, "o", "reports", "Root directory for the exported files.")
	f.StringVar(&p.format, "format", "md", "Output format: md or html.")
}

func (p *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.client == "" {
		fmt.Fprintln(os.Stderr, "Error: -c is required")
		return subcommands.ExitUsageError
	}
	if p.format != "md" && p.format != "html" {
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", p.format)
		return subcommands.ExitUsageError
	}
	store, err := openStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	id := chartdata.ClientID(p.client)
	c, ok := store.Client(id)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown client %q\n", id)
		return subcommands.ExitFailure
	}

	var names []string
	if p.dataset != "" {
		if _, ok := c.Datasets[p.dataset]; !ok {
			fmt.Fprintf(os.Stderr, "Error: client %q has no dataset %q\n", id, p.dataset)
			return subcommands.ExitFailure
		}
		names = []string{p.dataset}
	} else {
		for name := range c.Datasets {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	outDir := filepath.Join(p.outputDir, id)
	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create output directory: %v\n", err)
		return subcommands.ExitFailure
	}

	for _, name := range names {
		md := renderer.RenderDataset(name, c.Datasets[name], *currency)
		content := []byte(md)
		ext := ".md"
		if p.format == "html" {
			html, err := markdownToHTML(name, md)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: failed to convert %q: %v\n", name, err)
				return subcommands.ExitFailure
			}
			content, ext = html, ".html"
		}
		path := filepath.Join(outDir, chartdata.ClientID(name)+ext)
		if err := os.WriteFile(path, content, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to write %q: %v\n", path, err)
			return subcommands.ExitFailure
		}
		fmt.Println("Wrote", path)
	}
	return subcommands.ExitSuccess
}

// markdownToHTML converts a markdown summary to a minimal standalone page.
// GFM is needed for the summary tables.
func markdownToHTML(title, source string) ([]byte, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var body bytes.Buffer
	if err := md.Convert([]byte(source), &body); err != nil {
		return nil, err
	}
	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", title)
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}
