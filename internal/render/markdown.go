// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"

	"github.com/nao1215/markdown"

	"github.com/pdiddy/market-scout/pkg/types"
)

// MarkdownRenderer produces the report as a Markdown document with the same
// layout as the PDF.
type MarkdownRenderer struct{}

// Extension returns the Markdown file extension.
func (r *MarkdownRenderer) Extension() string { return ".md" }

// Render validates data and writes the report Markdown to w.
func (r *MarkdownRenderer) Render(data []byte, w io.Writer) error {
	rep, err := parseReport(data)
	if err != nil {
		return err
	}

	md := markdown.NewMarkdown(w)

	md.H1(CompanyName(rep.Overview) + " Research Report")

	md.H2("Overview")
	md.PlainText(rep.Overview)

	md.H2("AI/ML Use Cases")
	for _, uc := range rep.Usecases.UseCases {
		md.H3(uc.Title)
		md.PlainText(markdown.Bold("Explanation:") + " " + uc.Explanation)
		if len(uc.PracticalApplication) > 0 {
			md.PlainText(markdown.Bold("Practical Applications:"))
			md.BulletList(uc.PracticalApplication...)
		}
	}

	md.H2("Resources")
	for _, bundle := range rep.Resources.UseCaseResources {
		md.H3(bundle.Title)
		for _, sec := range resourceSections {
			items := sec.items(bundle.Resources)
			if len(items) == 0 {
				continue
			}
			md.PlainText(markdown.Bold(sec.label + ":"))
			md.BulletList(itemLines(items)...)
		}
	}

	if err := md.Build(); err != nil {
		return fmt.Errorf("writing markdown: %w", err)
	}
	return nil
}

// itemLines renders resource items as list entries: links for found
// resources, plain text for message and error items.
func itemLines(items []types.ResourceItem) []string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		switch {
		case item.IsFound():
			lines = append(lines, markdown.Link(item.Name, item.URL))
		case item.Message != "":
			lines = append(lines, item.Message)
		default:
			lines = append(lines, item.Err)
		}
	}
	return lines
}
