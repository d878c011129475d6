// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// PDFRenderer produces the paginated A4 report document.
type PDFRenderer struct{}

// Extension returns the PDF file extension.
func (r *PDFRenderer) Extension() string { return ".pdf" }

// Render validates data and writes the report PDF to w.
func (r *PDFRenderer) Render(data []byte, w io.Writer) error {
	rep, err := parseReport(data)
	if err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(25, 25, 25)
	pdf.SetAutoPageBreak(true, 25)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Title
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, tr(CompanyName(rep.Overview)+" Research Report"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Overview
	r.section(pdf, "Overview")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 5, tr(rep.Overview), "", "J", false)
	pdf.Ln(4)

	// Use cases
	r.section(pdf, "AI/ML Use Cases")
	for _, uc := range rep.Usecases.UseCases {
		r.subsection(pdf, tr(uc.Title))

		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, "Explanation:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, tr(uc.Explanation), "", "J", false)

		if len(uc.PracticalApplication) > 0 {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 6, "Practical Applications:", "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)
			for _, app := range uc.PracticalApplication {
				pdf.SetX(pdf.GetX() + 5)
				pdf.MultiCell(0, 5, tr("- "+app), "", "L", false)
			}
		}
		pdf.Ln(3)
	}

	// Resources: all five categories, uniformly.
	r.section(pdf, "Resources")
	for _, bundle := range rep.Resources.UseCaseResources {
		r.subsection(pdf, tr(bundle.Title))

		for _, sec := range resourceSections {
			items := sec.items(bundle.Resources)
			if len(items) == 0 {
				continue
			}

			pdf.SetFont("Helvetica", "B", 11)
			pdf.CellFormat(0, 6, sec.label+":", "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 11)

			for _, item := range items {
				pdf.SetX(pdf.GetX() + 5)
				if item.IsFound() {
					pdf.Write(5, "- ")
					pdf.SetTextColor(0, 0, 200)
					pdf.WriteLinkString(5, tr(item.Name), item.URL)
					pdf.SetTextColor(0, 0, 0)
					pdf.Ln(5)
					continue
				}
				text := item.Message
				if text == "" {
					text = item.Err
				}
				pdf.MultiCell(0, 5, tr("- "+text), "", "L", false)
			}
		}
		pdf.Ln(4)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

func (r *PDFRenderer) section(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)
}

func (r *PDFRenderer) subsection(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
}
