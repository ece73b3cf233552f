package report

import (
	"fmt"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"radioscribe/internal/summarizer"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// Write renders the final transcript and its structured summary into a docx
// report at outputPath.
func Write(outputPath, audioPath, transcript string, summary *summarizer.Summary) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), "Radio Traffic Report", true, 16)
	addStyledRun(doc.AddParagraph(""), "Source: "+audioPath, false, fontSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), summary.Title, true, 15)
	addStyledRun(doc.AddParagraph(""), summary.Tldr, false, fontSize)
	doc.AddParagraph("")

	if len(summary.Communications) > 0 {
		addStyledRun(doc.AddParagraph(""), "Communications", true, 14)
		for i, comm := range summary.Communications {
			addStyledRun(doc.AddParagraph(""), fmt.Sprintf("%d. %s", i+1, formatCommunication(comm)), false, fontSize)
		}
		doc.AddParagraph("")
	}

	if summary.Details != nil && strings.TrimSpace(*summary.Details) != "" {
		addStyledRun(doc.AddParagraph(""), "Details", true, 14)
		for _, line := range strings.Split(*summary.Details, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				addStyledRun(doc.AddParagraph(""), trimmed, false, fontSize)
			}
		}
		doc.AddParagraph("")
	}

	addStyledRun(doc.AddParagraph(""), "Transcript", true, 14)
	for _, block := range strings.Split(transcript, "\n\n") {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			addStyledRun(doc.AddParagraph(""), trimmed, false, fontSize)
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

// formatCommunication flattens the populated fields of one communication
// into a single readable line.
func formatCommunication(c summarizer.Communication) string {
	var parts []string
	add := func(label string, v *string) {
		if v != nil && strings.TrimSpace(*v) != "" {
			parts = append(parts, label+": "+*v)
		}
	}
	add("Speaker", c.Speaker)
	add("Recipient", c.Recipient)
	add("Instruction", c.Instruction)
	add("Location", c.Location)
	add("Altitude", c.Altitude)
	add("Heading", c.Heading)
	add("Action", c.Action)
	if len(parts) == 0 {
		return "(no identifiable fields)"
	}
	return strings.Join(parts, "; ")
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
