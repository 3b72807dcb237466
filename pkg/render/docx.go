package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/wml/ctypes"
	"github.com/gomutex/godocx/wml/stypes"
	"github.com/yludeuk/svoyak/models"
)

// Document formatting: Times New Roman 14pt, no spacing around paragraphs,
// single line spacing.
const (
	docxFont     = "Times New Roman"
	docxHalfPts  = 28
	docxLineTwip = 240
)

// DocxRenderer writes a Word document with one paragraph per block text line.
type DocxRenderer struct{}

func (DocxRenderer) Ext() string { return "docx" }

func (DocxRenderer) Render(w io.Writer, block models.ThemeBlock) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("creating docx: %w", err)
	}
	defer doc.Close()

	for _, line := range strings.Split(block.Text(), "\n") {
		p := doc.AddEmptyParagraph().GetCT()
		p.Property = &ctypes.ParagraphProp{Spacing: paragraphSpacing()}
		if line == "" {
			continue
		}
		p.Children = append(p.Children, ctypes.ParagraphChild{Run: &ctypes.Run{
			Property: runProperty(),
			Children: []ctypes.RunChild{{Text: ctypes.TextFromString(line)}},
		}})
	}

	if err := doc.Write(w); err != nil {
		return fmt.Errorf("writing docx: %w", err)
	}
	return nil
}

func paragraphSpacing() *ctypes.Spacing {
	zero := uint64(0)
	line := docxLineTwip
	rule := stypes.LineSpacingRuleAuto
	return &ctypes.Spacing{Before: &zero, After: &zero, Line: &line, LineRule: &rule}
}

func runProperty() *ctypes.RunProperty {
	return &ctypes.RunProperty{
		Fonts:  &ctypes.RunFonts{Ascii: docxFont, HAnsi: docxFont, EastAsia: docxFont, CS: docxFont},
		Size:   ctypes.NewFontSize(docxHalfPts),
		SizeCs: ctypes.NewFontSizeCS(docxHalfPts),
	}
}
