package export

import (
	"fmt"
	"io"

	"github.com/samatva/samatva/pkg/asset"
	"github.com/samatva/samatva/pkg/program"
	"github.com/xuri/excelize/v2"
)

// WritePrograms renders the program list as an XLSX sheet for offline review.
func WritePrograms(w io.Writer, programs []program.Program) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Programs"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Title", "Focus Area", "Type", "Duration (days)", "Provider",
		"Status", "Base Price", "Offer Price", "Currency", "Created"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, p := range programs {
		offer := ""
		if p.OfferPrice != nil {
			offer = fmt.Sprintf("%d", *p.OfferPrice)
		}
		row := []string{
			p.Title,
			string(p.FocusArea),
			string(p.ProgramType),
			fmt.Sprintf("%d", p.Duration),
			p.ProviderId,
			string(p.Status),
			fmt.Sprintf("%d", p.BasePrice),
			offer,
			p.Currency,
			p.CreatedAt.Format("2006-01-02"),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

// WriteSessions renders the session list as an XLSX sheet.
func WriteSessions(w io.Writer, sessions []asset.Session) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Sessions"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Title", "Focus Area", "Content Type", "Duration (min)", "Language",
		"Provider", "Status", "Free", "Base Price", "Currency", "Created"}
	if err := writeRow(f, sheet, 1, headers); err != nil {
		return err
	}

	for i, s := range sessions {
		price := ""
		if s.BasePrice != nil {
			price = fmt.Sprintf("%d", *s.BasePrice)
		}
		free := "no"
		if s.IsFree {
			free = "yes"
		}
		row := []string{
			s.Title,
			string(s.FocusArea),
			string(s.ContentType),
			fmt.Sprintf("%d", s.Duration),
			s.Language,
			s.ProviderId,
			string(s.Status),
			free,
			price,
			s.Currency,
			s.CreatedAt.Format("2006-01-02"),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values []string) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return err
		}
	}
	return nil
}
