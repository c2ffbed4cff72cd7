package export

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"cv-parser/internal/llm"
)

// Service renders a parsed CV as an XLSX workbook. The JSON artifact stays
// the primary output; this is a convenience view of the same data.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// BuildWorkbook returns XLSX bytes with Profile, Experience and Education sheets.
func (s *Service) BuildWorkbook(cv llm.CVFields) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()

	if err := s.writeProfileSheet(f, cv); err != nil {
		return nil, err
	}
	if err := s.writeExperienceSheet(f, cv.Experience); err != nil {
		return nil, err
	}
	if err := s.writeEducationSheet(f, cv.Education); err != nil {
		return nil, err
	}

	// excelize starts every workbook with "Sheet1"; Profile replaces it.
	if idx, _ := f.GetSheetIndex("Profile"); idx != -1 {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"name", cv.Name,
		"experience_rows", len(cv.Experience),
		"education_rows", len(cv.Education),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeProfileSheet(f *excelize.File, cv llm.CVFields) error {
	const sheet = "Profile"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	rows := [][2]string{
		{"Name", cv.Name},
		{"Email", strOrEmpty(cv.Email)},
		{"Phone", strOrEmpty(cv.Phone)},
		{"LinkedIn", strOrEmpty(cv.LinkedIn)},
		{"Summary", strOrEmpty(cv.Summary)},
		{"Skills", strings.Join(cv.Skills, ", ")},
		{"Certificates", strings.Join(cv.Certificates, ", ")},
		{"Languages", strings.Join(cv.Languages, ", ")},
		{"Detected Language", cv.DetectedLanguage},
	}
	for i, kv := range rows {
		keyCell, _ := excelize.CoordinatesToCellName(1, i+1)
		valCell, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(sheet, keyCell, kv[0]); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, valCell, kv[1]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) writeExperienceSheet(f *excelize.File, entries []llm.Experience) error {
	const sheet = "Experience"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Position", "Company", "Duration", "Description"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, e := range entries {
		vals := []string{
			e.Position,
			strOrEmpty(e.Company),
			strOrEmpty(e.Duration),
			strings.Join(e.Description, "\n"),
		}
		for i, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

func (s *Service) writeEducationSheet(f *excelize.File, entries []llm.Education) error {
	const sheet = "Education"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"Degree", "Institution", "Year", "Field"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	row := 2
	for _, e := range entries {
		vals := []string{
			strOrEmpty(e.Degree),
			strOrEmpty(e.Institution),
			strOrEmpty(e.Year),
			strOrEmpty(e.Field),
		}
		for i, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		row++
	}
	return nil
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
