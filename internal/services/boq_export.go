package services

import (
	"bytes"
	"fmt"

	"hotel_standards_backend/internal/models"

	"github.com/xuri/excelize/v2"
)

// boqSheetName is the single worksheet of an exported BoQ workbook.
const boqSheetName = "BoQ"

// boqExportHeader lists the workbook columns per language.
var boqExportHeader = map[string][]string{
	"en": {"Section", "Item", "Specs", "Basis", "Quantity", "Unit Price", "Line Cost"},
	"ar": {"القسم", "البند", "المواصفات", "قاعدة الحساب", "الكمية", "سعر الوحدة", "التكلفة"},
}

// BuildBoQWorkbook renders a computed BoQ as an xlsx workbook: one row per
// line, a subtotal row per section, and a closing summary block with the
// grand total and cost per key.
func BuildBoQWorkbook(boq *models.BoQ, lang string) ([]byte, error) {
	if lang != "ar" {
		lang = "en"
	}

	f := excelize.NewFile()
	// WriteTo needs the file open, so Close only runs on the error paths.

	index, err := f.NewSheet(boqSheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}
	subtotalStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create subtotal style: %w", err)
	}

	headers := boqExportHeader[lang]
	for col, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(boqSheetName, cell, header)
	}
	endHeader, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(boqSheetName, "A1", endHeader, headerStyle)

	rowNum := 2
	setRow := func(values []interface{}) {
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			f.SetCellValue(boqSheetName, cell, value)
		}
		rowNum++
	}

	for _, section := range boq.Sections {
		sectionLabel := section.Label.In(lang)
		for _, line := range section.Items {
			specText := "-"
			if spec, ok := line.Item.Spec(boq.Rating); ok {
				specText = spec.In(lang)
			}
			setRow([]interface{}{
				sectionLabel,
				line.Item.Title.In(lang),
				specText,
				line.Requirement,
				line.Quantity,
				line.UnitPrice,
				line.LineCost,
			})
		}
		startCell, _ := excelize.CoordinatesToCellName(1, rowNum)
		endCell, _ := excelize.CoordinatesToCellName(len(headers), rowNum)
		subtotalLabel := map[string]string{"en": "Subtotal", "ar": "المجموع الفرعي"}[lang]
		setRow([]interface{}{sectionLabel, subtotalLabel, "", "", "", "", section.Subtotal})
		f.SetCellStyle(boqSheetName, startCell, endCell, subtotalStyle)
	}

	rowNum++ // blank separator before the summary block
	summary := map[string][3]string{
		"en": {"Grand Total", "Cost Per Key", "Total Units"},
		"ar": {"الإجمالي الكلي", "التكلفة لكل غرفة", "إجمالي الوحدات"},
	}[lang]
	setRow([]interface{}{summary[0], boq.GrandTotal})
	setRow([]interface{}{summary[1], boq.CostPerKey})
	setRow([]interface{}{summary[2], boq.TotalUnits})

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("failed to close workbook: %w", err)
	}
	return buf.Bytes(), nil
}
