package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"seasfinance/internal/domain"
	"seasfinance/internal/domain/models"
	"seasfinance/internal/utils"
)

// ReportService renders the monthly project cost report as PDF.
type ReportService struct {
	Costs     CostService
	RequestID string
	Now       func() time.Time
}

// ProjectCostPDF returns the report bytes and a download file name.
func (s ReportService) ProjectCostPDF(ctx context.Context, year, month int) ([]byte, string, error) {
	k, err := domain.NewMonthKey(year, month)
	if err != nil {
		return nil, "", err
	}
	sum, err := s.Costs.ProjectCosts(ctx, year, month)
	if err != nil {
		return nil, "", err
	}
	pl, err := s.Costs.ProfitLoss(ctx, k.String())
	if err != nil {
		return nil, "", err
	}
	data, err := buildProjectCostPDF(sum, pl, s.Costs.precision(), nowFrom(s.Now))
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "reports", "project_cost_pdf", "month="+k.String())
	return data, fmt.Sprintf("PROJECT_COSTS_%s.pdf", utils.SafeFilenamePart(k.String())), nil
}

func buildProjectCostPDF(sum models.ProjectCostSummary, pl models.ProfitLoss, places int, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Project Cost Report "+sum.Month, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PROJECT COST REPORT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Month     : "+sum.Month)
	pdf.Ln(6)
	pdf.Cell(0, 6, "Generated : "+utils.FormatDateTime(generated)+" UTC")
	pdf.Ln(10)

	section(pdf, "Direct Labor")
	row(pdf, "Hours", utils.FormatMoney(sum.DirectLaborHours))
	row(pdf, "Labor cost", utils.FormatUSD(sum.DirectLaborCost))
	row(pdf, "  of which subcontractors", utils.FormatUSD(sum.SubcontractorCost))
	pdf.Ln(4)

	section(pdf, "Other Direct Costs")
	if len(sum.ODCItems) == 0 {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 6, "No ODC items recorded.")
		pdf.Ln(6)
	}
	for _, it := range sum.ODCItems {
		label := it.Category
		if it.Description != "" {
			label += " - " + it.Description
		}
		row(pdf, label, utils.FormatUSD(it.Amount))
	}
	row(pdf, "Total ODC", utils.FormatUSD(sum.TotalODCCost))
	pdf.Ln(4)

	section(pdf, "Indirect Costs")
	row(pdf, "Fringe", utils.FormatUSD(sum.FringeCost))
	row(pdf, "Overhead", utils.FormatUSD(sum.OverheadCost))
	row(pdf, "G&A", utils.FormatUSD(sum.GACost))
	row(pdf, "Profit", utils.FormatUSD(sum.ProfitCost))
	row(pdf, "Total indirect", utils.FormatUSD(sum.TotalIndirectCost))
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Total cost: "+utils.FormatUSD(sum.TotalCost))
	pdf.Ln(12)

	section(pdf, "Profit & Loss")
	row(pdf, "Revenue", utils.FormatUSD(pl.Revenue))
	row(pdf, "Costs", utils.FormatUSD(pl.Costs))
	row(pdf, "Profit", utils.FormatUSD(pl.Profit))
	row(pdf, "Margin", utils.FormatPercent(pl.ProfitMargin, places))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title)
	pdf.Ln(8)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(110, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(60, 6, value, "", 1, "R", false, 0, "")
}
