package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"

	dbmodels "office-workflow-backend/models/db"
)

// GenerateRequestSummary renders a one-page summary of a request with
// its tasks and audit trail. Core fonts only, no font assets on disk.
func GenerateRequestSummary(request dbmodels.Request) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateRequestSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}
	pdf.CellFormat(0, 10, fmt.Sprintf("Request #%s", request.ID), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	_, lineHt := pdf.GetFontSize()
	lineHt += 2

	writeField(pdf, lineHt, "Title", request.TaskTitle)
	writeField(pdf, lineHt, "Requester", request.RequesterName)
	writeField(pdf, lineHt, "Email", request.RequesterEmail)
	writeField(pdf, lineHt, "Office", request.OfficeName)
	writeField(pdf, lineHt, "Employee ID", request.EmployeeID)
	writeField(pdf, lineHt, "Request Types", request.RequestTypes)
	writeField(pdf, lineHt, "Status", request.Status.ToHuman())
	if !request.SubmissionDate.IsZero() {
		writeField(pdf, lineHt, "Submitted On", request.SubmissionDate.Format("02.01.2006"))
	}

	pdf.Ln(lineHt)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, lineHt, request.RequestDetails, "", "L", false)

	if len(request.Tasks) != 0 {
		pdf.Ln(lineHt)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, lineHt, "Assignments", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, task := range request.Tasks {
			line := fmt.Sprintf("%s team", task.AssignedToRole)
			if task.DeliverableLink != "" {
				line = fmt.Sprintf("%s: %s", line, task.DeliverableLink)
			}
			pdf.CellFormat(0, lineHt, line, "", 1, "L", false, 0, "")
			if task.MasterFeedback != "" {
				pdf.CellFormat(0, lineHt, fmt.Sprintf("  Feedback: %s", task.MasterFeedback), "", 1, "L", false, 0, "")
			}
		}
	}

	if len(request.History) != 0 {
		pdf.Ln(lineHt)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, lineHt, "Timeline", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, entry := range request.History {
			line := fmt.Sprintf("%s  %s (%s)", entry.CreatedAt.Format("02.01.2006 15:04"), entry.Action, entry.ActorName)
			pdf.CellFormat(0, lineHt, line, "", 1, "L", false, 0, "")
		}
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeField(pdf *fpdf.Fpdf, lineHt float64, name, value string) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(40, lineHt, name, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, lineHt, value, "", 1, "L", false, 0, "")
}
