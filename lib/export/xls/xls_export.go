package xlsexport

import (
	"bytes"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	dbmodels "office-workflow-backend/models/db"
)

type Provider interface {
	ExportRequestList(list []dbmodels.Request) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var requestHeaders = []string{"Request ID", "Title", "Requester", "Office", "Employee ID", "Request Types", "Status", "Submitted On", "Assigned Teams"}

func (i impl) ExportRequestList(list []dbmodels.Request) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, requestHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		row, err = writeRequestData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Requests")
	return f.WriteToBuffer()
}

func writeRequestData(f *excelize.File, sheet string, list []dbmodels.Request, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(requestHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "Request ID"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.ID); err != nil {
			return row, err
		}

		// "Title"
		col++
		if err := writeColumn(f, sheet, col, row, item.TaskTitle); err != nil {
			return row, err
		}

		// "Requester"
		col++
		if err := writeColumn(f, sheet, col, row, item.RequesterName); err != nil {
			return row, err
		}

		// "Office"
		col++
		if err := writeColumn(f, sheet, col, row, item.OfficeName); err != nil {
			return row, err
		}

		// "Employee ID"
		col++
		if err := writeColumn(f, sheet, col, row, item.EmployeeID); err != nil {
			return row, err
		}

		// "Request Types"
		col++
		if err := writeColumn(f, sheet, col, row, item.RequestTypes); err != nil {
			return row, err
		}

		// "Status"
		col++
		if err := writeColumn(f, sheet, col, row, item.Status.ToHuman()); err != nil {
			return row, err
		}

		// "Submitted On"
		col++
		if !item.SubmissionDate.IsZero() {
			if err := writeColumn(f, sheet, col, row, item.SubmissionDate.Format("02.01.2006")); err != nil {
				return row, err
			}
		}

		// "Assigned Teams"
		col++
		teams := make([]string, 0, len(item.Tasks))
		for _, task := range item.Tasks {
			teams = append(teams, string(task.AssignedToRole))
		}
		if err := writeColumn(f, sheet, col, row, strings.Join(teams, ", ")); err != nil {
			return row, err
		}
	}
	return row, nil
}
