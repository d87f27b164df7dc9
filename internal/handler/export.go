package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"finance-tracker/internal/models"
	"finance-tracker/internal/store"
	"finance-tracker/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams the caller's transactions as CSV or XLSX.
type ExportHandler struct {
	Store *store.Transactions
	Log   *logrus.Logger
}

func NewExportHandler(s *store.Transactions, log *logrus.Logger) *ExportHandler {
	return &ExportHandler{Store: s, Log: log}
}

var exportHeader = []string{"id", "date", "type", "category", "amount", "description", "created_at"}

func exportRow(t *models.Transaction) []string {
	return []string{
		fmt.Sprintf("%d", t.ID),
		t.Date.Format("2006-01-02"),
		string(t.Type),
		t.Category,
		util.FormatCents(t.AmountCents),
		t.Description,
		t.CreatedAt.Format(time.RFC3339),
	}
}

func exportFilename(ext string) string {
	return fmt.Sprintf("transactions-%s.%s", time.Now().Format("20060102-150405"), ext)
}

// CSV writes all transactions of the caller as a CSV attachment.
// GET /api/transactions/export/csv
func (h *ExportHandler) CSV(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	items, err := h.Store.ListAll(c.Request.Context(), user.ID)
	if err != nil {
		h.Log.WithError(err).Error("export transactions")
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename("csv")+`"`)

	w := csv.NewWriter(c.Writer)
	w.Write(exportHeader)
	for i := range items {
		w.Write(exportRow(&items[i]))
	}
	w.Flush()
	// errors accumulate in the writer; headers are already sent, so log only
	if err := w.Error(); err != nil {
		h.Log.WithError(err).Error("write csv")
	}
}

// XLSX writes all transactions of the caller as a spreadsheet.
// GET /api/transactions/export/xlsx
func (h *ExportHandler) XLSX(c *gin.Context) {
	user, ok := requireUser(c)
	if !ok {
		return
	}

	items, err := h.Store.ListAll(c.Request.Context(), user.ID)
	if err != nil {
		h.Log.WithError(err).Error("export transactions")
		util.Error(c, http.StatusInternalServerError, "Server error")
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Transactions"
	f.SetSheetName("Sheet1", sheet)

	for col, name := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(sheet, cell, name)
	}
	for row := range items {
		for col, v := range exportRow(&items[row]) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename("xlsx")+`"`)

	if err := f.Write(c.Writer); err != nil {
		h.Log.WithError(err).Error("write xlsx")
	}
}
