package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/abhidesai17/gigflow/internal/model"
)

type BidSheetGenerator struct{}

func NewBidSheetGenerator() *BidSheetGenerator {
	return &BidSheetGenerator{}
}

// Generate builds an xlsx workbook with a gig summary and one row per bid.
func (g *BidSheetGenerator) Generate(gig model.Gig, bids []model.Bid) ([]byte, error) {
	file := excelize.NewFile()

	sheet := "Bids"
	file.SetSheetName("Sheet1", sheet)

	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", "Gig")
	set("B1", gig.Title)
	set("A2", "Status")
	set("B2", string(gig.Status))
	set("A3", "Budget")
	set("B3", gig.Budget)
	set("A4", "Posted")
	set("B4", formatDate(gig.CreatedAt))
	set("A5", "Bids")
	set("B5", len(bids))

	tableRow := 7
	headers := []string{"Bid ID", "Bidder ID", "Message", "Proposed price", "Status", "Submitted"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableRow)
		set(cell, header)
	}

	for i, bid := range bids {
		row := tableRow + 1 + i
		values := []interface{}{
			bid.ID.String(),
			bid.BidderID.String(),
			bid.Message,
			bid.ProposedPrice,
			string(bid.Status),
			formatDate(bid.CreatedAt),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			set(cell, value)
		}
	}

	_ = file.SetColWidth(sheet, "A", "B", 38)
	_ = file.SetColWidth(sheet, "C", "C", 50)
	_ = file.SetColWidth(sheet, "D", "F", 16)

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileName builds the download name for the gig's bid sheet.
func (g *BidSheetGenerator) FileName(gig model.Gig) string {
	return fmt.Sprintf("bids-%s.xlsx", gig.ID)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
