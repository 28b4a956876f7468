package msgraph

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"rentdesk-backend/internal/logger"
	"rentdesk-backend/internal/sheet"
)

// FetchRange reads the configured rectangular range from the rental
// worksheet and converts it into a snapshot (first row = header, rest =
// data rows). An empty or absent values array is a FetchError, never a
// silent empty snapshot.
func (c *Client) FetchRange(ctx context.Context) (*sheet.Snapshot, error) {
	token, err := c.GetToken(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/sites/%s/drive/items/%s/workbook/worksheets('%s')/range(address='%s')",
		c.opts.GraphBase, c.opts.SiteID, c.opts.ItemID, c.opts.SheetName, c.opts.RangeAddress)

	logger.ExternalServiceCall("msgraph", "fetch_range", "sheet", c.opts.SheetName, "range", c.opts.RangeAddress)

	req, err := retryablehttp.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		logger.ExternalServiceResult("msgraph", "fetch_range", err)
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.ExternalServiceResult("msgraph", "fetch_range", err)
		return nil, &FetchError{StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		fetchErr := &FetchError{
			StatusCode: resp.StatusCode,
			Detail:     gjson.GetBytes(body, "error.message").String(),
		}
		logger.ExternalServiceResult("msgraph", "fetch_range", fetchErr)
		return nil, fetchErr
	}

	values := gjson.GetBytes(body, "values")
	if !values.Exists() || !values.IsArray() || len(values.Array()) == 0 {
		fetchErr := &FetchError{StatusCode: resp.StatusCode, Detail: "response has no values array"}
		logger.ExternalServiceResult("msgraph", "fetch_range", fetchErr)
		return nil, fetchErr
	}

	rawRows := values.Array()
	header := make([]string, 0, len(rawRows[0].Array()))
	for _, cell := range rawRows[0].Array() {
		header = append(header, cell.String())
	}

	rows := make([][]sheet.Cell, 0, len(rawRows)-1)
	for _, rawRow := range rawRows[1:] {
		rawCells := rawRow.Array()
		row := make([]sheet.Cell, 0, len(rawCells))
		for _, rawCell := range rawCells {
			row = append(row, toCell(rawCell))
		}
		rows = append(rows, row)
	}

	logger.ExternalServiceResult("msgraph", "fetch_range", nil, "rows", len(rows))
	return sheet.NewSnapshot(header, rows, time.Now()), nil
}

func toCell(v gjson.Result) sheet.Cell {
	if v.Type == gjson.Number {
		return sheet.NumberCell(v.Num)
	}
	return sheet.TextCell(v.String())
}
