package csvutil

import (
	"fmt"
	"strconv"
	"strings"
)

// ReadAppIDs reads app IDs from a CSV file. The "appid" column is used when the
// header names one, otherwise the first column.
func ReadAppIDs(filename string, skipInvalid bool) ([]int, error) {
	return ProcessCSV(filename, parseAppIDRecord, ProcessorOptions{SkipInvalid: skipInvalid})
}

func parseAppIDRecord(record []string, header Header) (int, error) {
	col := header.Index("appid", "app_id", "steam_appid")
	if col < 0 {
		col = 0
	}
	if col >= len(record) {
		return 0, fmt.Errorf("missing app id column %d", col)
	}

	raw := strings.TrimSpace(record[col])
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid app id %q", raw)
	}
	return id, nil
}
