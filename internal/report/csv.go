package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/lox/blackjacksim/internal/fileutil"
)

// WriteHistoriesCSV writes the per-hand bankroll trajectories of both
// seats as CSV. Row zero is the starting bankroll; row n is the
// balance after hand n. The histories are paired, so unequal lengths
// indicate a caller bug.
func WriteHistoriesCSV(w io.Writer, basic, counting []float64) error {
	if len(basic) != len(counting) {
		return fmt.Errorf("history lengths differ: %d basic vs %d counting", len(basic), len(counting))
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"hand", "basic_bankroll", "counting_bankroll"}); err != nil {
		return err
	}

	for i := range basic {
		record := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(basic[i], 'f', 2, 64),
			strconv.FormatFloat(counting[i], 'f', 2, 64),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// SaveHistoriesCSV writes the trajectories to a file atomically
func SaveHistoriesCSV(filename string, basic, counting []float64) error {
	return fileutil.WriteFileAtomicFunc(filename, 0644, func(w io.Writer) error {
		return WriteHistoriesCSV(w, basic, counting)
	})
}
