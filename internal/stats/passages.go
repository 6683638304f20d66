package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/recite/internal/model"
)

// RenderPassages prints the passage library as an aligned table.
func RenderPassages(w io.Writer, passages []model.Passage) error {
	if len(passages) == 0 {
		_, err := fmt.Fprintln(w, "No passages saved. Add one with: recite passages add <name> [file]")
		return err
	}
	headers := []string{"Name", "Sentences", "Chars", "Updated"}
	rows := make([][]string, 0, len(passages))
	for _, p := range passages {
		rows = append(rows, []string{
			p.Name,
			fmt.Sprintf("%d", p.SentenceCount),
			fmt.Sprintf("%d", len([]rune(p.Body))),
			p.UpdatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{1: true, 2: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
