package tables

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/reusee/typeof/typetags"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Render tabulates the tag of value under every flag combination.
func Render(classifier *typetags.Classifier, value any) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("specific", "original", "tag")
	for _, specific := range []bool{false, true} {
		for _, original := range []bool{false, true} {
			t.Row(
				strconv.FormatBool(specific),
				strconv.FormatBool(original),
				classifier.TypeOf(value, &specific, &original),
			)
		}
	}
	return t.String()
}
