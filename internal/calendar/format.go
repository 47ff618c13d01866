package calendar

import "fmt"

// FormatKorean renders a day the way the booking page shows it,
// e.g. "8월 10일".
func (d Date) FormatKorean() string {
	return fmt.Sprintf("%d월 %d일", int(d.Month), d.Day)
}

// FormatStay renders the selected stay. A complete range shows both
// endpoints and the night count ("8월 10일 ~ 8월 13일 (3박)"); a lone
// start date is an implicit one-night stay ("8월 10일 (1박)").
func FormatStay(start Date, end *Date) string {
	if end == nil {
		return fmt.Sprintf("%s (1박)", start.FormatKorean())
	}
	nights := start.Nights(*end)
	return fmt.Sprintf("%s ~ %s (%d박)", start.FormatKorean(), end.FormatKorean(), nights)
}
