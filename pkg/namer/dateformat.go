package namer

import (
	"strconv"
	"strings"
	"time"
)

// formatTime renders t using PHP-style date format characters, which is the
// notation naming configs are written in ("Y-m-d_H-i-s"). A backslash makes
// the next character literal. Characters without a meaning are copied as is.
func formatTime(t time.Time, format string) string {
	var b strings.Builder
	b.Grow(len(format) * 2)

	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' {
			if i+1 < len(runes) {
				i++
				b.WriteRune(runes[i])
			}
			continue
		}
		if piece, ok := formatChar(t, r); ok {
			b.WriteString(piece)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func formatChar(t time.Time, r rune) (string, bool) {
	switch r {
	// day
	case 'd':
		return t.Format("02"), true
	case 'D':
		return t.Format("Mon"), true
	case 'j':
		return strconv.Itoa(t.Day()), true
	case 'l':
		return t.Format("Monday"), true
	case 'N':
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}
		return strconv.Itoa(wd), true
	case 'S':
		return ordinalSuffix(t.Day()), true
	case 'w':
		return strconv.Itoa(int(t.Weekday())), true
	case 'z':
		return strconv.Itoa(t.YearDay() - 1), true

	// week
	case 'W':
		_, w := t.ISOWeek()
		return pad2(w), true

	// month
	case 'F':
		return t.Format("January"), true
	case 'm':
		return t.Format("01"), true
	case 'M':
		return t.Format("Jan"), true
	case 'n':
		return strconv.Itoa(int(t.Month())), true
	case 't':
		return strconv.Itoa(daysIn(t)), true

	// year
	case 'L':
		if daysInYear(t.Year()) == 366 {
			return "1", true
		}
		return "0", true
	case 'o':
		y, _ := t.ISOWeek()
		return strconv.Itoa(y), true
	case 'Y':
		return strconv.Itoa(t.Year()), true
	case 'y':
		return t.Format("06"), true

	// time
	case 'a':
		return t.Format("pm"), true
	case 'A':
		return t.Format("PM"), true
	case 'g':
		return t.Format("3"), true
	case 'G':
		return strconv.Itoa(t.Hour()), true
	case 'h':
		return t.Format("03"), true
	case 'H':
		return t.Format("15"), true
	case 'i':
		return t.Format("04"), true
	case 's':
		return t.Format("05"), true
	case 'u':
		return t.Format(".000000")[1:], true
	case 'v':
		return t.Format(".000")[1:], true

	// timezone
	case 'e':
		return t.Location().String(), true
	case 'T':
		return t.Format("MST"), true
	case 'P':
		return t.Format("-07:00"), true
	case 'O':
		return t.Format("-0700"), true
	case 'Z':
		_, offset := t.Zone()
		return strconv.Itoa(offset), true

	// full date/time
	case 'c':
		return t.Format("2006-01-02T15:04:05-07:00"), true
	case 'r':
		return t.Format("Mon, 02 Jan 2006 15:04:05 -0700"), true
	case 'U':
		return strconv.FormatInt(t.Unix(), 10), true
	}
	return "", false
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func ordinalSuffix(day int) string {
	if day >= 11 && day <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

func daysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}
