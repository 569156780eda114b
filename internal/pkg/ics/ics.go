// Package ics renders a single-event iCalendar file for a mentoring
// session so it can be imported into any calendar client.
package ics

import (
	"fmt"
	"strings"
	"time"
)

type Event struct {
	UID         string
	Summary     string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
}

const stampLayout = "20060102T150405Z"

// Render produces an RFC 5545 VCALENDAR with one VEVENT. Lines use
// CRLF endings as the format requires.
func Render(e Event) string {
	var b strings.Builder

	writeLine(&b, "BEGIN:VCALENDAR")
	writeLine(&b, "VERSION:2.0")
	writeLine(&b, "PRODID:-//mentorhub//sessions//EN")
	writeLine(&b, "CALSCALE:GREGORIAN")
	writeLine(&b, "METHOD:PUBLISH")
	writeLine(&b, "BEGIN:VEVENT")
	writeLine(&b, "UID:"+escape(e.UID))
	writeLine(&b, "DTSTAMP:"+time.Now().UTC().Format(stampLayout))
	writeLine(&b, "DTSTART:"+e.Start.UTC().Format(stampLayout))
	writeLine(&b, "DTEND:"+e.End.UTC().Format(stampLayout))
	writeLine(&b, "SUMMARY:"+escape(e.Summary))
	if e.Description != "" {
		writeLine(&b, "DESCRIPTION:"+escape(e.Description))
	}
	if e.Location != "" {
		writeLine(&b, "LOCATION:"+escape(e.Location))
	}
	writeLine(&b, "END:VEVENT")
	writeLine(&b, "END:VCALENDAR")

	return b.String()
}

func writeLine(b *strings.Builder, s string) {
	fmt.Fprintf(b, "%s\r\n", s)
}

// escape handles the TEXT escaping rules: backslash, semicolon, comma
// and newlines.
func escape(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		";", `\;`,
		",", `\,`,
		"\r\n", `\n`,
		"\n", `\n`,
	)
	return r.Replace(s)
}
