package formatter

import (
	"bytes"
	"time"
)

const rfc2822 = "Mon, 02 Jan 2006 15:04:05 -0700"

// appendTime renders t according to the configured format and offset.
func (c *Config) appendTime(buf *bytes.Buffer, t time.Time) {
	if c.location != nil {
		t = t.In(c.location)
	} else {
		t = t.Local()
	}

	switch c.timeKind {
	case timeRFC3339:
		buf.Write(t.AppendFormat(buf.AvailableBuffer(), time.RFC3339))
	case timeRFC2822:
		buf.Write(t.AppendFormat(buf.AvailableBuffer(), rfc2822))
	default:
		if c.timePattern == nil {
			buf.Write(t.AppendFormat(buf.AvailableBuffer(), time.TimeOnly))
			return
		}
		// bytes.Buffer writes never fail
		_ = c.timePattern.Format(buf, t)
	}
}
