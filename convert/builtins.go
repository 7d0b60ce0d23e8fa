package convert

import (
	"net"
	"time"

	"github.com/google/uuid"

	"cassmap/cqltime"
)

// builtinConverters ships the date/time and identifier conversions every
// registry starts from. Only reading-side directions into native types
// are provided; writing temporals is native and needs no converter.
func builtinConverters() []Converter {
	return []Converter{
		MustConverter(epochMillisToTime),
		MustConverter(stringToUUID),
		MustConverter(uuidToString),
		MustConverter(stringToIP),
		MustConverter(ipToString),
		MustConverter(stringToDate),
		MustConverter(stringToDuration),
	}
}

func epochMillisToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func stringToUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

func uuidToString(id uuid.UUID) string {
	return id.String()
}

func stringToIP(s string) (net.IP, error) {
	if ip := net.ParseIP(s); ip != nil {
		return ip, nil
	}

	return nil, &net.ParseError{Type: "IP address", Text: s}
}

func ipToString(ip net.IP) string {
	return ip.String()
}

func stringToDate(s string) (cqltime.Date, error) {
	return cqltime.ParseDate(s)
}

func stringToDuration(s string) (cqltime.Duration, error) {
	return cqltime.ParseDuration(s)
}
